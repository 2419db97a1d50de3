package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrNotFound         = "NOT_FOUND"
	ErrMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"
	ErrTooManyRequests  = "TOO_MANY_REQUESTS"

	// User-specific errors
	ErrEmailTaken         = "EMAIL_ALREADY_REGISTERED"
	ErrInvalidCredentials = "INVALID_CREDENTIALS"

	// Bearer token errors (RFC 6750)
	ErrAuthorizationRequired = "authorization_required"
	ErrInvalidRequest        = "invalid_request"
	ErrInvalidToken          = "invalid_token"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// NewValidationError builds a VALIDATION_FAILED error with per-field messages
func NewValidationError(fields map[string][]string) APIError {
	details := make(map[string]interface{}, len(fields))
	for field, msgs := range fields {
		details[field] = msgs
	}
	return NewAPIError(ErrValidationFailed, "Request validation failed", details)
}

// OAuth2Error represents an OAuth2 error response (RFC 6749)
type OAuth2Error struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// NewOAuth2Error creates a new OAuth2 error response
func NewOAuth2Error(error, description string) OAuth2Error {
	return OAuth2Error{
		Error:            error,
		ErrorDescription: description,
	}
}
