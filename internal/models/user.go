package models

import (
	"strings"
	"time"
)

// User is an account keyed by email. The staff and superuser flags only gate
// administrative tooling; is_active gates authentication.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	Name         string `gorm:"size:255;not null"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsActive     bool   `gorm:"not null"`
	IsStaff      bool   `gorm:"not null"`
	IsSuperuser  bool   `gorm:"not null"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NormalizeEmail lowercases the domain part of an address and leaves the local part untouched
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at] + "@" + strings.ToLower(email[at+1:])
}

// RegisterRequest is the body of the registration endpoint
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=5,max=72"`
	Name     string `json:"name" binding:"required,notblank,max=255"`
}

// TokenRequest is the body of the token endpoint
type TokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProfileUpdateRequest is the body of PUT/PATCH on the profile endpoint; absent fields are left alone
type ProfileUpdateRequest struct {
	Name     *string `json:"name" binding:"omitempty,notblank,max=255"`
	Password *string `json:"password" binding:"omitempty,min=5,max=72"`
}

// UserResponse never carries the password
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenResponse is returned by the token endpoint
type TokenResponse struct {
	Token string `json:"token"`
}

// NewUserResponse maps a user to its public representation
func NewUserResponse(u *User) UserResponse {
	return UserResponse{Email: u.Email, Name: u.Name}
}
