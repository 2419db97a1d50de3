package auth

import (
	"context"
	"fmt"
	"strconv"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/go-oauth2/oauth2/v4"
)

// tokenScope is the only scope the API hands out
const tokenScope = "recipes"

// IssueToken generates and stores an access token for an already authenticated user
func (o *OAuthService) IssueToken(ctx context.Context, user *models.User) (string, error) {
	ti, err := o.manager.GenerateAccessToken(ctx, oauth2.PasswordCredentials, &oauth2.TokenGenerateRequest{
		ClientID:     o.clientID,
		ClientSecret: o.clientSecret,
		UserID:       strconv.FormatUint(uint64(user.ID), 10),
		Scope:        tokenScope,
	})
	if err != nil {
		return "", fmt.Errorf("generating access token: %w", err)
	}
	return ti.GetAccess(), nil
}

// LoadAccessToken returns the user ID an access token was issued to. It fails
// when the token is unknown to the store or has expired.
func (o *OAuthService) LoadAccessToken(ctx context.Context, access string) (uint, error) {
	ti, err := o.manager.LoadAccessToken(ctx, access)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseUint(ti.GetUserID(), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("stored token has invalid user id %q: %w", ti.GetUserID(), err)
	}
	return uint(id), nil
}
