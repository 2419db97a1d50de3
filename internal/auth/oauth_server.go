package auth

import (
	"time"

	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// OAuthService issues and loads access tokens through the oauth2 manager.
// The API is its own (first-party) client and uses the password grant.
type OAuthService struct {
	manager      *manage.Manager
	clientID     string
	clientSecret string
}

// ClientCredentials identifies the first-party client tokens are issued to
type ClientCredentials struct {
	ID     string
	Secret string
}

func NewOAuthService(db *gorm.DB, jwtSecret string, client ClientCredentials, ttl time.Duration) *OAuthService {
	manager := manage.NewDefaultManager()
	manager.SetPasswordTokenCfg(&manage.Config{
		AccessTokenExp:    ttl,
		IsGenerateRefresh: false,
	})

	// Use JWT for access tokens
	manager.MapAccessGenerate(NewJWTAccessGenerate([]byte(jwtSecret), jwt.SigningMethodHS256, db))

	// Configure token store
	manager.MustTokenStorage(NewGormTokenStore(db), nil)

	// Configure client store
	manager.MapClientStorage(NewGormClientStore(db))

	return &OAuthService{
		manager:      manager,
		clientID:     client.ID,
		clientSecret: client.Secret,
	}
}

func (o *OAuthService) GetManager() *manage.Manager {
	return o.manager
}
