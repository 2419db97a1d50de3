package models

import (
	"time"
)

// OAuthToken records an issued access token. A token that is not in this
// table is rejected even when its signature verifies.
type OAuthToken struct {
	ID          uint   `gorm:"primaryKey"`
	ClientID    string `gorm:"not null"`
	UserID      string `gorm:"index;not null"`
	AccessToken string `gorm:"uniqueIndex;size:512;not null"`
	Scopes      string
	CreatedAt   time.Time `gorm:"not null"`
	ExpiresAt   time.Time `gorm:"not null"`
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}
