package models

import (
	"time"
)

// OAuthClient is a registered token client. The API registers itself as a
// first-party client at startup; Secret holds a bcrypt hash.
type OAuthClient struct {
	ID        string `gorm:"primaryKey;size:64"`
	Secret    string `gorm:"not null"`
	Name      string
	Domain    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}
