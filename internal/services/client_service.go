package services

import (
	"errors"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ClientService interface {
	EnsureClient(id, secret, name string) (*models.OAuthClient, error)
	GetClientByID(id string) (*models.OAuthClient, error)
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

// EnsureClient registers the client if it is missing and rotates its stored
// hash when the configured secret no longer matches
func (s *clientService) EnsureClient(id, secret, name string) (*models.OAuthClient, error) {
	client, err := s.GetClientByID(id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := models.HashPassword(secret)
		if err != nil {
			return nil, err
		}
		client = &models.OAuthClient{ID: id, Secret: hash, Name: name}
		if err := s.db.Create(client).Error; err != nil {
			return nil, err
		}
		log.WithField("client_id", id).Info("OAuth client registered")
		return client, nil
	case err != nil:
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(client.Secret), []byte(secret)) != nil {
		hash, err := models.HashPassword(secret)
		if err != nil {
			return nil, err
		}
		client.Secret = hash
		client.Name = name
		if err := s.db.Save(client).Error; err != nil {
			return nil, err
		}
		log.WithField("client_id", id).Info("OAuth client secret rotated")
	}
	return client, nil
}

func (s *clientService) GetClientByID(id string) (*models.OAuthClient, error) {
	var client models.OAuthClient
	if err := s.db.Where("id = ?", id).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}
