package services

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/franciscosanchezn/gin-recipe-api/internal/apperror"
	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(email, password, name string) (*models.User, error)
	CreateSuperuser(email, password, name string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateProfile(id uint, name, password *string) (*models.User, error)
	DeleteUser(id uint) error
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) CreateUser(email, password, name string) (*models.User, error) {
	return s.create(email, password, name, false)
}

// CreateSuperuser creates an account with the staff and superuser flags set
func (s *userService) CreateSuperuser(email, password, name string) (*models.User, error) {
	return s.create(email, password, name, true)
}

func (s *userService) create(email, password, name string, superuser bool) (*models.User, error) {
	email = models.NormalizeEmail(email)
	if email == "" {
		return nil, apperror.ValidationFailed("email", "This field is required.")
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperror.Conflict("email", "user with this email already exists.")
	}

	user := &models.User{
		Email:       email,
		Name:        name,
		IsActive:    true,
		IsStaff:     superuser,
		IsSuperuser: superuser,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, apperror.ValidationFailed("password", err.Error())
	}

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Conflict("email", "user with this email already exists.")
		}
		return nil, err
	}

	log.WithFields(logrus.Fields{"user_id": user.ID, "superuser": superuser}).Info("User created")
	return user, nil
}

// Authenticate returns the active user matching the credentials. Every failure
// yields the same error so callers cannot probe which emails exist.
func (s *userService) Authenticate(email, password string) (*models.User, error) {
	user, err := s.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// spend the same bcrypt time as a real check
			(&models.User{PasswordHash: dummyHash()}).CheckPassword(password)
			return nil, apperror.InvalidCredentials()
		}
		return nil, err
	}
	if !user.CheckPassword(password) || !user.IsActive {
		return nil, apperror.InvalidCredentials()
	}

	now := time.Now()
	if err := s.db.Model(user).Update("last_login", now).Error; err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Failed to record last login")
	}
	return user, nil
}

var (
	dummyHashOnce  sync.Once
	dummyHashValue string
)

// dummyHash is computed once, at the configured cost, for unknown-email logins
func dummyHash() string {
	dummyHashOnce.Do(func() {
		dummyHashValue, _ = models.HashPassword("not-a-real-password")
	})
	return dummyHashValue
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", models.NormalizeEmail(email)).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, notFoundOr(err, "user", id)
	}
	return &user, nil
}

// UpdateProfile changes the name and/or password; nil leaves a field as is
func (s *userService) UpdateProfile(id uint, name, password *string) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		user.Name = *name
	}
	if password != nil {
		if err := user.SetPassword(*password); err != nil {
			return nil, apperror.ValidationFailed("password", err.Error())
		}
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user together with everything they own. The steps are
// explicit so the result does not depend on the driver enforcing foreign keys.
func (s *userService) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return notFoundOr(err, "user", id)
		}

		steps := []struct {
			name string
			run  func() error
		}{
			{"recipe_tags", func() error {
				return tx.Exec("DELETE FROM recipe_tags WHERE recipe_id IN (SELECT id FROM recipes WHERE user_id = ?) OR tag_id IN (SELECT id FROM tags WHERE user_id = ?)", id, id).Error
			}},
			{"recipe_ingredients", func() error {
				return tx.Exec("DELETE FROM recipe_ingredients WHERE recipe_id IN (SELECT id FROM recipes WHERE user_id = ?) OR ingredient_id IN (SELECT id FROM ingredients WHERE user_id = ?)", id, id).Error
			}},
			{"recipes", func() error { return tx.Scopes(ownedBy(id)).Delete(&models.Recipe{}).Error }},
			{"tags", func() error { return tx.Scopes(ownedBy(id)).Delete(&models.Tag{}).Error }},
			{"ingredients", func() error { return tx.Scopes(ownedBy(id)).Delete(&models.Ingredient{}).Error }},
			{"oauth_tokens", func() error {
				return tx.Where("user_id = ?", strconv.FormatUint(uint64(id), 10)).Delete(&models.OAuthToken{}).Error
			}},
			{"users", func() error { return tx.Delete(&user).Error }},
		}
		for _, step := range steps {
			if err := step.run(); err != nil {
				return fmt.Errorf("deleting %s for user %d: %w", step.name, id, err)
			}
		}

		log.WithField("user_id", id).Info("User and owned data deleted")
		return nil
	})
}
