package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bw3sley/ignite-daily-diet-api/models"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// Register creates a user bound to the given session token. The token is
// stored exactly as received so that future requests carrying the same
// cookie resolve back to this user.
func (s *UserService) Register(ctx context.Context, username, sessionID string) error {
	var existing models.User
	err := s.db.WithContext(ctx).
		Where("username = ?", username).
		First(&existing).Error
	if err == nil {
		return ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user := models.User{
		ID:        uuid.New(),
		SessionID: sessionID,
		Username:  username,
	}
	return s.db.WithContext(ctx).Create(&user).Error
}
