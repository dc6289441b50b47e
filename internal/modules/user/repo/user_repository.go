package repo

import (
	"time"

	"perfect-pic-gallery/internal/model"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
	FindByPhone(phone string) (*model.User, error)
	PhoneExists(phone string) (bool, error)
	Create(user *model.User) error
	UpdateLastLogin(userID uint, at time.Time) error
	UpdateByID(userID uint, updates map[string]interface{}) error
}
