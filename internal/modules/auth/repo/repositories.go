package repo

import (
	"time"

	"perfect-pic-gallery/internal/model"
)

type UserStore interface {
	FindByPhone(phone string) (*model.User, error)
	PhoneExists(phone string) (bool, error)
	Create(user *model.User) error
	UpdateLastLogin(userID uint, at time.Time) error
}
