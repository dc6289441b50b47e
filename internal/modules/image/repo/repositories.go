package repo

import (
	"perfect-pic-gallery/internal/model"

	"gorm.io/gorm"
)

type UserStore interface {
	FindByID(id uint) (*model.User, error)
}

func NewImageRepository(db *gorm.DB) ImageStore {
	return &ImageRepository{db: db}
}
