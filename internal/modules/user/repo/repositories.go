package repo

import (
	"perfect-pic-gallery/internal/model"

	"gorm.io/gorm"
)

type ImageStore interface {
	ListByUploader(userID uint, offset int, limit int) ([]model.Image, int64, error)
	ListFavorites(userID uint, offset int, limit int) ([]model.Image, int64, error)
	ListHistory(userID uint, offset int, limit int) ([]model.HistoryEntry, int64, error)
	ClearHistory(userID uint) (int64, error)
	RemoveHistory(userID uint, imageID uint) (int64, error)
	CountByUploader(userID uint) (int64, error)
	CountFavorites(userID uint) (int64, error)
	SumLikesByUploader(userID uint) (int64, error)
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}
