package repo

import (
	moduledto "perfect-pic-gallery/internal/modules/system/dto"

	"gorm.io/gorm"
)

type SystemStore interface {
	GalleryTotals() (*moduledto.GalleryTotals, error)
}

func NewSystemRepository(db *gorm.DB) SystemStore {
	return &SystemRepository{db: db}
}
