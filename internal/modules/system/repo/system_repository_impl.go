package repo

import (
	"perfect-pic-gallery/internal/model"
	moduledto "perfect-pic-gallery/internal/modules/system/dto"

	"gorm.io/gorm"
)

type SystemRepository struct {
	db *gorm.DB
}

func (r *SystemRepository) GalleryTotals() (*moduledto.GalleryTotals, error) {
	var totals moduledto.GalleryTotals

	err := r.db.Model(&model.Image{}).
		Select("COUNT(*) AS image_count, " +
			"COALESCE(SUM(likes), 0) AS total_likes, " +
			"COALESCE(SUM(views), 0) AS total_views, " +
			"COALESCE(SUM(downloads), 0) AS total_downloads").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.User{}).Count(&totals.UserCount).Error; err != nil {
		return nil, err
	}
	return &totals, nil
}
