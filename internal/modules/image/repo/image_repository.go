package repo

import (
	"time"

	"perfect-pic-gallery/internal/model"
)

// ListImagesParams 画廊列表查询条件，Category/Tag 为空表示不过滤
type ListImagesParams struct {
	Search   string
	Category string
	Tag      string
	Sort     string
	Offset   int
	Limit    int
}

type ImageStore interface {
	ListImages(params ListImagesParams) ([]model.Image, int64, error)
	FindByID(id uint) (*model.Image, error)
	Create(image *model.Image) error
	IncrementViews(id uint) error
	IncrementDownloads(id uint) error
	ListRelated(image *model.Image, limit int) ([]model.Image, error)
	IsFavorite(userID uint, imageID uint) (bool, error)
	ToggleFavorite(userID uint, imageID uint) (bool, int64, error)
	RecordHistory(userID uint, imageID uint, at time.Time, limit int) error
	ListByUploader(userID uint, offset int, limit int) ([]model.Image, int64, error)
	ListFavorites(userID uint, offset int, limit int) ([]model.Image, int64, error)
	ListHistory(userID uint, offset int, limit int) ([]model.HistoryEntry, int64, error)
	ClearHistory(userID uint) (int64, error)
	RemoveHistory(userID uint, imageID uint) (int64, error)
	CountByUploader(userID uint) (int64, error)
	CountFavorites(userID uint) (int64, error)
	SumLikesByUploader(userID uint) (int64, error)
}
