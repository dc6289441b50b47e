package model

import "time"

// Favorite 用户喜欢的图片，同一用户对同一图片只有一条记录。
type Favorite struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_favorite_user_image"`
	ImageID   uint      `json:"image_id" gorm:"not null;uniqueIndex:idx_favorite_user_image;index"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Image     Image     `json:"-" gorm:"foreignKey:ImageID;references:ID;constraint:OnDelete:CASCADE;"`
}

// HistoryEntry 浏览历史，同一用户对同一图片只记一次。
type HistoryEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_history_user_image"`
	ImageID   uint      `json:"image_id" gorm:"not null;uniqueIndex:idx_history_user_image"`
	CreatedAt time.Time `json:"viewed_at" gorm:"index"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Image     Image     `json:"-" gorm:"foreignKey:ImageID;references:ID;constraint:OnDelete:CASCADE;"`
}

func (HistoryEntry) TableName() string {
	return "history_entries"
}

// AllModels 需要自动迁移的全部模型
func AllModels() []any {
	return []any{&User{}, &Image{}, &Favorite{}, &HistoryEntry{}}
}
