package model

import "time"

type Image struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null;index"`
	Author      string    `json:"author" gorm:"not null;index"`
	URL         string    `json:"url" gorm:"not null"`
	Thumbnail   string    `json:"thumbnail"`
	Description string    `json:"description"`
	Category    string    `json:"category" gorm:"not null;index"`
	Tags        []string  `json:"tags" gorm:"serializer:json;type:text"`
	Likes       int64     `json:"likes" gorm:"not null;default:0"`
	Views       int64     `json:"views" gorm:"not null;default:0"`
	Downloads   int64     `json:"downloads" gorm:"not null;default:0"`
	UploaderID  *uint     `json:"uploader_id" gorm:"index"`
	UploadedAt  time.Time `json:"uploaded_at" gorm:"not null;index"`
}
