package dto

import (
	"time"

	"perfect-pic-gallery/internal/model"
)

type UserStats struct {
	Uploads       int64 `json:"uploads"`
	Favorites     int64 `json:"favorites"`
	LikesReceived int64 `json:"likes_received"`
}

type UserProfileResponse struct {
	ID        uint       `json:"id"`
	Phone     string     `json:"phone"`
	Username  string     `json:"username"`
	Bio       string     `json:"bio"`
	Avatar    string     `json:"avatar"`
	JoinDate  string     `json:"join_date"`
	LastLogin *time.Time `json:"last_login"`
	Stats     UserStats  `json:"stats"`
}

// UpdateProfileRequest 字段为 nil 表示不修改
type UpdateProfileRequest struct {
	Username *string `json:"username"`
	Bio      *string `json:"bio"`
	Avatar   *string `json:"avatar"`
}

type PaginationRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

type ImagePageResponse struct {
	Images   []model.Image `json:"images"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	HasMore  bool          `json:"has_more"`
}

// HistoryItem 浏览历史中的一张图片
type HistoryItem struct {
	model.Image
	ViewedAt time.Time `json:"viewed_at"`
}

type HistoryPageResponse struct {
	Items    []HistoryItem `json:"items"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	HasMore  bool          `json:"has_more"`
}
