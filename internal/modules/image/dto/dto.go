package dto

import "perfect-pic-gallery/internal/model"

// ImageListQuery 画廊列表查询参数，category/tag 为 all 或空时不过滤
type ImageListQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Tag      string `form:"tag"`
	Sort     string `form:"sort"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type PaginationRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

type ImageListResponse struct {
	Images   []model.Image `json:"images"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	HasMore  bool          `json:"has_more"`
}

type ImageDetailResponse struct {
	model.Image
	IsLiked bool `json:"is_liked"`
}

type ToggleLikeResponse struct {
	Liked bool  `json:"liked"`
	Likes int64 `json:"likes"`
}

type DownloadResponse struct {
	URL       string `json:"url"`
	Filename  string `json:"filename"`
	Downloads int64  `json:"downloads"`
}

type CreateImageRequest struct {
	Title       string   `json:"title" binding:"required"`
	URL         string   `json:"url" binding:"required"`
	Thumbnail   string   `json:"thumbnail"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	Tags        []string `json:"tags"`
}
