package dto

// GalleryTotals 画廊整体数据
type GalleryTotals struct {
	ImageCount     int64 `json:"image_count"`
	UserCount      int64 `json:"user_count"`
	TotalLikes     int64 `json:"total_likes"`
	TotalViews     int64 `json:"total_views"`
	TotalDownloads int64 `json:"total_downloads"`
}

type SystemInfoResponse struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

type ServerStatsResponse struct {
	GalleryTotals
	CaptchaSessions int                `json:"captcha_sessions"`
	Version         string             `json:"version"`
	SystemInfo      SystemInfoResponse `json:"system_info"`
}
