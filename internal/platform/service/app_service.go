package service

import (
	"time"

	"perfect-pic-gallery/internal/config"
)

const maxPageSize = 100

// AppService 各业务模块共享的运行时依赖：配置快照与时钟。
type AppService struct {
	configFn func() config.Config
	now      func() time.Time
}

func NewAppService() *AppService {
	return &AppService{configFn: config.Get, now: time.Now}
}

// NewStaticAppService 使用固定配置与时钟，便于测试
func NewStaticAppService(cfg config.Config, now func() time.Time) *AppService {
	if now == nil {
		now = time.Now
	}
	return &AppService{
		configFn: func() config.Config { return cfg },
		now:      now,
	}
}

func (s *AppService) Config() config.Config {
	return s.configFn()
}

func (s *AppService) Now() time.Time {
	return s.now()
}

// Gallery 画廊配置，未配置的项取默认值
func (s *AppService) Gallery() config.GalleryConfig {
	cfg := s.configFn().Gallery
	if cfg.PageSize <= 0 {
		cfg.PageSize = 12
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 50
	}
	if cfg.RelatedLimit <= 0 {
		cfg.RelatedLimit = 6
	}
	return cfg
}

// Paginate 规范化页码与每页数量，返回 page、pageSize 与 offset
func (s *AppService) Paginate(page, pageSize int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.Gallery().PageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return page, pageSize, (page - 1) * pageSize
}
