package service

import (
	"runtime"

	"perfect-pic-gallery/internal/consts"
	moduledto "perfect-pic-gallery/internal/modules/system/dto"
	platformservice "perfect-pic-gallery/internal/platform/service"
)

// GetServerStats 获取画廊概览统计信息
func (s *Service) GetServerStats() (*moduledto.ServerStatsResponse, error) {
	totals, err := s.systemStore.GalleryTotals()
	if err != nil {
		return nil, platformservice.NewInternalError("统计画廊数据失败", err)
	}

	resp := &moduledto.ServerStatsResponse{
		GalleryTotals: *totals,
		Version:       consts.ApplicationVersion,
		SystemInfo: moduledto.SystemInfoResponse{
			OS:           runtime.GOOS,
			Arch:         runtime.GOARCH,
			GoVersion:    runtime.Version(),
			NumCPU:       runtime.NumCPU(),
			NumGoroutine: runtime.NumGoroutine(),
		},
	}
	if s.sessions != nil {
		resp.CaptchaSessions = s.sessions.Len()
	}
	return resp, nil
}
