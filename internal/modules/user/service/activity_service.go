package service

import (
	"perfect-pic-gallery/internal/model"
	moduledto "perfect-pic-gallery/internal/modules/user/dto"
	platformservice "perfect-pic-gallery/internal/platform/service"
)

func imagePage(images []model.Image, total int64, page, pageSize, offset int) *moduledto.ImagePageResponse {
	if images == nil {
		images = []model.Image{}
	}
	return &moduledto.ImagePageResponse{
		Images:   images,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  int64(offset+len(images)) < total,
	}
}

// ListUploads 我的上传，按上传时间倒序
func (s *Service) ListUploads(userID uint, req moduledto.PaginationRequest) (*moduledto.ImagePageResponse, error) {
	if _, err := s.findUser(userID); err != nil {
		return nil, err
	}
	page, pageSize, offset := s.Paginate(req.Page, req.PageSize)

	images, total, err := s.imageStore.ListByUploader(userID, offset, pageSize)
	if err != nil {
		return nil, platformservice.NewInternalError("获取上传列表失败", err)
	}
	return imagePage(images, total, page, pageSize, offset), nil
}

// ListFavorites 我的喜欢，最近喜欢的在前
func (s *Service) ListFavorites(userID uint, req moduledto.PaginationRequest) (*moduledto.ImagePageResponse, error) {
	if _, err := s.findUser(userID); err != nil {
		return nil, err
	}
	page, pageSize, offset := s.Paginate(req.Page, req.PageSize)

	images, total, err := s.imageStore.ListFavorites(userID, offset, pageSize)
	if err != nil {
		return nil, platformservice.NewInternalError("获取喜欢列表失败", err)
	}
	return imagePage(images, total, page, pageSize, offset), nil
}

// ListHistory 浏览历史，最近浏览的在前
func (s *Service) ListHistory(userID uint, req moduledto.PaginationRequest) (*moduledto.HistoryPageResponse, error) {
	if _, err := s.findUser(userID); err != nil {
		return nil, err
	}
	page, pageSize, offset := s.Paginate(req.Page, req.PageSize)

	entries, total, err := s.imageStore.ListHistory(userID, offset, pageSize)
	if err != nil {
		return nil, platformservice.NewInternalError("获取浏览历史失败", err)
	}

	items := make([]moduledto.HistoryItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, moduledto.HistoryItem{Image: entry.Image, ViewedAt: entry.CreatedAt})
	}
	return &moduledto.HistoryPageResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  int64(offset+len(items)) < total,
	}, nil
}

// ClearHistory 清空浏览历史，返回删除条数
func (s *Service) ClearHistory(userID uint) (int64, error) {
	if _, err := s.findUser(userID); err != nil {
		return 0, err
	}
	n, err := s.imageStore.ClearHistory(userID)
	if err != nil {
		return 0, platformservice.NewInternalError("清空浏览历史失败", err)
	}
	return n, nil
}

// RemoveHistory 从浏览历史中移除一张图片
func (s *Service) RemoveHistory(userID uint, imageID uint) error {
	if _, err := s.findUser(userID); err != nil {
		return err
	}
	n, err := s.imageStore.RemoveHistory(userID, imageID)
	if err != nil {
		return platformservice.NewInternalError("移除浏览历史失败", err)
	}
	if n == 0 {
		return platformservice.NewNotFoundError("浏览历史中没有该图片")
	}
	return nil
}
