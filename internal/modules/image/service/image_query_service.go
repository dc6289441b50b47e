package service

import (
	"errors"
	"strings"

	"perfect-pic-gallery/internal/consts"
	"perfect-pic-gallery/internal/logger"
	"perfect-pic-gallery/internal/model"
	moduledto "perfect-pic-gallery/internal/modules/image/dto"
	"perfect-pic-gallery/internal/modules/image/repo"
	platformservice "perfect-pic-gallery/internal/platform/service"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func normalizeFilter(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, consts.FilterAll) {
		return ""
	}
	return v
}

// ListImages 画廊列表：搜索、分类、标签过滤，排序与分页
func (s *Service) ListImages(query moduledto.ImageListQuery) (*moduledto.ImageListResponse, error) {
	page, pageSize, offset := s.Paginate(query.Page, query.PageSize)

	images, total, err := s.imageStore.ListImages(repo.ListImagesParams{
		Search:   query.Search,
		Category: normalizeFilter(query.Category),
		Tag:      normalizeFilter(query.Tag),
		Sort:     query.Sort,
		Offset:   offset,
		Limit:    pageSize,
	})
	if err != nil {
		return nil, platformservice.NewInternalError("获取图片列表失败", err)
	}
	if images == nil {
		images = []model.Image{}
	}

	return &moduledto.ImageListResponse{
		Images:   images,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  int64(offset+len(images)) < total,
	}, nil
}

// Categories 全部分类及其标签
func (s *Service) Categories() []consts.Category {
	out := make([]consts.Category, len(consts.Categories))
	copy(out, consts.Categories)
	return out
}

func (s *Service) findImage(id uint) (*model.Image, error) {
	image, err := s.imageStore.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError("图片不存在")
		}
		return nil, platformservice.NewInternalError("获取图片失败", err)
	}
	return image, nil
}

// GetImageDetail 获取图片详情并增加浏览数；viewerID 不为空时记录浏览历史
func (s *Service) GetImageDetail(id uint, viewerID *uint) (*moduledto.ImageDetailResponse, error) {
	image, err := s.findImage(id)
	if err != nil {
		return nil, err
	}

	if err := s.imageStore.IncrementViews(id); err != nil {
		return nil, platformservice.NewInternalError("更新浏览数失败", err)
	}
	image.Views++

	resp := &moduledto.ImageDetailResponse{Image: *image}
	if viewerID == nil {
		return resp, nil
	}

	// 历史记录失败不影响详情展示
	if _, err := s.userStore.FindByID(*viewerID); err != nil {
		logger.L().Debug("viewer not found, skip history", zap.Uint("viewer_id", *viewerID), zap.Error(err))
		return resp, nil
	}
	if err := s.imageStore.RecordHistory(*viewerID, id, s.Now(), s.Gallery().HistoryLimit); err != nil {
		logger.L().Warn("record history failed", zap.Uint("viewer_id", *viewerID), zap.Uint("image_id", id), zap.Error(err))
	}
	liked, err := s.imageStore.IsFavorite(*viewerID, id)
	if err != nil {
		logger.L().Warn("query favorite failed", zap.Uint("viewer_id", *viewerID), zap.Uint("image_id", id), zap.Error(err))
	}
	resp.IsLiked = liked
	return resp, nil
}

// Related 同分类或有共同标签的图片
func (s *Service) Related(id uint) ([]model.Image, error) {
	image, err := s.findImage(id)
	if err != nil {
		return nil, err
	}

	images, err := s.imageStore.ListRelated(image, s.Gallery().RelatedLimit)
	if err != nil {
		return nil, platformservice.NewInternalError("获取相关图片失败", err)
	}
	if images == nil {
		images = []model.Image{}
	}
	return images, nil
}
