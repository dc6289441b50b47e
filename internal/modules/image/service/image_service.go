package service

import (
	"errors"
	"regexp"
	"strings"

	"perfect-pic-gallery/internal/consts"
	"perfect-pic-gallery/internal/model"
	moduledto "perfect-pic-gallery/internal/modules/image/dto"
	platformservice "perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/utils"

	"gorm.io/gorm"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

func (s *Service) findViewer(viewerID uint) (*model.User, error) {
	user, err := s.userStore.FindByID(viewerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError("用户不存在，请重新登录")
		}
		return nil, platformservice.NewInternalError("获取用户信息失败", err)
	}
	return user, nil
}

// ToggleLike 喜欢/取消喜欢
func (s *Service) ToggleLike(viewerID uint, imageID uint) (*moduledto.ToggleLikeResponse, error) {
	if _, err := s.findViewer(viewerID); err != nil {
		return nil, err
	}
	if _, err := s.findImage(imageID); err != nil {
		return nil, err
	}

	liked, likes, err := s.imageStore.ToggleFavorite(viewerID, imageID)
	if err != nil {
		return nil, platformservice.NewInternalError("操作失败", err)
	}
	return &moduledto.ToggleLikeResponse{Liked: liked, Likes: likes}, nil
}

// DownloadFilename 标题中的空白替换为下划线并加上 .jpg 后缀
func DownloadFilename(title string) string {
	return whitespaceRun.ReplaceAllString(title, "_") + ".jpg"
}

// Download 增加下载数并返回下载地址与建议的文件名
func (s *Service) Download(imageID uint) (*moduledto.DownloadResponse, error) {
	image, err := s.findImage(imageID)
	if err != nil {
		return nil, err
	}

	if err := s.imageStore.IncrementDownloads(imageID); err != nil {
		return nil, platformservice.NewInternalError("更新下载数失败", err)
	}

	return &moduledto.DownloadResponse{
		URL:       image.URL,
		Filename:  DownloadFilename(image.Title),
		Downloads: image.Downloads + 1,
	}, nil
}

// normalizeTags 去除首尾空白、空标签与重复标签，保持原有顺序
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// CreateImage 以当前用户身份发布图片
func (s *Service) CreateImage(viewerID uint, req moduledto.CreateImageRequest) (*model.Image, error) {
	user, err := s.findViewer(viewerID)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, platformservice.NewValidationError("请输入图片标题")
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, platformservice.NewValidationError("请选择图片分类")
	}
	if _, ok := consts.FindCategory(category); !ok {
		return nil, platformservice.NewValidationError("未知的图片分类")
	}
	url := strings.TrimSpace(req.URL)
	if !utils.ValidateImageURL(url) {
		return nil, platformservice.NewValidationError("图片地址无效")
	}
	thumbnail := strings.TrimSpace(req.Thumbnail)
	if thumbnail == "" {
		thumbnail = url
	} else if !utils.ValidateImageURL(thumbnail) {
		return nil, platformservice.NewValidationError("缩略图地址无效")
	}

	uploaderID := user.ID
	image := &model.Image{
		Title:       title,
		Author:      user.Username,
		URL:         url,
		Thumbnail:   thumbnail,
		Description: strings.TrimSpace(req.Description),
		Category:    category,
		Tags:        normalizeTags(req.Tags),
		UploaderID:  &uploaderID,
		UploadedAt:  s.Now(),
	}
	if err := s.imageStore.Create(image); err != nil {
		return nil, platformservice.NewInternalError("图片保存失败", err)
	}
	return image, nil
}
