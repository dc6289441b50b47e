package service

import (
	"errors"
	"strings"
	"unicode/utf8"

	"perfect-pic-gallery/internal/model"
	moduledto "perfect-pic-gallery/internal/modules/user/dto"
	platformservice "perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/utils"

	"gorm.io/gorm"
)

const maxBioRunes = 200

func (s *Service) findUser(userID uint) (*model.User, error) {
	user, err := s.userStore.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError("用户不存在，请重新登录")
		}
		return nil, platformservice.NewInternalError("获取用户信息失败", err)
	}
	return user, nil
}

func (s *Service) stats(userID uint) (moduledto.UserStats, error) {
	var stats moduledto.UserStats
	var err error
	if stats.Uploads, err = s.imageStore.CountByUploader(userID); err != nil {
		return stats, err
	}
	if stats.Favorites, err = s.imageStore.CountFavorites(userID); err != nil {
		return stats, err
	}
	if stats.LikesReceived, err = s.imageStore.SumLikesByUploader(userID); err != nil {
		return stats, err
	}
	return stats, nil
}

// GetProfile 用户资料与统计：上传数、喜欢数、作品获赞总数
func (s *Service) GetProfile(userID uint) (*moduledto.UserProfileResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.stats(userID)
	if err != nil {
		return nil, platformservice.NewInternalError("获取用户统计失败", err)
	}

	return &moduledto.UserProfileResponse{
		ID:        user.ID,
		Phone:     user.Phone,
		Username:  user.Username,
		Bio:       user.Bio,
		Avatar:    user.Avatar,
		JoinDate:  user.JoinDate,
		LastLogin: user.LastLogin,
		Stats:     stats,
	}, nil
}

// UpdateProfile 修改用户名、简介或头像
func (s *Service) UpdateProfile(userID uint, req moduledto.UpdateProfileRequest) (*moduledto.UserProfileResponse, error) {
	if _, err := s.findUser(userID); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if ok, msg := utils.ValidateUsername(username); !ok {
			return nil, platformservice.NewValidationError(msg)
		}
		updates["username"] = username
	}
	if req.Bio != nil {
		bio := strings.TrimSpace(*req.Bio)
		if utf8.RuneCountInString(bio) > maxBioRunes {
			return nil, platformservice.NewValidationError("个人简介不能超过200字")
		}
		updates["bio"] = bio
	}
	if req.Avatar != nil {
		avatar := strings.TrimSpace(*req.Avatar)
		if avatar != "" && !utils.ValidateImageURL(avatar) {
			return nil, platformservice.NewValidationError("头像地址无效")
		}
		updates["avatar"] = avatar
	}
	if len(updates) == 0 {
		return nil, platformservice.NewValidationError("没有需要更新的字段")
	}

	if err := s.userStore.UpdateByID(userID, updates); err != nil {
		return nil, platformservice.NewInternalError("更新用户信息失败", err)
	}
	return s.GetProfile(userID)
}
