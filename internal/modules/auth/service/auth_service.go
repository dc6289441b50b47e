package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"perfect-pic-gallery/internal/consts"
	"perfect-pic-gallery/internal/logger"
	"perfect-pic-gallery/internal/model"
	moduledto "perfect-pic-gallery/internal/modules/auth/dto"
	platformservice "perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func toAuthUser(u *model.User) *moduledto.AuthUser {
	return &moduledto.AuthUser{
		ID:        u.ID,
		Phone:     u.Phone,
		Username:  u.Username,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		JoinDate:  u.JoinDate,
		LastLogin: u.LastLogin,
	}
}

// verifyCaptcha 长度不符时不消耗验证码，校验通过后验证码即失效
func (s *Service) verifyCaptcha(id, answer string) error {
	if n := s.captcha.CodeLength(); utf8.RuneCountInString(answer) != n {
		return platformservice.NewValidationError(fmt.Sprintf("验证码为%d位", n))
	}
	if !s.captcha.Consume(id, answer) {
		return platformservice.NewValidationError("验证码错误")
	}
	return nil
}

// Register 注册新用户
func (s *Service) Register(req moduledto.RegisterRequest) (*moduledto.AuthUser, error) {
	phone := strings.TrimSpace(req.Phone)
	username := strings.TrimSpace(req.Username)
	answer := strings.TrimSpace(req.CaptchaAnswer)
	if phone == "" || username == "" || req.Password == "" || req.ConfirmPassword == "" ||
		req.CaptchaID == "" || answer == "" {
		return nil, platformservice.NewValidationError("请填写完整信息")
	}
	if !utils.ValidatePhone(phone) {
		return nil, platformservice.NewValidationError("手机号格式不正确")
	}
	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if req.Password != req.ConfirmPassword {
		return nil, platformservice.NewValidationError("两次密码不一致")
	}
	if err := s.verifyCaptcha(req.CaptchaID, answer); err != nil {
		return nil, err
	}

	exists, err := s.userStore.PhoneExists(phone)
	if err != nil {
		return nil, platformservice.NewInternalError("注册失败，请稍后重试", err)
	}
	if exists {
		return nil, platformservice.NewConflictError("该手机号已注册")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, platformservice.NewInternalError("注册失败，请稍后重试", err)
	}

	now := s.Now()
	user := &model.User{
		Phone:     phone,
		Username:  username,
		Password:  string(hashedPassword),
		Bio:       consts.DefaultBio,
		JoinDate:  now.Format("2006-01-02"),
		LastLogin: &now,
	}
	if err := s.userStore.Create(user); err != nil {
		// 并发注册同一手机号时由唯一索引兜底
		if s.isDuplicatePhone(phone, err) {
			return nil, platformservice.NewConflictError("该手机号已注册")
		}
		return nil, platformservice.NewInternalError("注册失败，请稍后重试", err)
	}

	logger.L().Info("user registered", zap.Uint("user_id", user.ID))
	return toAuthUser(user), nil
}

// Login 手机号、密码加图形验证码登录，并记录登录时间
func (s *Service) Login(req moduledto.LoginRequest) (*moduledto.AuthUser, error) {
	phone := strings.TrimSpace(req.Phone)
	answer := strings.TrimSpace(req.CaptchaAnswer)
	if phone == "" || req.Password == "" || req.CaptchaID == "" || answer == "" {
		return nil, platformservice.NewValidationError("请输入完整信息")
	}
	if !utils.ValidatePhone(phone) {
		return nil, platformservice.NewValidationError("手机号格式不正确")
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if err := s.verifyCaptcha(req.CaptchaID, answer); err != nil {
		return nil, err
	}

	// 手机号不存在与密码错误返回同一提示
	user, err := s.userStore.FindByPhone(phone)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError("手机号或密码错误")
		}
		return nil, platformservice.NewInternalError("登录失败，请稍后重试", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, platformservice.NewUnauthorizedError("手机号或密码错误")
	}

	now := s.Now()
	if err := s.userStore.UpdateLastLogin(user.ID, now); err != nil {
		return nil, platformservice.NewInternalError("登录失败，请稍后重试", err)
	}
	user.LastLogin = &now

	logger.L().Info("user logged in", zap.Uint("user_id", user.ID))
	return toAuthUser(user), nil
}

func (s *Service) isDuplicatePhone(phone string, err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	exists, checkErr := s.userStore.PhoneExists(phone)
	return checkErr == nil && exists
}
