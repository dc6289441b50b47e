package service

import (
	"perfect-pic-gallery/internal/modules/auth/repo"
	platformservice "perfect-pic-gallery/internal/platform/service"
)

// CaptchaVerifier 一次性校验图形验证码
type CaptchaVerifier interface {
	Consume(id, answer string) bool
	CodeLength() int
}

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
	captcha   CaptchaVerifier
}

func New(appService *platformservice.AppService, userStore repo.UserStore, captcha CaptchaVerifier) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
		captcha:    captcha,
	}
}
