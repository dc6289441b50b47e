package service

import (
	"perfect-pic-gallery/internal/modules/system/repo"
	platformservice "perfect-pic-gallery/internal/platform/service"
)

// SessionCounter 返回当前存活的验证码会话数
type SessionCounter interface {
	Len() int
}

type Service struct {
	*platformservice.AppService
	systemStore repo.SystemStore
	sessions    SessionCounter
}

func New(
	appService *platformservice.AppService,
	systemStore repo.SystemStore,
	sessions SessionCounter,
) *Service {
	return &Service{
		AppService:  appService,
		systemStore: systemStore,
		sessions:    sessions,
	}
}
