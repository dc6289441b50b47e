package auth

import (
	"perfect-pic-gallery/internal/modules/auth/handler"
	"perfect-pic-gallery/internal/modules/auth/repo"
	"perfect-pic-gallery/internal/modules/auth/service"
	platformservice "perfect-pic-gallery/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(appService *platformservice.AppService, userStore repo.UserStore, captcha service.CaptchaVerifier) *Module {
	moduleService := service.New(appService, userStore, captcha)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
