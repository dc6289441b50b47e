package captcha

import (
	"perfect-pic-gallery/internal/config"
	"perfect-pic-gallery/internal/modules/captcha/handler"
	"perfect-pic-gallery/internal/modules/captcha/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(cfg config.CaptchaConfig) (*Module, error) {
	moduleService, err := service.New(cfg)
	if err != nil {
		return nil, err
	}

	return &Module{
		Service: moduleService,
		Handler: handler.New(moduleService),
	}, nil
}
