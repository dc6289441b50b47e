package system

import (
	"perfect-pic-gallery/internal/modules/system/handler"
	"perfect-pic-gallery/internal/modules/system/repo"
	"perfect-pic-gallery/internal/modules/system/service"
	platformservice "perfect-pic-gallery/internal/platform/service"
)

type Module struct {
	Service *service.Service
	Handler *handler.Handler
}

func New(
	appService *platformservice.AppService,
	systemStore repo.SystemStore,
	sessions service.SessionCounter,
) *Module {
	moduleService := service.New(appService, systemStore, sessions)
	moduleHandler := handler.New(moduleService)

	return &Module{
		Service: moduleService,
		Handler: moduleHandler,
	}
}
