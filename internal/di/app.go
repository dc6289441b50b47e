package di

import (
	"perfect-pic-gallery/internal/modules"
	"perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/router"
)

type Application struct {
	Router     *router.Router
	Modules    *modules.AppModules
	AppService *service.AppService
}

func NewApplication(r *router.Router, m *modules.AppModules, s *service.AppService) *Application {
	return &Application{
		Router:     r,
		Modules:    m,
		AppService: s,
	}
}
