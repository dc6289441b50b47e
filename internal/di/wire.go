//go:build wireinject
// +build wireinject

package di

import (
	"perfect-pic-gallery/internal/modules"
	imagerepo "perfect-pic-gallery/internal/modules/image/repo"
	systemrepo "perfect-pic-gallery/internal/modules/system/repo"
	userrepo "perfect-pic-gallery/internal/modules/user/repo"
	"perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/router"

	"github.com/google/wire"
	"gorm.io/gorm"
)

func InitializeApplication(gormDB *gorm.DB) (*Application, error) {
	wire.Build(
		service.NewAppService,
		userrepo.NewUserRepository,
		imagerepo.NewImageRepository,
		systemrepo.NewSystemRepository,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
