package service

import (
	"testing"
	"time"

	"perfect-pic-gallery/internal/config"
	imagerepo "perfect-pic-gallery/internal/modules/image/repo"
	modulerepo "perfect-pic-gallery/internal/modules/user/repo"
	platformservice "perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService *Service
	testImages  imagerepo.ImageStore
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewStaticAppService(config.Config{Gallery: testutils.GalleryConfig()}, time.Now)
	testImages = imagerepo.NewImageRepository(gdb)
	testService = New(appService, modulerepo.NewUserRepository(gdb), testImages)
	return gdb
}
