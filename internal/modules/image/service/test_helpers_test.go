package service

import (
	"testing"
	"time"

	"perfect-pic-gallery/internal/config"
	modulerepo "perfect-pic-gallery/internal/modules/image/repo"
	userrepo "perfect-pic-gallery/internal/modules/user/repo"
	platformservice "perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService *Service
	testNow     = time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
)

func setupTestDB(t *testing.T) *gorm.DB {
	return setupTestDBWithGallery(t, testutils.GalleryConfig())
}

func setupTestDBWithGallery(t *testing.T, gallery config.GalleryConfig) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewStaticAppService(config.Config{Gallery: gallery}, func() time.Time { return testNow })
	testService = New(appService, userrepo.NewUserRepository(gdb), modulerepo.NewImageRepository(gdb))
	return gdb
}
