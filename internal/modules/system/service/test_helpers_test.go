package service

import (
	"testing"
	"time"

	"perfect-pic-gallery/internal/config"
	modulerepo "perfect-pic-gallery/internal/modules/system/repo"
	platformservice "perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/testutils"

	"gorm.io/gorm"
)

type fixedSessions int

func (n fixedSessions) Len() int { return int(n) }

var testService *Service

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewStaticAppService(config.Config{}, time.Now)
	testService = New(appService, modulerepo.NewSystemRepository(gdb), fixedSessions(3))
	return gdb
}
