package handler

import (
	"testing"
	"time"

	"perfect-pic-gallery/internal/config"
	modulerepo "perfect-pic-gallery/internal/modules/system/repo"
	systemservice "perfect-pic-gallery/internal/modules/system/service"
	platformservice "perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewStaticAppService(config.Config{}, time.Now)
	testHandler = New(systemservice.New(appService, modulerepo.NewSystemRepository(gdb), nil))
	return gdb
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/stats", testHandler.GetServerStats)
	return r
}
