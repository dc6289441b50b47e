package handler

import (
	"testing"
	"time"

	"perfect-pic-gallery/internal/config"
	"perfect-pic-gallery/internal/middleware"
	modulerepo "perfect-pic-gallery/internal/modules/image/repo"
	imageservice "perfect-pic-gallery/internal/modules/image/service"
	userrepo "perfect-pic-gallery/internal/modules/user/repo"
	platformservice "perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var testHandler *Handler

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewStaticAppService(config.Config{Gallery: testutils.GalleryConfig()}, time.Now)
	testHandler = New(imageservice.New(appService, userrepo.NewUserRepository(gdb), modulerepo.NewImageRepository(gdb)))
	return gdb
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/images", middleware.Viewer())
	api.GET("", testHandler.ListImages)
	api.GET("/categories", testHandler.GetCategories)
	api.GET("/:id", testHandler.GetImageDetail)
	api.GET("/:id/related", testHandler.GetRelatedImages)
	api.POST("/:id/like", middleware.RequireViewer(), testHandler.ToggleLike)
	api.POST("/:id/download", testHandler.DownloadImage)
	api.POST("", middleware.RequireViewer(), testHandler.CreateImage)
	return r
}
