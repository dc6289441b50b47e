package handler

import (
	"testing"
	"time"

	"perfect-pic-gallery/internal/config"
	"perfect-pic-gallery/internal/middleware"
	imagerepo "perfect-pic-gallery/internal/modules/image/repo"
	userrepo "perfect-pic-gallery/internal/modules/user/repo"
	userservice "perfect-pic-gallery/internal/modules/user/service"
	platformservice "perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	testHandler *Handler
	testImages  imagerepo.ImageStore
)

func setupTestDB(t *testing.T) *gorm.DB {
	gdb := testutils.SetupDB(t)
	appService := platformservice.NewStaticAppService(config.Config{Gallery: testutils.GalleryConfig()}, time.Now)
	testImages = imagerepo.NewImageRepository(gdb)
	testHandler = New(userservice.New(appService, userrepo.NewUserRepository(gdb), testImages))
	return gdb
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/user", middleware.Viewer(), middleware.RequireViewer())
	g.GET("/profile", testHandler.GetProfile)
	g.PATCH("/profile", testHandler.UpdateProfile)
	g.GET("/uploads", testHandler.ListUploads)
	g.GET("/favorites", testHandler.ListFavorites)
	g.GET("/history", testHandler.ListHistory)
	g.DELETE("/history", testHandler.ClearHistory)
	g.DELETE("/history/:image_id", testHandler.RemoveHistory)
	return r
}
