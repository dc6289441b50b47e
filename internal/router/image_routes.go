package router

import (
	"perfect-pic-gallery/internal/middleware"
	imagehandler "perfect-pic-gallery/internal/modules/image/handler"

	"github.com/gin-gonic/gin"
)

func registerImageRoutes(api *gin.RouterGroup, h *imagehandler.Handler) {
	imageGroup := api.Group("/images")
	imageGroup.GET("", h.ListImages)
	imageGroup.GET("/categories", h.GetCategories)
	imageGroup.GET("/:id", h.GetImageDetail)
	imageGroup.GET("/:id/related", h.GetRelatedImages)
	imageGroup.POST("/:id/download", h.DownloadImage)

	imageGroup.POST("", middleware.RequireViewer(), h.CreateImage)
	imageGroup.POST("/:id/like", middleware.RequireViewer(), h.ToggleLike)
}
