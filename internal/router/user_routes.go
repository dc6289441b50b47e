package router

import (
	"perfect-pic-gallery/internal/middleware"
	userhandler "perfect-pic-gallery/internal/modules/user/handler"

	"github.com/gin-gonic/gin"
)

func registerUserRoutes(api *gin.RouterGroup, h *userhandler.Handler) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.RequireViewer())

	userGroup.GET("/profile", h.GetProfile)
	userGroup.PATCH("/profile", h.UpdateProfile)

	userGroup.GET("/uploads", h.ListUploads)
	userGroup.GET("/favorites", h.ListFavorites)

	userGroup.GET("/history", h.ListHistory)
	userGroup.DELETE("/history", h.ClearHistory)
	userGroup.DELETE("/history/:image_id", h.RemoveHistory)
}
