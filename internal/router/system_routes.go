package router

import (
	systemhandler "perfect-pic-gallery/internal/modules/system/handler"

	"github.com/gin-gonic/gin"
)

func registerSystemRoutes(api *gin.RouterGroup, h *systemhandler.Handler) {
	api.GET("/stats", h.GetServerStats)
}
