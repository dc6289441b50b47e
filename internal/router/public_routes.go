package router

import (
	"net/http"

	"perfect-pic-gallery/internal/consts"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong from gin",
			"version": consts.ApplicationVersion,
		})
	})
}
