package middleware

import (
	"perfect-pic-gallery/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// StaticCacheMiddleware 为前端静态资源添加 Cache-Control 头，值为空时不设置
func StaticCacheMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cc := appService.Config().Server.StaticCacheControl; cc != "" {
			c.Header("Cache-Control", cc)
		}
		c.Next()
	}
}
