package middleware

import (
	"fmt"
	"net/http"

	"perfect-pic-gallery/internal/platform/service"

	"github.com/gin-gonic/gin"
)

const defaultMaxBodyMB = 8

// BodyLimitMiddleware 限制请求体大小，Content-Length 已超限时直接返回 413
func BodyLimitMiddleware(appService *service.AppService) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxSizeMB := appService.Config().Request.MaxBodyMB
		if maxSizeMB <= 0 {
			maxSizeMB = defaultMaxBodyMB
		}
		maxBytes := int64(maxSizeMB) * 1024 * 1024

		if c.Request.ContentLength > maxBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("请求体不能超过 %dMB", maxSizeMB)})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
