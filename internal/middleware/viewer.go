package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"perfect-pic-gallery/internal/consts"

	"github.com/gin-gonic/gin"
)

// Viewer 解析 X-User-ID 请求头，合法时写入上下文；缺失或非法时按匿名处理
func Viewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader(consts.HeaderUserID))
		if raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
				c.Set(consts.ContextUserID, uint(id))
			}
		}
		c.Next()
	}
}

// RequireViewer 要求请求携带合法的用户身份
func RequireViewer() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(consts.ContextUserID); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
			c.Abort()
			return
		}
		c.Next()
	}
}
