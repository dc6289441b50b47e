package middleware

import (
	"net/http"
	"testing"

	"perfect-pic-gallery/internal/config"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证按配置设置静态资源缓存头，未配置时不设置。
func TestStaticCacheMiddleware_SetsCacheControl(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(StaticCacheMiddleware(newTestAppService(config.Config{
		Server: config.ServerConfig{StaticCacheControl: "public, max-age=60"},
	})))
	r.GET("/x", okHandler)

	w := serveFrom(r, http.MethodGet, "/x", "")
	if got := w.Header().Get("Cache-Control"); got != "public, max-age=60" {
		t.Fatalf("Cache-Control = %q", got)
	}

	r2 := gin.New()
	r2.Use(StaticCacheMiddleware(newTestAppService(config.Config{})))
	r2.GET("/x", okHandler)
	if got := serveFrom(r2, http.MethodGet, "/x", "").Header().Get("Cache-Control"); got != "" {
		t.Fatalf("期望不设置 Cache-Control，实际为 %q", got)
	}
}
