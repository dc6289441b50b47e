package middleware

import (
	"net/http"
	"net/http/httptest"
	"time"

	"perfect-pic-gallery/internal/config"
	"perfect-pic-gallery/internal/platform/service"

	"github.com/gin-gonic/gin"
)

func newTestAppService(cfg config.Config) *service.AppService {
	// 中间件测试只走进程内限流
	service.SetRedisClient(nil)
	return service.NewStaticAppService(cfg, time.Now)
}

func serveFrom(r *gin.Engine, method, path, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func okHandler(c *gin.Context) { c.Status(http.StatusOK) }
