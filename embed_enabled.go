//go:build embed

package main

import (
	"embed"
	"io/fs"
	"net/http"

	"perfect-pic-gallery/internal/logger"
	"perfect-pic-gallery/internal/middleware"
	"perfect-pic-gallery/internal/platform/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed all:frontend
var embedFS embed.FS

// GetFrontendAssets 返回静态资源的文件系统
// 编译时带上 -tags embed 就会走这里
func GetFrontendAssets() fs.FS {
	f, err := fs.Sub(embedFS, "frontend")
	if err != nil {
		panic(err)
	}
	return f
}

func setupFrontend(r *gin.Engine, distFS fs.FS, appService *service.AppService) []byte {
	assetsFS, err := fs.Sub(distFS, "assets")
	if err == nil {
		r.Group("/assets", middleware.StaticCacheMiddleware(appService)).
			StaticFS("", http.FS(assetsFS))
	} else {
		logger.L().Warn("无法挂载 frontend/assets", zap.Error(err))
	}

	indexData, err := fs.ReadFile(distFS, "index.html")
	if err != nil {
		logger.L().Fatal("无法读取嵌入的 frontend/index.html", zap.Error(err))
	}

	return indexData
}
