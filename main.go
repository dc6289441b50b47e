package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"perfect-pic-gallery/internal/config"
	"perfect-pic-gallery/internal/consts"
	"perfect-pic-gallery/internal/db"
	"perfect-pic-gallery/internal/di"
	"perfect-pic-gallery/internal/logger"
	"perfect-pic-gallery/internal/middleware"
	"perfect-pic-gallery/internal/platform/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configDir := flag.String("config", "config", "配置文件目录")
	exportRoutes := flag.Bool("export", false, "导出路由到 routes.json 并退出")
	flag.Parse()

	if err := config.InitConfig(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "❌ 配置加载失败: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.Init(config.Get().Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ 日志初始化失败: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if file := config.ConfigFileUsed(); file != "" {
		log.Info("已加载配置文件", zap.String("file", file))
	} else {
		log.Info("未找到配置文件，使用默认配置与环境变量")
	}

	if err := db.InitDB(); err != nil {
		log.Fatal("数据库初始化失败", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	// 未启用或连接失败时返回 nil，限流回退到进程内实现
	service.GetRedisClient()
	defer func() { _ = service.CloseRedisClient() }()

	app, err := di.InitializeApplication(db.DB)
	if err != nil {
		log.Fatal("应用初始化失败", zap.Error(err))
	}

	gin.SetMode(config.Get().Server.Mode)

	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery())
	applyTrustedProxies(r, app.AppService)
	app.Router.Init(r)

	distFS := GetFrontendAssets()
	indexData := setupFrontend(r, distFS, app.AppService)
	r.NoRoute(getNoRouteHandler(distFS, indexData))

	if *exportRoutes {
		exportAPI(r)
		return
	}

	printWelcomeMessage()

	srv := &http.Server{
		Addr:              ":" + config.Get().Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("🚀 服务启动成功", zap.String("port", config.Get().Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("❌ 服务启动失败", zap.Error(err))
		}
	}()

	// 等待中断信号关闭服务器（设置 5 秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("🛑 正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("❌ 服务强制关闭", zap.Error(err))
		return
	}
	log.Info("✅ 服务已退出")
}

// splitTrustedProxyList 支持逗号、分号与空白分隔
func splitTrustedProxyList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
}

// applyTrustedProxies 为空时不信任任何代理；列表非法时同样回退为不信任
func applyTrustedProxies(r *gin.Engine, appService *service.AppService) {
	proxies := splitTrustedProxyList(appService.Config().Server.TrustedProxies)
	if len(proxies) == 0 {
		_ = r.SetTrustedProxies(nil)
		return
	}
	if err := r.SetTrustedProxies(proxies); err != nil {
		logger.L().Warn("trusted_proxies 配置无效，已禁用代理信任", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
}

func getNoRouteHandler(distFS fs.FS, indexData []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") || distFS == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "API not found"})
			return
		}

		// 尝试直接服务根目录下的静态文件 (如 favicon.ico, manifest.json)
		path := strings.TrimPrefix(c.Request.URL.Path, "/")
		if path != "" {
			if f, err := distFS.Open(path); err == nil {
				stat, statErr := f.Stat()
				_ = f.Close()
				if statErr == nil && !stat.IsDir() {
					c.FileFromFS(path, http.FS(distFS))
					return
				}
			}
		}

		// SPA 回退：服务 index.html 内容
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexData)
	}
}

func printWelcomeMessage() {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  后端版本 : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   🗄️  数据库   : %s\n", config.Get().Database.Type)
	fmt.Printf(" │   🔥  服务端口 : %s\n", config.Get().Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

func exportAPI(r *gin.Engine) {
	type RouteInfo struct {
		Method  string `json:"method"`
		Path    string `json:"path"`
		Handler string `json:"handler"`
	}

	exportList := make([]RouteInfo, 0, len(r.Routes()))
	for _, route := range r.Routes() {
		exportList = append(exportList, RouteInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	file, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		logger.L().Error("路由导出失败", zap.Error(err))
		return
	}
	if err := os.WriteFile("routes.json", file, 0644); err != nil {
		logger.L().Error("路由导出失败", zap.Error(err))
		return
	}

	fmt.Println("✅ 路由已成功导出到 routes.json")
}
