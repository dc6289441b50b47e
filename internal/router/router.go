package router

import (
	"perfect-pic-gallery/internal/middleware"
	"perfect-pic-gallery/internal/modules"
	"perfect-pic-gallery/internal/platform/service"

	"github.com/gin-gonic/gin"
)

type Router struct {
	modules *modules.AppModules
	service *service.AppService
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService) *Router {
	return &Router{
		modules: appModules,
		service: appService,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	api.Use(middleware.BodyLimitMiddleware(rt.service))
	api.Use(middleware.Viewer())

	// 同一作用域的路由共用一个限流实例
	captchaLimiter := middleware.RateLimitMiddleware(rt.service, "captcha", middleware.CaptchaLimits)
	authLimiter := middleware.RateLimitMiddleware(rt.service, "auth", middleware.AuthLimits)

	registerPublicRoutes(api)
	registerSystemRoutes(api, rt.modules.System.Handler)
	registerCaptchaRoutes(api, captchaLimiter, rt.modules.Captcha.Handler)
	registerAuthRoutes(api, authLimiter, rt.modules.Auth.Handler)
	registerImageRoutes(api, rt.modules.Image.Handler)
	registerUserRoutes(api, rt.modules.User.Handler)
}
