package router

import (
	captchahandler "perfect-pic-gallery/internal/modules/captcha/handler"

	"github.com/gin-gonic/gin"
)

func registerCaptchaRoutes(api *gin.RouterGroup, captchaLimiter gin.HandlerFunc, h *captchahandler.Handler) {
	captchaGroup := api.Group("/captcha")
	captchaGroup.GET("", captchaLimiter, h.GetCaptcha)
	captchaGroup.POST("/verify", captchaLimiter, h.VerifyCaptcha)
	captchaGroup.POST("/:id/refresh", captchaLimiter, h.RefreshCaptcha)
	captchaGroup.GET("/:id/image", h.GetCaptchaImage)
}
