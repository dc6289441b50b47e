package handler

import (
	"testing"
	"time"

	"perfect-pic-gallery/internal/captcha"
	"perfect-pic-gallery/internal/config"
	authservice "perfect-pic-gallery/internal/modules/auth/service"
	captchaservice "perfect-pic-gallery/internal/modules/captcha/service"
	userrepo "perfect-pic-gallery/internal/modules/user/repo"
	platformservice "perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	testHandler *Handler
	testCaptcha *captchaservice.Service
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb := testutils.SetupDB(t)

	var err error
	testCaptcha, err = captchaservice.New(testutils.CaptchaConfig(),
		captchaservice.WithSourceFactory(func() captcha.Source { return testutils.ZeroSource{} }),
	)
	if err != nil {
		t.Fatalf("创建验证码服务失败: %v", err)
	}
	appService := platformservice.NewStaticAppService(config.Config{}, time.Now)
	testHandler = New(authservice.New(appService, userrepo.NewUserRepository(gdb), testCaptcha))
	return gdb
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", testHandler.Register)
	r.POST("/login", testHandler.Login)
	return r
}
