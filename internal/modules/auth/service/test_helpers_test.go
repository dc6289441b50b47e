package service

import (
	"testing"
	"time"

	"perfect-pic-gallery/internal/captcha"
	"perfect-pic-gallery/internal/config"
	captchaservice "perfect-pic-gallery/internal/modules/captcha/service"
	userrepo "perfect-pic-gallery/internal/modules/user/repo"
	platformservice "perfect-pic-gallery/internal/platform/service"
	"perfect-pic-gallery/internal/testutils"

	"gorm.io/gorm"
)

var (
	testService *Service
	testCaptcha *captchaservice.Service
	testNow     = time.Date(2024, 3, 8, 9, 30, 0, 0, time.UTC)
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

	appService := platformservice.NewStaticAppService(config.Config{}, func() time.Time { return testNow })
	testService = New(appService, userrepo.NewUserRepository(gdb), testCaptcha)
	return gdb
}

// issueCaptcha 签发一个答案为 AAAA 的验证码
func issueCaptcha(t *testing.T) string {
	t.Helper()
	ch, err := testCaptcha.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return ch.ID
}
