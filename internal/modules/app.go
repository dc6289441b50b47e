package modules

import (
	"perfect-pic-gallery/internal/modules/auth"
	"perfect-pic-gallery/internal/modules/captcha"
	"perfect-pic-gallery/internal/modules/image"
	imagerepo "perfect-pic-gallery/internal/modules/image/repo"
	"perfect-pic-gallery/internal/modules/system"
	systemrepo "perfect-pic-gallery/internal/modules/system/repo"
	"perfect-pic-gallery/internal/modules/user"
	userrepo "perfect-pic-gallery/internal/modules/user/repo"
	platformservice "perfect-pic-gallery/internal/platform/service"
)

type AppModules struct {
	Captcha *captcha.Module
	Auth    *auth.Module
	User    *user.Module
	Image   *image.Module
	System  *system.Module
}

// New 组装各业务模块；验证码配置非法时返回错误
func New(
	appService *platformservice.AppService,
	userStore userrepo.UserStore,
	imageStore imagerepo.ImageStore,
	systemStore systemrepo.SystemStore,
) (*AppModules, error) {
	captchaModule, err := captcha.New(appService.Config().Captcha)
	if err != nil {
		return nil, err
	}

	return &AppModules{
		Captcha: captchaModule,
		Auth:    auth.New(appService, userStore, captchaModule.Service),
		User:    user.New(appService, userStore, imageStore),
		Image:   image.New(appService, userStore, imageStore),
		System:  system.New(appService, systemStore, captchaModule.Service),
	}, nil
}
