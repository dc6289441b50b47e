package service

import (
	"perfect-pic-gallery/internal/modules/user/repo"
	platformservice "perfect-pic-gallery/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	userStore  repo.UserStore
	imageStore repo.ImageStore
}

func New(appService *platformservice.AppService, userStore repo.UserStore, imageStore repo.ImageStore) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
		imageStore: imageStore,
	}
}
