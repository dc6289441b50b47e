package handler

import captchaservice "perfect-pic-gallery/internal/modules/captcha/service"

type Handler struct {
	captchaService *captchaservice.Service
}

func New(captchaService *captchaservice.Service) *Handler {
	return &Handler{captchaService: captchaService}
}
