package dto

import "time"

// Challenge 下发给前端的验证码挑战
type Challenge struct {
	ID        string    `json:"captcha_id"`
	Image     string    `json:"captcha_image"` // data:image/svg+xml URI
	Length    int       `json:"length"`
	ExpiresAt time.Time `json:"expires_at"`
}

type VerifyRequest struct {
	CaptchaID     string `json:"captcha_id" binding:"required"`
	CaptchaAnswer string `json:"captcha_answer"`
	CaseSensitive bool   `json:"case_sensitive"`
}

type VerifyResponse struct {
	Valid bool `json:"valid"`
}
