package dto

import "time"

type LoginRequest struct {
	Phone         string `json:"phone" binding:"required"`
	Password      string `json:"password" binding:"required"`
	CaptchaID     string `json:"captcha_id" binding:"required"`
	CaptchaAnswer string `json:"captcha_answer" binding:"required"`
}

type RegisterRequest struct {
	Phone           string `json:"phone" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	CaptchaID       string `json:"captcha_id" binding:"required"`
	CaptchaAnswer   string `json:"captcha_answer" binding:"required"`
}

// AuthUser 登录/注册成功后返回的用户信息，客户端以 id 作为 X-User-ID
type AuthUser struct {
	ID        uint       `json:"id"`
	Phone     string     `json:"phone"`
	Username  string     `json:"username"`
	Bio       string     `json:"bio"`
	Avatar    string     `json:"avatar"`
	JoinDate  string     `json:"join_date"`
	LastLogin *time.Time `json:"last_login"`
}
