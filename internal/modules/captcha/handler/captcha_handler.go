package handler

import (
	"net/http"

	moduledto "perfect-pic-gallery/internal/modules/captcha/dto"
	"perfect-pic-gallery/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetCaptcha 签发新的图形验证码
func (h *Handler) GetCaptcha(c *gin.Context) {
	challenge, err := h.captchaService.Issue()
	if err != nil {
		httpx.WriteServiceError(c, err, "验证码生成失败")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, challenge)
}

// RefreshCaptcha 在原会话上换一张验证码
func (h *Handler) RefreshCaptcha(c *gin.Context) {
	challenge, err := h.captchaService.Refresh(c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "验证码刷新失败")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, challenge)
}

// GetCaptchaImage 以 image/svg+xml 返回当前验证码
func (h *Handler) GetCaptchaImage(c *gin.Context) {
	svg, err := h.captchaService.SVG(c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "验证码生成失败")
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(svg))
}

// VerifyCaptcha 校验答案但不消耗验证码，供前端即时提示
func (h *Handler) VerifyCaptcha(c *gin.Context) {
	var req moduledto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	valid := h.captchaService.Verify(req.CaptchaID, req.CaptchaAnswer, req.CaseSensitive)
	c.JSON(http.StatusOK, moduledto.VerifyResponse{Valid: valid})
}
