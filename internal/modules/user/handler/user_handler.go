package handler

import (
	"net/http"

	"perfect-pic-gallery/internal/modules/common/httpx"
	moduledto "perfect-pic-gallery/internal/modules/user/dto"

	"github.com/gin-gonic/gin"
)

func viewerOrAbort(c *gin.Context) (uint, bool) {
	uid, ok := httpx.ViewerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "获取用户ID失败"})
		return 0, false
	}
	return uid, true
}

// GetProfile 获取当前用户资料与统计
func (h *Handler) GetProfile(c *gin.Context) {
	uid, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取用户信息失败")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile 修改当前用户资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	var req moduledto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	profile, err := h.userService.UpdateProfile(uid, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "更新用户信息失败")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListUploads 我的上传
func (h *Handler) ListUploads(c *gin.Context) {
	uid, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	var req moduledto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	resp, err := h.userService.ListUploads(uid, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取上传列表失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListFavorites 我的喜欢
func (h *Handler) ListFavorites(c *gin.Context) {
	uid, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	var req moduledto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	resp, err := h.userService.ListFavorites(uid, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取喜欢列表失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListHistory 浏览历史
func (h *Handler) ListHistory(c *gin.Context) {
	uid, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	var req moduledto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	resp, err := h.userService.ListHistory(uid, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取浏览历史失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ClearHistory 清空浏览历史
func (h *Handler) ClearHistory(c *gin.Context) {
	uid, ok := viewerOrAbort(c)
	if !ok {
		return
	}

	removed, err := h.userService.ClearHistory(uid)
	if err != nil {
		httpx.WriteServiceError(c, err, "清空浏览历史失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已清空浏览历史", "removed": removed})
}

// RemoveHistory 从浏览历史中移除一张图片
func (h *Handler) RemoveHistory(c *gin.Context) {
	uid, ok := viewerOrAbort(c)
	if !ok {
		return
	}
	imageID, ok := httpx.ParseID(c, "image_id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的图片ID"})
		return
	}

	if err := h.userService.RemoveHistory(uid, imageID); err != nil {
		httpx.WriteServiceError(c, err, "移除浏览历史失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "已从历史记录中移除"})
}
