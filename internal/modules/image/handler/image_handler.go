package handler

import (
	"net/http"

	"perfect-pic-gallery/internal/modules/common/httpx"
	moduledto "perfect-pic-gallery/internal/modules/image/dto"

	"github.com/gin-gonic/gin"
)

// ListImages 画廊列表
func (h *Handler) ListImages(c *gin.Context) {
	var query moduledto.ImageListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	resp, err := h.imageService.ListImages(query)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片列表失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCategories 全部分类
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.imageService.Categories()})
}

// GetImageDetail 图片详情，携带用户身份时记录浏览历史
func (h *Handler) GetImageDetail(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的图片ID"})
		return
	}

	var viewer *uint
	if uid, ok := httpx.ViewerID(c); ok {
		viewer = &uid
	}

	resp, err := h.imageService.GetImageDetail(id, viewer)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取图片详情失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetRelatedImages 相关图片
func (h *Handler) GetRelatedImages(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的图片ID"})
		return
	}

	images, err := h.imageService.Related(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "获取相关图片失败")
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}

// ToggleLike 喜欢/取消喜欢
func (h *Handler) ToggleLike(c *gin.Context) {
	uid, ok := httpx.ViewerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
		return
	}
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的图片ID"})
		return
	}

	resp, err := h.imageService.ToggleLike(uid, id)
	if err != nil {
		httpx.WriteServiceError(c, err, "操作失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadImage 记录一次下载并返回下载信息
func (h *Handler) DownloadImage(c *gin.Context) {
	id, ok := httpx.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的图片ID"})
		return
	}

	resp, err := h.imageService.Download(id)
	if err != nil {
		httpx.WriteServiceError(c, err, "下载失败")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateImage 发布图片
func (h *Handler) CreateImage(c *gin.Context) {
	uid, ok := httpx.ViewerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "请先登录"})
		return
	}

	var req moduledto.CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请填写图片标题、地址和分类"})
		return
	}

	image, err := h.imageService.CreateImage(uid, req)
	if err != nil {
		httpx.WriteServiceError(c, err, "图片上传失败")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "图片上传成功", "image": image})
}
