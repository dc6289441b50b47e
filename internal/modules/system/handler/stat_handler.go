package handler

import (
	"net/http"

	"perfect-pic-gallery/internal/modules/common/httpx"

	"github.com/gin-gonic/gin"
)

// GetServerStats 获取画廊概览统计信息
func (h *Handler) GetServerStats(c *gin.Context) {
	stats, err := h.systemService.GetServerStats()
	if err != nil {
		httpx.WriteServiceError(c, err, "统计画廊数据失败")
		return
	}

	c.JSON(http.StatusOK, stats)
}
