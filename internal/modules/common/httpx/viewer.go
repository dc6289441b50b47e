package httpx

import (
	"strconv"

	"perfect-pic-gallery/internal/consts"

	"github.com/gin-gonic/gin"
)

// ViewerID 读取 Viewer 中间件写入的当前用户 ID
func ViewerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(consts.ContextUserID)
	if !exists {
		return 0, false
	}
	uid, ok := v.(uint)
	return uid, ok && uid > 0
}

// ParseID 解析路径参数中的正整数 ID
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
