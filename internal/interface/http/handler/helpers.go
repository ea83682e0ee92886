package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseID 解析路径参数中的数字ID
// 非数字ID与不存在的ID同样按404处理(路由层面的"资源不存在")
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
