// Package response 提供 HTTP 响应统一封装
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success 返回 200 与数据
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 返回指定状态码与错误信息
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// NotFound 返回 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// BadRequest 返回 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// InternalError 返回 500，生产环境下隐藏具体错误信息
func InternalError(c *gin.Context, production bool, err error) {
	message := "Internal server error"
	if !production && err != nil {
		message = err.Error()
	}
	Error(c, http.StatusInternalServerError, message)
}
