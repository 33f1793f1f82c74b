// Package http 提供登录注册的 REST 接口
// 当前为演示实现：只做入参校验，不签发令牌，不落库
package http

import (
	"github.com/autofixx/storefront/pkg/response"
	"github.com/autofixx/storefront/pkg/validate"
	"github.com/gin-gonic/gin"
)

// AuthHandler 认证 HTTP 处理器
type AuthHandler struct{}

// NewAuthHandler 创建处理器
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// RegisterRoutes 注册认证路由
func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login 登录（演示）
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if !validate.Email(req.Email) {
		response.Success(c, gin.H{"success": false, "message": "invalid email address"})
		return
	}
	if len(req.Password) < 6 {
		response.Success(c, gin.H{"success": false, "message": "password must be at least 6 characters"})
		return
	}
	response.Success(c, gin.H{"success": true, "message": "logged in"})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register 注册（演示）
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if req.Name == "" {
		response.Success(c, gin.H{"success": false, "message": "name is required"})
		return
	}
	if !validate.Email(req.Email) {
		response.Success(c, gin.H{"success": false, "message": "invalid email address"})
		return
	}
	if len(req.Password) < 6 {
		response.Success(c, gin.H{"success": false, "message": "password must be at least 6 characters"})
		return
	}
	response.Success(c, gin.H{"success": true, "message": "account created"})
}
