// Package http 提供心愿单 REST 接口
package http

import (
	"strconv"

	"github.com/autofixx/storefront/internal/wishlist/application"
	"github.com/autofixx/storefront/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader 客户端携带的会话标识
const SessionHeader = "X-Session-ID"

// WishlistHandler 心愿单 HTTP 处理器
type WishlistHandler struct {
	wishlist   *application.WishlistService
	production bool
}

// NewWishlistHandler 创建处理器
func NewWishlistHandler(wishlist *application.WishlistService, production bool) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, production: production}
}

// RegisterRoutes 注册心愿单路由
func (h *WishlistHandler) RegisterRoutes(r *gin.Engine) {
	wl := r.Group("/api/wishlist")
	{
		wl.GET("", h.List)
		wl.POST("/items", h.Add)
		wl.DELETE("/items/:productId", h.Remove)
	}
}

func (h *WishlistHandler) sessionID(c *gin.Context) string {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(SessionHeader, id)
	return id
}

// List 返回会话收藏的商品
func (h *WishlistHandler) List(c *gin.Context) {
	products, err := h.wishlist.List(c.Request.Context(), h.sessionID(c))
	if err != nil {
		response.InternalError(c, h.production, err)
		return
	}
	response.Success(c, gin.H{"items": products, "count": len(products)})
}

type addRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// Add 收藏商品
func (h *WishlistHandler) Add(c *gin.Context) {
	var req addRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "product_id is required")
		return
	}
	if err := h.wishlist.Add(c.Request.Context(), h.sessionID(c), req.ProductID); err != nil {
		response.InternalError(c, h.production, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}

// Remove 取消收藏
func (h *WishlistHandler) Remove(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid product id")
		return
	}
	if err := h.wishlist.Remove(c.Request.Context(), h.sessionID(c), uint(productID)); err != nil {
		response.InternalError(c, h.production, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}
