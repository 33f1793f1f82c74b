// Package http 提供结算与订单查询的 REST 接口
package http

import (
	"errors"
	"strconv"

	"github.com/autofixx/storefront/internal/order/application"
	"github.com/autofixx/storefront/internal/order/domain"
	"github.com/autofixx/storefront/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader 客户端携带的会话标识
const SessionHeader = "X-Session-ID"

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	orders     *application.OrderService
	production bool
}

// NewOrderHandler 创建处理器
func NewOrderHandler(orders *application.OrderService, production bool) *OrderHandler {
	return &OrderHandler{orders: orders, production: production}
}

// RegisterRoutes 注册结算与订单路由
func (h *OrderHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/checkout", h.Checkout)
	orders := r.Group("/api/orders")
	{
		orders.GET("", h.List)
		orders.GET("/:number", h.GetByNumber)
		orders.POST("/:number/cancel", h.Cancel)
	}
}

func (h *OrderHandler) sessionID(c *gin.Context) string {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(SessionHeader, id)
	return id
}

// Checkout 结算当前会话购物车
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req application.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	order, err := h.orders.Checkout(c.Request.Context(), h.sessionID(c), req)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmptyCart):
			response.BadRequest(c, "cart is empty")
		case errors.Is(err, application.ErrInvalidCustomer):
			response.BadRequest(c, "invalid customer details")
		default:
			response.InternalError(c, h.production, err)
		}
		return
	}
	response.Success(c, order)
}

// GetByNumber 按订单号查询订单
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	order, err := h.orders.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			response.NotFound(c, "order not found")
			return
		}
		response.InternalError(c, h.production, err)
		return
	}
	response.Success(c, order)
}

// Cancel 取消待支付订单
func (h *OrderHandler) Cancel(c *gin.Context) {
	err := h.orders.Cancel(c.Request.Context(), h.sessionID(c), c.Param("number"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOrderNotFound):
			response.NotFound(c, "order not found")
		case errors.Is(err, application.ErrOrderNotCancellable):
			response.BadRequest(c, "order cannot be cancelled")
		default:
			response.InternalError(c, h.production, err)
		}
		return
	}
	response.Success(c, gin.H{"order_number": c.Param("number"), "status": string(domain.OrderStatusCancelled)})
}

// List 查询会话的历史订单
func (h *OrderHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, total, err := h.orders.ListBySession(c.Request.Context(), h.sessionID(c), limit, offset)
	if err != nil {
		response.InternalError(c, h.production, err)
		return
	}
	response.Success(c, gin.H{"orders": orders, "total": total})
}
