// Package http 提供购物车 REST 接口
package http

import (
	"strconv"

	"github.com/autofixx/storefront/internal/cart/application"
	"github.com/autofixx/storefront/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SessionHeader 客户端携带的购物车会话标识
const SessionHeader = "X-Session-ID"

// CartHandler 购物车 HTTP 处理器
type CartHandler struct {
	carts *application.CartService
}

// NewCartHandler 创建处理器
func NewCartHandler(carts *application.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// RegisterRoutes 注册购物车路由
func (h *CartHandler) RegisterRoutes(r *gin.Engine) {
	cart := r.Group("/api/cart")
	{
		cart.GET("", h.Get)
		cart.POST("/items", h.AddItem)
		cart.PATCH("/items/:productId", h.UpdateQuantity)
		cart.DELETE("/items/:productId", h.RemoveItem)
		cart.DELETE("", h.Clear)
		cart.POST("/toggle", h.Toggle)
		cart.GET("/quote", h.Quote)
	}
}

// sessionID 解析会话标识，缺失时分配新会话并回写响应头
func (h *CartHandler) sessionID(c *gin.Context) string {
	id := c.GetHeader(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Header(SessionHeader, id)
	return id
}

// lineItemView 行项视图，金额以定点字符串输出
type lineItemView struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	Price     string `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type cartView struct {
	Items     []lineItemView `json:"items"`
	ItemCount int            `json:"item_count"`
	Subtotal  string         `json:"subtotal"`
	IsOpen    bool           `json:"is_open"`
}

func toCartView(snap application.Snapshot) cartView {
	items := make([]lineItemView, 0, len(snap.Items))
	for _, item := range snap.Items {
		view := lineItemView{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Slug:      item.Product.Slug,
			Price:     item.Product.Price.StringFixed(2),
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal().StringFixed(2),
		}
		if len(item.Product.Images) > 0 {
			view.Image = item.Product.Images[0]
		}
		items = append(items, view)
	}
	return cartView{
		Items:     items,
		ItemCount: snap.ItemCount,
		Subtotal:  snap.Subtotal.StringFixed(2),
		IsOpen:    snap.IsOpen,
	}
}

// Get 返回当前会话购物车
func (h *CartHandler) Get(c *gin.Context) {
	sessionID := h.sessionID(c)
	snap := h.carts.Get(c.Request.Context(), sessionID)
	response.Success(c, toCartView(snap))
}

type addItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// AddItem 加入商品
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "product_id is required")
		return
	}
	sessionID := h.sessionID(c)
	h.carts.AddItem(c.Request.Context(), sessionID, req.ProductID)
	snap := h.carts.Get(c.Request.Context(), sessionID)
	response.Success(c, toCartView(snap))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity 设置行项数量
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, ok := parseID(c.Param("productId"))
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "quantity is required")
		return
	}
	sessionID := h.sessionID(c)
	h.carts.UpdateQuantity(c.Request.Context(), sessionID, productID, req.Quantity)
	snap := h.carts.Get(c.Request.Context(), sessionID)
	response.Success(c, toCartView(snap))
}

// RemoveItem 移除行项
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := parseID(c.Param("productId"))
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	sessionID := h.sessionID(c)
	h.carts.RemoveItem(c.Request.Context(), sessionID, productID)
	snap := h.carts.Get(c.Request.Context(), sessionID)
	response.Success(c, toCartView(snap))
}

// Clear 清空购物车
func (h *CartHandler) Clear(c *gin.Context) {
	sessionID := h.sessionID(c)
	h.carts.Clear(c.Request.Context(), sessionID)
	snap := h.carts.Get(c.Request.Context(), sessionID)
	response.Success(c, toCartView(snap))
}

// Toggle 切换侧边栏可见性
func (h *CartHandler) Toggle(c *gin.Context) {
	sessionID := h.sessionID(c)
	h.carts.Toggle(c.Request.Context(), sessionID)
	snap := h.carts.Get(c.Request.Context(), sessionID)
	response.Success(c, toCartView(snap))
}

type quoteView struct {
	Subtotal              string  `json:"subtotal"`
	Shipping              string  `json:"shipping"`
	Tax                   string  `json:"tax"`
	Total                 string  `json:"total"`
	FreeShippingRemaining *string `json:"free_shipping_remaining,omitempty"`
}

// Quote 按当前购物车派生结算报价
// 可选查询参数 weight 指定总重量（kg），影响大件运费阶梯
func (h *CartHandler) Quote(c *gin.Context) {
	var weight *decimal.Decimal
	if raw := c.Query("weight"); raw != "" {
		w, err := decimal.NewFromString(raw)
		if err != nil || w.IsNegative() {
			response.BadRequest(c, "invalid weight")
			return
		}
		weight = &w
	}

	sessionID := h.sessionID(c)
	q := h.carts.Quote(c.Request.Context(), sessionID, weight)

	view := quoteView{
		Subtotal: q.Subtotal.StringFixed(2),
		Shipping: q.Shipping.StringFixed(2),
		Tax:      q.Tax.StringFixed(2),
		Total:    q.Total.StringFixed(2),
	}
	if q.FreeShippingRemaining != nil {
		remaining := q.FreeShippingRemaining.StringFixed(2)
		view.FreeShippingRemaining = &remaining
	}
	response.Success(c, view)
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
