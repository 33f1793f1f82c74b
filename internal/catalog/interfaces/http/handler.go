// Package http 提供商品目录的 HTTP 接口
package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/autofixx/storefront/internal/catalog/application"
	"github.com/autofixx/storefront/internal/catalog/domain"
	"github.com/autofixx/storefront/pkg/response"
	"github.com/autofixx/storefront/pkg/validate"
)

// CatalogHandler HTTP 处理器
type CatalogHandler struct {
	query      *application.CatalogQueryService
	production bool
}

// NewCatalogHandler 创建 HTTP 处理器实例
func NewCatalogHandler(query *application.CatalogQueryService, production bool) *CatalogHandler {
	return &CatalogHandler{query: query, production: production}
}

// RegisterRoutes 注册路由
func (h *CatalogHandler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/products/featured", h.FeaturedProducts)
		api.GET("/products/:slug", h.GetProduct)
		api.GET("/categories", h.ListCategories)
		api.GET("/brands", h.ListBrands)
	}
}

// ProductView 商品响应，附带派生字段
type ProductView struct {
	*domain.Product
	DiscountPercentage int    `json:"discount_percentage,omitempty"`
	StockStatus        string `json:"stock_status"`
	OnSale             bool   `json:"on_sale"`
	DisplayPrice       string `json:"display_price"`
	Summary            string `json:"summary,omitempty"`
	ShippingEstimate   string `json:"shipping_estimate,omitempty"`
}

func toView(p *domain.Product) ProductView {
	summary := p.ShortDescription
	if summary == "" {
		summary = validate.TruncateText(p.Description, 140)
	}
	return ProductView{
		Product:            p,
		DiscountPercentage: p.DiscountPercentage(),
		StockStatus:        p.StockStatus(),
		OnSale:             p.OnSale(),
		DisplayPrice:       validate.FormatPrice(p.Price),
		Summary:            summary,
		ShippingEstimate:   shippingEstimate(p),
	}
}

// shippingEstimate 按库存水平给出发货时效文案，无货不展示
func shippingEstimate(p *domain.Product) string {
	switch {
	case p.Stock == 0:
		return ""
	case p.Stock <= 5:
		return validate.ShippingEstimate(5)
	default:
		return validate.ShippingEstimate(2)
	}
}

func toViews(products []*domain.Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, toView(p))
	}
	return views
}

// ListProducts 按查询参数筛选并排序商品
// 支持 ?vehicleType= ?category= ?brand= ?minPrice= ?maxPrice= ?inStock= ?onSale= ?sort=
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	criteria, err := h.parseCriteria(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sortKey := domain.SortKey(c.DefaultQuery("sort", string(domain.SortPopularity)))
	products := h.query.ListProducts(c.Request.Context(), criteria, sortKey)
	response.Success(c, toViews(products))
}

// FeaturedProducts 精选商品
func (h *CatalogHandler) FeaturedProducts(c *gin.Context) {
	products := h.query.FeaturedProducts(c.Request.Context())
	response.Success(c, toViews(products))
}

// GetProduct 按 slug 获取商品详情
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	slug := c.Param("slug")

	p, err := h.query.GetProductBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, application.ErrProductNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.InternalError(c, h.production, err)
		return
	}

	response.Success(c, toView(p))
}

// ListCategories 列出分类，支持 ?vehicleType=
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	vehicleType := domain.VehicleType(c.Query("vehicleType"))
	response.Success(c, h.query.ListCategories(c.Request.Context(), vehicleType))
}

// ListBrands 列出品牌
func (h *CatalogHandler) ListBrands(c *gin.Context) {
	response.Success(c, h.query.ListBrands(c.Request.Context()))
}

func (h *CatalogHandler) parseCriteria(c *gin.Context) (domain.Criteria, error) {
	criteria := domain.NewCriteria()

	for _, v := range splitMulti(c.QueryArray("vehicleType")) {
		criteria.VehicleTypes = append(criteria.VehicleTypes, domain.VehicleType(v))
	}

	if raw := c.Query("minPrice"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return criteria, errors.New("invalid minPrice")
		}
		criteria.PriceMin = min
	}
	if raw := c.Query("maxPrice"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return criteria, errors.New("invalid maxPrice")
		}
		criteria.PriceMax = max
	}

	if raw := c.Query("inStock"); raw != "" {
		criteria.InStock, _ = strconv.ParseBool(raw)
	}
	if raw := c.Query("onSale"); raw != "" {
		criteria.OnSale, _ = strconv.ParseBool(raw)
	}

	// slug 形式的分类/品牌参数换算为 id 筛选
	criteria = h.query.ResolveCriteria(criteria, c.Query("category"), c.Query("brand"))

	return criteria, nil
}

// splitMulti 同时支持重复参数与逗号分隔两种写法
func splitMulti(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
