// Package domain 包含商品目录的领域模型
package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VehicleType 适配车型
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
)

// Compatibility 车型适配信息
type Compatibility struct {
	Makes  []string `json:"makes"`
	Models []string `json:"models"`
	Years  []string `json:"years"`
}

// Product 商品实体
// 目录加载后不可变，会话期间不存在修改路径
type Product struct {
	gorm.Model
	Name             string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Slug             string          `gorm:"column:slug;type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description      string          `gorm:"column:description;type:text" json:"description"`
	ShortDescription string          `gorm:"column:short_description;type:varchar(255)" json:"short_description"`
	Price            decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	// 折扣前价格，仅打折商品存在
	OriginalPrice *decimal.Decimal `gorm:"column:original_price;type:decimal(10,2)" json:"original_price,omitempty"`
	SKU           string           `gorm:"column:sku;type:varchar(20);uniqueIndex;not null" json:"sku"`
	Stock         int              `gorm:"column:stock;not null;default:0" json:"stock"`
	BrandID       *uint            `gorm:"column:brand_id;index" json:"brand_id,omitempty"`
	CategoryID    *uint            `gorm:"column:category_id;index" json:"category_id,omitempty"`
	VehicleType   VehicleType      `gorm:"column:vehicle_type;type:varchar(20);index;not null" json:"vehicle_type"`
	Images        []string         `gorm:"column:images;serializer:json" json:"images"`
	// 规格与适配信息以原生 JSON 结构存储，加载边界一次性解码
	Specifications map[string]any   `gorm:"column:specifications;serializer:json" json:"specifications"`
	Compatibility  Compatibility    `gorm:"column:compatibility;serializer:json" json:"compatibility"`
	Rating         *decimal.Decimal `gorm:"column:rating;type:decimal(3,2)" json:"rating,omitempty"`
	ReviewCount    int              `gorm:"column:review_count;default:0" json:"review_count"`
	IsActive       bool             `gorm:"column:is_active;default:true" json:"is_active"`
	IsFeatured     bool             `gorm:"column:is_featured;default:false" json:"is_featured"`
}

func (Product) TableName() string { return "products" }

// OnSale 是否在打折：折扣前价格存在且高于现价
func (p *Product) OnSale() bool {
	return p.OriginalPrice != nil && p.OriginalPrice.GreaterThan(p.Price)
}

// DiscountPercentage 折扣百分比 round((original-price)/original*100)，未打折返回 0
func (p *Product) DiscountPercentage() int {
	if p.OriginalPrice == nil {
		return 0
	}
	original := *p.OriginalPrice
	if original.LessThanOrEqual(decimal.Zero) || p.Price.LessThanOrEqual(decimal.Zero) || p.Price.GreaterThanOrEqual(original) {
		return 0
	}
	pct := original.Sub(p.Price).Div(original).Mul(decimal.NewFromInt(100))
	return int(pct.Round(0).IntPart())
}

// InStock 是否有库存
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// RatingValue 评分，缺失按 0 处理
func (p *Product) RatingValue() decimal.Decimal {
	if p.Rating == nil {
		return decimal.Zero
	}
	return *p.Rating
}

// StockStatus 库存状态文案
func (p *Product) StockStatus() string {
	switch {
	case p.Stock == 0:
		return "Out of Stock"
	case p.Stock <= 5:
		return "Only " + strconv.Itoa(p.Stock) + " left"
	case p.Stock <= 10:
		return "Low Stock"
	default:
		return "In Stock"
	}
}

// Category 商品分类，parentId 预留层级分组
type Category struct {
	gorm.Model
	Name        string      `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Slug        string      `gorm:"column:slug;type:varchar(100);uniqueIndex;not null" json:"slug"`
	Description string      `gorm:"column:description;type:varchar(255)" json:"description"`
	VehicleType VehicleType `gorm:"column:vehicle_type;type:varchar(20);index;not null" json:"vehicle_type"`
	ParentID    *uint       `gorm:"column:parent_id" json:"parent_id,omitempty"`
}

func (Category) TableName() string { return "categories" }

// Brand 品牌
type Brand struct {
	gorm.Model
	Name        string  `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Slug        string  `gorm:"column:slug;type:varchar(100);uniqueIndex;not null" json:"slug"`
	Description string  `gorm:"column:description;type:varchar(255)" json:"description"`
	LogoURL     *string `gorm:"column:logo_url;type:varchar(255)" json:"logo_url,omitempty"`
}

func (Brand) TableName() string { return "brands" }
