package domain

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// 默认价格区间 [0, 1000]
var (
	defaultPriceMin = decimal.Zero
	defaultPriceMax = decimal.NewFromInt(1000)
)

// Criteria 商品筛选条件
// 空集合/默认值的条件视为恒真，不参与过滤
type Criteria struct {
	VehicleTypes []VehicleType   `json:"vehicle_types"`
	BrandIDs     []uint          `json:"brand_ids"`
	CategoryIDs  []uint          `json:"category_ids"`
	PriceMin     decimal.Decimal `json:"price_min"`
	PriceMax     decimal.Decimal `json:"price_max"`
	InStock      bool            `json:"in_stock"`
	OnSale       bool            `json:"on_sale"`
}

// NewCriteria 创建带默认价格区间的筛选条件
func NewCriteria() Criteria {
	return Criteria{
		PriceMin: defaultPriceMin,
		PriceMax: defaultPriceMax,
	}
}

// Active 是否存在生效的筛选条件，用于前端展示“清除筛选”入口
func (c Criteria) Active() bool {
	return len(c.VehicleTypes) > 0 ||
		len(c.BrandIDs) > 0 ||
		len(c.CategoryIDs) > 0 ||
		!c.PriceMin.Equal(defaultPriceMin) ||
		!c.PriceMax.Equal(defaultPriceMax) ||
		c.InStock ||
		c.OnSale
}

// Matches 商品是否满足全部筛选条件（AND 组合）
func (c Criteria) Matches(p *Product) bool {
	if len(c.VehicleTypes) > 0 && !containsVehicleType(c.VehicleTypes, p.VehicleType) {
		return false
	}
	// 品牌为空的商品不会命中非空的品牌筛选
	if len(c.BrandIDs) > 0 && (p.BrandID == nil || !containsID(c.BrandIDs, *p.BrandID)) {
		return false
	}
	if len(c.CategoryIDs) > 0 && (p.CategoryID == nil || !containsID(c.CategoryIDs, *p.CategoryID)) {
		return false
	}
	// 价格区间始终生效，边界包含
	if p.Price.LessThan(c.PriceMin) || p.Price.GreaterThan(c.PriceMax) {
		return false
	}
	if c.InStock && !p.InStock() {
		return false
	}
	if c.OnSale && !p.OnSale() {
		return false
	}
	return true
}

// SortKey 排序键
type SortKey string

const (
	// SortPopularity 默认：保持目录原始顺序
	SortPopularity SortKey = "popularity"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortName       SortKey = "name"
	SortRating     SortKey = "rating"
	SortNewest     SortKey = "newest"
)

// FilterProducts 按筛选条件过滤商品，返回新切片，不修改输入
func FilterProducts(products []*Product, c Criteria) []*Product {
	filtered := make([]*Product, 0, len(products))
	for _, p := range products {
		if c.Matches(p) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SortProducts 按排序键稳定排序，返回新切片，不修改输入
func SortProducts(products []*Product, key SortKey) []*Product {
	sorted := make([]*Product, len(products))
	copy(sorted, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.LessThan(sorted[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.GreaterThan(sorted[j].Price)
		})
	case SortName:
		cl := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return cl.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].RatingValue().GreaterThan(sorted[j].RatingValue())
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		})
	default:
		// popularity：目录顺序直通
	}

	return sorted
}

func containsVehicleType(list []VehicleType, v VehicleType) bool {
	for _, t := range list {
		if t == v {
			return true
		}
	}
	return false
}

func containsID(list []uint, id uint) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
