package domain

import "context"

// CatalogRepository 目录仓储接口，目录快照的持久化协作方
type CatalogRepository interface {
	// 按目录顺序加载全部商品
	ListProducts(ctx context.Context) ([]*Product, error)
	// 加载全部分类
	ListCategories(ctx context.Context) ([]*Category, error)
	// 加载全部品牌
	ListBrands(ctx context.Context) ([]*Brand, error)
}
