package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/autofixx/storefront/internal/catalog/domain"
	"github.com/autofixx/storefront/pkg/cache"
	"github.com/autofixx/storefront/pkg/logger"
)

// ErrProductNotFound 未知商品 slug/id
var ErrProductNotFound = errors.New("product not found")

const featuredCacheKey = "catalog:featured"

// CatalogQueryService 商品目录查询服务
// 启动时从仓储加载一次目录快照，之后全部查询走内存索引
type CatalogQueryService struct {
	repo     domain.CatalogRepository
	store    *domain.Store
	cache    *cache.RedisCache
	cacheTTL time.Duration
}

// NewCatalogQueryService 创建商品目录查询服务实例并加载目录快照
// cache 可为 nil，此时精选视图不走缓存
func NewCatalogQueryService(ctx context.Context, repo domain.CatalogRepository, c *cache.RedisCache, cacheTTL time.Duration) (*CatalogQueryService, error) {
	products, err := repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	categories, err := repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	brands, err := repo.ListBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load brands: %w", err)
	}

	logger.Info(ctx, "Catalog snapshot loaded",
		"products", len(products),
		"categories", len(categories),
		"brands", len(brands),
	)

	return &CatalogQueryService{
		repo:     repo,
		store:    domain.NewStore(products, categories, brands),
		cache:    c,
		cacheTTL: cacheTTL,
	}, nil
}

// Store 暴露目录快照给其他上下文（购物车按 id 解析商品）
func (s *CatalogQueryService) Store() *domain.Store {
	return s.store
}

// ListProducts 按筛选条件过滤并排序商品
func (s *CatalogQueryService) ListProducts(ctx context.Context, criteria domain.Criteria, sortKey domain.SortKey) []*domain.Product {
	filtered := domain.FilterProducts(s.store.ActiveProducts(), criteria)
	return domain.SortProducts(filtered, sortKey)
}

// GetProductBySlug 按 slug 获取商品
func (s *CatalogQueryService) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	p, ok := s.store.ProductBySlug(slug)
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// GetProductByID 按 id 获取商品
func (s *CatalogQueryService) GetProductByID(ctx context.Context, id uint) (*domain.Product, error) {
	p, ok := s.store.ProductByID(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// ListCategories 列出分类，vehicleType 为空时返回全部
func (s *CatalogQueryService) ListCategories(ctx context.Context, vehicleType domain.VehicleType) []*domain.Category {
	if vehicleType == "" {
		return s.store.Categories()
	}
	return s.store.CategoriesByVehicleType(vehicleType)
}

// ListBrands 列出全部品牌
func (s *CatalogQueryService) ListBrands(ctx context.Context) []*domain.Brand {
	return s.store.Brands()
}

// FeaturedProducts 精选商品视图，读穿 Redis 缓存
func (s *CatalogQueryService) FeaturedProducts(ctx context.Context) []*domain.Product {
	if s.cache == nil {
		return s.store.FeaturedProducts()
	}

	var cached []*domain.Product
	hit, err := s.cache.GetJSON(ctx, featuredCacheKey, &cached)
	if err == nil && hit {
		return cached
	}

	featured := s.store.FeaturedProducts()
	if err := s.cache.SetJSON(ctx, featuredCacheKey, featured, s.cacheTTL); err != nil {
		logger.Warn(ctx, "Failed to cache featured products", "error", err)
	}
	return featured
}

// ResolveCriteria 将 shop 页的 slug 查询参数（?category=、?brand=）换算成筛选条件
func (s *CatalogQueryService) ResolveCriteria(criteria domain.Criteria, categorySlug, brandSlug string) domain.Criteria {
	if categorySlug != "" {
		if c, ok := s.store.CategoryBySlug(categorySlug); ok {
			criteria.CategoryIDs = append(criteria.CategoryIDs, c.ID)
		}
	}
	if brandSlug != "" {
		if b, ok := s.store.BrandBySlug(brandSlug); ok {
			criteria.BrandIDs = append(criteria.BrandIDs, b.ID)
		}
	}
	return criteria
}
