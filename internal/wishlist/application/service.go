// Package application 提供心愿单应用服务
package application

import (
	"context"

	catalogapp "github.com/autofixx/storefront/internal/catalog/application"
	catalogdomain "github.com/autofixx/storefront/internal/catalog/domain"
	"github.com/autofixx/storefront/internal/wishlist/domain"
	"github.com/autofixx/storefront/pkg/logger"
)

// WishlistService 心愿单应用服务
type WishlistService struct {
	catalog *catalogapp.CatalogQueryService
	repo    domain.WishlistRepository
}

// NewWishlistService 创建心愿单应用服务
func NewWishlistService(catalog *catalogapp.CatalogQueryService, repo domain.WishlistRepository) *WishlistService {
	return &WishlistService{catalog: catalog, repo: repo}
}

// Add 收藏商品，未知商品 id 按 no-op 处理
func (s *WishlistService) Add(ctx context.Context, sessionID string, productID uint) error {
	if _, err := s.catalog.GetProductByID(ctx, productID); err != nil {
		logger.Warn(ctx, "Add to wishlist ignored: unknown product", "product_id", productID)
		return nil
	}
	return s.repo.Add(ctx, sessionID, productID)
}

// Remove 取消收藏，不存在时 no-op
func (s *WishlistService) Remove(ctx context.Context, sessionID string, productID uint) error {
	return s.repo.Remove(ctx, sessionID, productID)
}

// List 返回会话收藏的商品，已下架或删除的商品跳过
func (s *WishlistService) List(ctx context.Context, sessionID string) ([]*catalogdomain.Product, error) {
	records, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	products := make([]*catalogdomain.Product, 0, len(records))
	for _, r := range records {
		p, err := s.catalog.GetProductByID(ctx, r.ProductID)
		if err != nil {
			continue
		}
		products = append(products, p)
	}
	return products, nil
}
