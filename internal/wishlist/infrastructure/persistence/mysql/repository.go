// Package mysql 提供心愿单的 MySQL 持久化实现
package mysql

import (
	"context"

	"github.com/autofixx/storefront/internal/wishlist/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建心愿单仓储
func NewWishlistRepository(db *gorm.DB) domain.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (r *wishlistRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.ItemRecord, error) {
	var records []domain.ItemRecord
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Add 幂等加入，重复加入同一商品不报错
func (r *wishlistRepository) Add(ctx context.Context, sessionID string, productID uint) error {
	record := domain.ItemRecord{SessionID: sessionID, ProductID: productID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record).Error
}

// Remove 移除商品，不存在时 no-op
func (r *wishlistRepository) Remove(ctx context.Context, sessionID string, productID uint) error {
	return r.db.WithContext(ctx).
		Where("session_id = ? AND product_id = ?", sessionID, productID).
		Delete(&domain.ItemRecord{}).Error
}

// Migrate 建表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.ItemRecord{})
}
