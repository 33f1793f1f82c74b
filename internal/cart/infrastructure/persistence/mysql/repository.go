// Package mysql 提供购物车的 MySQL 持久化实现
package mysql

import (
	"context"

	"github.com/autofixx/storefront/internal/cart/domain"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) domain.CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) GetBySession(ctx context.Context, sessionID string) ([]domain.ItemRecord, error) {
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

// ReplaceSession 以事务整体替换会话的购物车行项
func (r *cartRepository) ReplaceSession(ctx context.Context, sessionID string, userID *uint, items []domain.LineItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&domain.ItemRecord{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		records := make([]domain.ItemRecord, 0, len(items))
		for _, item := range items {
			records = append(records, domain.ItemRecord{
				SessionID: sessionID,
				UserID:    userID,
				ProductID: item.Product.ID,
				Quantity:  item.Quantity,
			})
		}
		return tx.Create(&records).Error
	})
}

func (r *cartRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&domain.ItemRecord{}).Error
}

// Migrate 建表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.ItemRecord{})
}
