// Package domain 定义心愿单模型与仓储契约
package domain

import (
	"context"

	"gorm.io/gorm"
)

// ItemRecord 心愿单行项，按会话归属
type ItemRecord struct {
	gorm.Model
	SessionID string `gorm:"type:varchar(64);index:idx_wishlist_session;uniqueIndex:idx_wishlist_session_product" json:"session_id"`
	ProductID uint   `gorm:"uniqueIndex:idx_wishlist_session_product" json:"product_id"`
}

// TableName 指定表名
func (ItemRecord) TableName() string {
	return "wishlist_items"
}

// WishlistRepository 心愿单仓储接口
type WishlistRepository interface {
	ListBySession(ctx context.Context, sessionID string) ([]ItemRecord, error)
	Add(ctx context.Context, sessionID string, productID uint) error
	Remove(ctx context.Context, sessionID string, productID uint) error
}
