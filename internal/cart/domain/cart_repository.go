package domain

import (
	"context"

	"gorm.io/gorm"
)

// ItemRecord 购物车行项的持久化形态，按会话（可选归属用户）落库
type ItemRecord struct {
	gorm.Model
	SessionID string `gorm:"column:session_id;type:varchar(64);index;not null"`
	UserID    *uint  `gorm:"column:user_id;index"`
	ProductID uint   `gorm:"column:product_id;not null"`
	Quantity  int    `gorm:"column:quantity;not null;default:1"`
}

func (ItemRecord) TableName() string { return "cart_items" }

// CartRepository 购物车持久化协作方
// 内存购物车是权威状态，落库为异步后备，失败不影响会话内一致性
type CartRepository interface {
	// 加载会话的持久化行项
	GetBySession(ctx context.Context, sessionID string) ([]ItemRecord, error)
	// 以当前购物车内容整体替换会话的持久化行项
	ReplaceSession(ctx context.Context, sessionID string, userID *uint, items []LineItem) error
	// 删除会话的持久化行项
	DeleteSession(ctx context.Context, sessionID string) error
}
