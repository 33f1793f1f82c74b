package domain

import (
	"context"
	"errors"
)

// ErrOrderNotFound 订单不存在
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// Save 在事务中保存订单及行项
	Save(ctx context.Context, order *Order) error
	// GetByNumber 按订单号获取订单（含行项）
	GetByNumber(ctx context.Context, orderNumber string) (*Order, error)
	// ListBySession 获取会话的订单列表，按下单时间倒序
	ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]*Order, int64, error)
	// UpdateStatus 更新订单状态
	UpdateStatus(ctx context.Context, orderNumber string, status OrderStatus) error
}
