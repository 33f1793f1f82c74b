package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// OrderPlacedEvent 下单成功事件
type OrderPlacedEvent struct {
	OrderNumber string          `json:"order_number"`
	SessionID   string          `json:"session_id"`
	Email       string          `json:"email"`
	ItemCount   int             `json:"item_count"`
	Total       decimal.Decimal `json:"total"`
	OccurredOn  time.Time       `json:"occurred_on"`
}

// EventPublisher 订单事件发布接口
type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
}
