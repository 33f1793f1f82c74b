// Package application 提供下单与订单查询的应用服务
package application

import (
	"context"
	"errors"
	"time"

	cartapp "github.com/autofixx/storefront/internal/cart/application"
	"github.com/autofixx/storefront/internal/order/domain"
	"github.com/autofixx/storefront/pkg/logger"
	"github.com/autofixx/storefront/pkg/metrics"
	"github.com/autofixx/storefront/pkg/validate"
)

var (
	// ErrEmptyCart 空购物车不允许结算
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidCustomer 客户信息不完整或格式不合法
	ErrInvalidCustomer = errors.New("invalid customer details")
	// ErrOrderNotCancellable 只有待支付订单可以取消
	ErrOrderNotCancellable = errors.New("order cannot be cancelled")
)

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	CustomerName    string `json:"customer_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ShippingAddress string `json:"shipping_address"`
}

// OrderService 订单应用服务
type OrderService struct {
	carts     *cartapp.CartService
	repo      domain.OrderRepository
	publisher domain.EventPublisher
	metrics   *metrics.Metrics
}

// NewOrderService 创建订单应用服务
func NewOrderService(carts *cartapp.CartService, repo domain.OrderRepository, publisher domain.EventPublisher, m *metrics.Metrics) *OrderService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return &OrderService{carts: carts, repo: repo, publisher: publisher, metrics: m}
}

type noopPublisher struct{}

func (noopPublisher) PublishOrderPlaced(ctx context.Context, event domain.OrderPlacedEvent) error {
	return nil
}

// Checkout 结算当前会话购物车
// 单价在此刻定格；订单落库成功后清空购物车并发布事件，
// 事件发布失败不回滚订单，只记日志
func (s *OrderService) Checkout(ctx context.Context, sessionID string, req CheckoutRequest) (*domain.Order, error) {
	start := time.Now()

	if req.CustomerName == "" || req.ShippingAddress == "" || !validate.Email(req.Email) {
		return nil, ErrInvalidCustomer
	}
	if req.Phone != "" && !validate.Phone(req.Phone) {
		return nil, ErrInvalidCustomer
	}

	snap := s.carts.Get(ctx, sessionID)
	if len(snap.Items) == 0 {
		return nil, ErrEmptyCart
	}

	quote := s.carts.Quote(ctx, sessionID, nil)

	order := &domain.Order{
		OrderNumber:     domain.NewOrderNumber(),
		SessionID:       sessionID,
		Status:          domain.OrderStatusPending,
		Subtotal:        quote.Subtotal,
		Shipping:        quote.Shipping,
		Tax:             quote.Tax,
		Total:           quote.Total,
		CustomerName:    req.CustomerName,
		Email:           req.Email,
		Phone:           req.Phone,
		ShippingAddress: req.ShippingAddress,
	}
	for _, item := range snap.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			SKU:         item.Product.SKU,
			UnitPrice:   item.Product.Price,
			Quantity:    item.Quantity,
		})
	}

	if err := s.repo.Save(ctx, order); err != nil {
		if s.metrics != nil {
			s.metrics.OrdersTotal.WithLabelValues("failed").Inc()
		}
		return nil, err
	}

	s.carts.Clear(ctx, sessionID)

	event := domain.OrderPlacedEvent{
		OrderNumber: order.OrderNumber,
		SessionID:   sessionID,
		Email:       order.Email,
		ItemCount:   snap.ItemCount,
		Total:       order.Total,
		OccurredOn:  time.Now(),
	}
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		logger.Error(ctx, "Failed to publish order placed event", "order_number", order.OrderNumber, "error", err)
	}

	if s.metrics != nil {
		s.metrics.OrdersTotal.WithLabelValues("placed").Inc()
		s.metrics.CheckoutDuration.Observe(time.Since(start).Seconds())
	}

	logger.Info(ctx, "Order placed", "order_number", order.OrderNumber, "total", order.Total.StringFixed(2))
	return order, nil
}

// GetByNumber 按订单号查询订单
func (s *OrderService) GetByNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	return s.repo.GetByNumber(ctx, orderNumber)
}

// Cancel 取消待支付订单
// 只允许取消本会话的订单，其他会话的订单号一律当作不存在
func (s *OrderService) Cancel(ctx context.Context, sessionID, orderNumber string) error {
	order, err := s.repo.GetByNumber(ctx, orderNumber)
	if err != nil {
		return err
	}
	if order.SessionID != sessionID {
		return domain.ErrOrderNotFound
	}
	if order.Status != domain.OrderStatusPending {
		return ErrOrderNotCancellable
	}

	if err := s.repo.UpdateStatus(ctx, orderNumber, domain.OrderStatusCancelled); err != nil {
		return err
	}
	if s.metrics != nil {
		s.metrics.OrdersTotal.WithLabelValues("cancelled").Inc()
	}

	logger.Info(ctx, "Order cancelled", "order_number", orderNumber)
	return nil
}

// ListBySession 查询会话的历史订单
func (s *OrderService) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]*domain.Order, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListBySession(ctx, sessionID, limit, offset)
}
