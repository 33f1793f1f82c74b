// Package domain 包含订单上下文的领域模型
package domain

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Order 订单实体
// 金额与单价在下单时定格，后续目录调价不回溯
type Order struct {
	gorm.Model
	// 订单号，对外展示的唯一标识
	OrderNumber string `gorm:"column:order_number;type:varchar(32);uniqueIndex;not null" json:"order_number"`
	// 会话 ID
	SessionID string `gorm:"column:session_id;type:varchar(64);index;not null" json:"session_id"`
	// 用户 ID（匿名下单时为空）
	UserID *uint `gorm:"column:user_id;index" json:"user_id,omitempty"`
	// 订单状态
	Status OrderStatus `gorm:"column:status;type:varchar(20);index;not null" json:"status"`
	// 商品小计
	Subtotal decimal.Decimal `gorm:"column:subtotal;type:decimal(10,2);not null" json:"subtotal"`
	// 运费
	Shipping decimal.Decimal `gorm:"column:shipping;type:decimal(10,2);not null" json:"shipping"`
	// 税费
	Tax decimal.Decimal `gorm:"column:tax;type:decimal(10,2);not null" json:"tax"`
	// 应付总额
	Total decimal.Decimal `gorm:"column:total;type:decimal(10,2);not null" json:"total"`
	// 收件人
	CustomerName string `gorm:"column:customer_name;type:varchar(128);not null" json:"customer_name"`
	// 联系邮箱
	Email string `gorm:"column:email;type:varchar(128);not null" json:"email"`
	// 联系电话
	Phone string `gorm:"column:phone;type:varchar(32)" json:"phone,omitempty"`
	// 收货地址
	ShippingAddress string `gorm:"column:shipping_address;type:varchar(512);not null" json:"shipping_address"`
	// 行项
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem 订单行项，单价为下单时快照
type OrderItem struct {
	gorm.Model
	OrderID     uint            `gorm:"column:order_id;index;not null" json:"-"`
	ProductID   uint            `gorm:"column:product_id;not null" json:"product_id"`
	ProductName string          `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	SKU         string          `gorm:"column:sku;type:varchar(32);not null" json:"sku"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:decimal(10,2);not null" json:"unit_price"`
	Quantity    int             `gorm:"column:quantity;not null" json:"quantity"`
}

// LineTotal 行项金额
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewOrderNumber 生成订单号：AF-<毫秒时间戳 base36>-<随机数 base36>，全大写
func NewOrderNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)

	n, err := rand.Int(rand.Reader, big.NewInt(36*36*36*36*36))
	if err != nil {
		n = big.NewInt(time.Now().UnixNano() % (36 * 36 * 36 * 36 * 36))
	}
	suffix := strconv.FormatInt(n.Int64(), 36)

	return strings.ToUpper("AF-" + ts + "-" + suffix)
}
