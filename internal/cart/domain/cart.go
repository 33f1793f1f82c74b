// Package domain 包含购物车的领域模型
package domain

import (
	"github.com/shopspring/decimal"

	catalog "github.com/autofixx/storefront/internal/catalog/domain"
)

// LineItem 购物车行项：商品与数量
type LineItem struct {
	Product  *catalog.Product `json:"product"`
	Quantity int              `json:"quantity"`
}

// LineTotal 行小计 price × quantity
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Product.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Subscriber 购物车变更回调
type Subscriber func(*Cart)

// Cart 会话级购物车聚合
// 行项保持插入顺序即展示顺序；同一商品至多一行，数量恒 ≥ 1
// 单会话独占，操作间不存在并发写，由调用方保证串行访问
type Cart struct {
	items []LineItem
	// isOpen 侧边栏可见性，纯 UI 状态，与业务无关但同属一个状态容器
	isOpen      bool
	subscribers []Subscriber
}

// New 创建空购物车
func New() *Cart {
	return &Cart{}
}

// Subscribe 注册变更回调，购物车每次变更后同步通知
func (c *Cart) Subscribe(fn Subscriber) {
	c.subscribers = append(c.subscribers, fn)
}

func (c *Cart) notify() {
	for _, fn := range c.subscribers {
		fn(c)
	}
}

// AddItem 加入商品：已存在的行数量 +1，否则追加数量为 1 的新行
// 本层不做库存校验，无库存商品由上游禁用入口
func (c *Cart) AddItem(p *catalog.Product) {
	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity++
			c.notify()
			return
		}
	}
	c.items = append(c.items, LineItem{Product: p, Quantity: 1})
	c.notify()
}

// RemoveItem 删除指定商品的行项，不存在时为 no-op
func (c *Cart) RemoveItem(productID uint) {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			c.notify()
			return
		}
	}
}

// UpdateQuantity 将行项数量设置为绝对值；quantity ≤ 0 等价于删除
// 商品不在购物车中时静默 no-op
func (c *Cart) UpdateQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			c.notify()
			return
		}
	}
}

// Merge 与已持久化的购物车合并，冲突时取较大数量
func (c *Cart) Merge(saved []LineItem) {
	for _, s := range saved {
		merged := false
		for i := range c.items {
			if c.items[i].Product.ID == s.Product.ID {
				if s.Quantity > c.items[i].Quantity {
					c.items[i].Quantity = s.Quantity
				}
				merged = true
				break
			}
		}
		if !merged {
			c.items = append(c.items, s)
		}
	}
	c.notify()
}

// Clear 清空购物车
func (c *Cart) Clear() {
	if len(c.items) == 0 {
		return
	}
	c.items = nil
	c.notify()
}

// Items 返回行项副本，插入顺序
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount 全部行项数量之和，供头部角标展示，而非行项条数
func (c *Cart) ItemCount() int {
	var total int
	for _, li := range c.items {
		total += li.Quantity
	}
	return total
}

// Subtotal 行小计之和
// 先求和，展示时一次性取 2 位小数，避免累积舍入误差
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.items {
		total = total.Add(li.LineTotal())
	}
	return total
}

// IsEmpty 购物车是否为空
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// IsOpen 侧边栏是否展开
func (c *Cart) IsOpen() bool {
	return c.isOpen
}

// Toggle 切换侧边栏可见性
func (c *Cart) Toggle() {
	c.isOpen = !c.isOpen
	c.notify()
}

// Open 展开侧边栏
func (c *Cart) Open() {
	if !c.isOpen {
		c.isOpen = true
		c.notify()
	}
}

// Close 收起侧边栏
func (c *Cart) Close() {
	if c.isOpen {
		c.isOpen = false
		c.notify()
	}
}
