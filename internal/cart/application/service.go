// Package application 提供购物车应用服务
package application

import (
	"context"
	"sync"

	"github.com/autofixx/storefront/internal/cart/domain"
	catalogapp "github.com/autofixx/storefront/internal/catalog/application"
	"github.com/autofixx/storefront/pkg/logger"
	"github.com/autofixx/storefront/pkg/metrics"
	"github.com/shopspring/decimal"
)

// CartService 购物车应用服务
// 每个会话一个 Cart 实例，按会话串行化访问；内存状态是权威，
// 落库为 fire-and-forget 的持久化协作，失败只记日志
type CartService struct {
	mu       sync.RWMutex
	sessions map[string]*session

	catalog *catalogapp.CatalogQueryService
	repo    domain.CartRepository
	pricer  domain.Pricer
	metrics *metrics.Metrics
}

// session 会话条目
// 持久化恢复只在会话首次使用时执行一次，之后内存状态始终领先于
// 落库状态，读取不再回读数据库，避免在途写入被旧行覆盖
type session struct {
	mu       sync.Mutex
	cart     *domain.Cart
	restored bool

	// persistMu 串行化该会话的落库；persistSeq 标记最新快照，
	// 过期快照直接丢弃，旧写入不会落在新写入之后
	persistMu  sync.Mutex
	persistSeq uint64
}

// NewCartService 创建购物车应用服务
// repo 与 m 均可为 nil（不落库 / 不上报指标）
func NewCartService(catalog *catalogapp.CatalogQueryService, repo domain.CartRepository, pricer domain.Pricer, m *metrics.Metrics) *CartService {
	return &CartService{
		sessions: make(map[string]*session),
		catalog:  catalog,
		repo:     repo,
		pricer:   pricer,
		metrics:  m,
	}
}

func (s *CartService) getOrCreate(sessionID string) *session {
	s.mu.RLock()
	entry, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return entry
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok = s.sessions[sessionID]; ok {
		return entry
	}
	entry = &session{cart: domain.New()}
	s.sessions[sessionID] = entry
	if s.metrics != nil {
		s.metrics.CartsActive.Set(float64(len(s.sessions)))
	}
	return entry
}

// withCart 在会话锁内执行购物车操作，首次访问时先恢复持久化状态
func (s *CartService) withCart(ctx context.Context, sessionID string, fn func(*domain.Cart)) {
	entry := s.getOrCreate(sessionID)
	entry.mu.Lock()
	defer entry.mu.Unlock()
	s.restoreLocked(ctx, sessionID, entry)
	fn(entry.cart)
}

// restoreLocked 会话首次使用时从持久化行项恢复购物车，仅执行一次
// 目录里已不存在的商品直接丢弃；加载失败按空购物车继续
func (s *CartService) restoreLocked(ctx context.Context, sessionID string, entry *session) {
	if entry.restored {
		return
	}
	entry.restored = true
	if s.repo == nil {
		return
	}

	records, err := s.repo.GetBySession(ctx, sessionID)
	if err != nil {
		logger.Warn(ctx, "Failed to load persisted cart", "session_id", sessionID, "error", err)
		return
	}

	var saved []domain.LineItem
	for _, r := range records {
		p, err := s.catalog.GetProductByID(ctx, r.ProductID)
		if err != nil {
			logger.Warn(ctx, "Dropping persisted cart item: unknown product", "product_id", r.ProductID)
			continue
		}
		saved = append(saved, domain.LineItem{Product: p, Quantity: r.Quantity})
	}
	if len(saved) > 0 {
		entry.cart.Merge(saved)
	}
}

// AddItem 将商品加入会话购物车
// 未知商品 id 按 no-op 处理，不作为错误
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uint) {
	p, err := s.catalog.GetProductByID(ctx, productID)
	if err != nil {
		logger.Warn(ctx, "Add to cart ignored: unknown product", "product_id", productID)
		return
	}

	s.withCart(ctx, sessionID, func(c *domain.Cart) {
		c.AddItem(p)
	})
	if s.metrics != nil {
		s.metrics.CartItemsAdded.Inc()
	}
	s.persistAsync(sessionID)
}

// RemoveItem 从会话购物车移除商品，不存在时 no-op
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID uint) {
	s.withCart(ctx, sessionID, func(c *domain.Cart) {
		c.RemoveItem(productID)
	})
	s.persistAsync(sessionID)
}

// UpdateQuantity 设置行项数量，≤0 等价于移除
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID uint, quantity int) {
	s.withCart(ctx, sessionID, func(c *domain.Cart) {
		c.UpdateQuantity(productID, quantity)
	})
	s.persistAsync(sessionID)
}

// Clear 清空会话购物车
func (s *CartService) Clear(ctx context.Context, sessionID string) {
	s.withCart(ctx, sessionID, func(c *domain.Cart) {
		c.Clear()
	})
	s.persistAsync(sessionID)
}

// Toggle 切换侧边栏可见性
func (s *CartService) Toggle(ctx context.Context, sessionID string) {
	s.withCart(ctx, sessionID, func(c *domain.Cart) {
		c.Toggle()
	})
}

// Open 展开侧边栏
func (s *CartService) Open(ctx context.Context, sessionID string) {
	s.withCart(ctx, sessionID, func(c *domain.Cart) {
		c.Open()
	})
}

// Close 收起侧边栏
func (s *CartService) Close(ctx context.Context, sessionID string) {
	s.withCart(ctx, sessionID, func(c *domain.Cart) {
		c.Close()
	})
}

// Snapshot 会话购物车快照
type Snapshot struct {
	Items     []domain.LineItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  decimal.Decimal   `json:"subtotal"`
	IsOpen    bool              `json:"is_open"`
}

// Get 读取会话购物车快照
func (s *CartService) Get(ctx context.Context, sessionID string) Snapshot {
	var snap Snapshot
	s.withCart(ctx, sessionID, func(c *domain.Cart) {
		snap = Snapshot{
			Items:     c.Items(),
			ItemCount: c.ItemCount(),
			Subtotal:  c.Subtotal(),
			IsOpen:    c.IsOpen(),
		}
	})
	return snap
}

// Quote 由当前购物车派生结算报价
func (s *CartService) Quote(ctx context.Context, sessionID string, weight *decimal.Decimal) domain.Quote {
	var q domain.Quote
	s.withCart(ctx, sessionID, func(c *domain.Cart) {
		q = s.pricer.QuoteFor(c.Subtotal(), weight)
	})
	return q
}

// Subscribe 注册会话购物车的变更回调
func (s *CartService) Subscribe(sessionID string, fn domain.Subscriber) {
	s.withCart(context.Background(), sessionID, func(c *domain.Cart) {
		c.Subscribe(fn)
	})
}

// persistAsync 异步落库当前购物车内容，失败只记日志
// 同一会话的落库串行执行，仅最新快照会真正写入
func (s *CartService) persistAsync(sessionID string) {
	if s.repo == nil {
		return
	}

	entry := s.getOrCreate(sessionID)
	entry.mu.Lock()
	items := entry.cart.Items()
	entry.persistSeq++
	seq := entry.persistSeq
	entry.mu.Unlock()

	go func() {
		entry.persistMu.Lock()
		defer entry.persistMu.Unlock()

		entry.mu.Lock()
		latest := entry.persistSeq
		entry.mu.Unlock()
		if seq != latest {
			// 已有更新的快照在排队，本次写入作废
			return
		}

		ctx := context.Background()
		if err := s.repo.ReplaceSession(ctx, sessionID, nil, items); err != nil {
			logger.Warn(ctx, "Failed to persist cart", "session_id", sessionID, "error", err)
		}
	}()
}
