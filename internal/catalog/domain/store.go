package domain

// Store 目录快照，启动时构建后只读
// 按 id 与 slug 建立索引，查询期望 O(1)
type Store struct {
	products   []*Product
	categories []*Category
	brands     []*Brand

	productsByID   map[uint]*Product
	productsBySlug map[string]*Product
	categoriesByID map[uint]*Category
	categorySlug   map[string]*Category
	brandsByID     map[uint]*Brand
	brandSlug      map[string]*Brand
}

// NewStore 由静态集合构建目录快照
func NewStore(products []*Product, categories []*Category, brands []*Brand) *Store {
	s := &Store{
		products:       products,
		categories:     categories,
		brands:         brands,
		productsByID:   make(map[uint]*Product, len(products)),
		productsBySlug: make(map[string]*Product, len(products)),
		categoriesByID: make(map[uint]*Category, len(categories)),
		categorySlug:   make(map[string]*Category, len(categories)),
		brandsByID:     make(map[uint]*Brand, len(brands)),
		brandSlug:      make(map[string]*Brand, len(brands)),
	}

	for _, p := range products {
		s.productsByID[p.ID] = p
		s.productsBySlug[p.Slug] = p
	}
	for _, c := range categories {
		s.categoriesByID[c.ID] = c
		s.categorySlug[c.Slug] = c
	}
	for _, b := range brands {
		s.brandsByID[b.ID] = b
		s.brandSlug[b.Slug] = b
	}

	return s
}

// Products 目录顺序的全部商品
func (s *Store) Products() []*Product {
	out := make([]*Product, len(s.products))
	copy(out, s.products)
	return out
}

// Categories 全部分类
func (s *Store) Categories() []*Category {
	out := make([]*Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Brands 全部品牌
func (s *Store) Brands() []*Brand {
	out := make([]*Brand, len(s.brands))
	copy(out, s.brands)
	return out
}

// ProductByID 按 id 查找商品
func (s *Store) ProductByID(id uint) (*Product, bool) {
	p, ok := s.productsByID[id]
	return p, ok
}

// ProductBySlug 按 slug 查找商品
func (s *Store) ProductBySlug(slug string) (*Product, bool) {
	p, ok := s.productsBySlug[slug]
	return p, ok
}

// CategoryByID 按 id 查找分类
func (s *Store) CategoryByID(id uint) (*Category, bool) {
	c, ok := s.categoriesByID[id]
	return c, ok
}

// CategoryBySlug 按 slug 查找分类
func (s *Store) CategoryBySlug(slug string) (*Category, bool) {
	c, ok := s.categorySlug[slug]
	return c, ok
}

// BrandByID 按 id 查找品牌
func (s *Store) BrandByID(id uint) (*Brand, bool) {
	b, ok := s.brandsByID[id]
	return b, ok
}

// BrandBySlug 按 slug 查找品牌
func (s *Store) BrandBySlug(slug string) (*Brand, bool) {
	b, ok := s.brandSlug[slug]
	return b, ok
}

// FeaturedProducts 精选商品视图
func (s *Store) FeaturedProducts() []*Product {
	var out []*Product
	for _, p := range s.products {
		if p.IsFeatured {
			out = append(out, p)
		}
	}
	return out
}

// ActiveProducts 上架商品视图
func (s *Store) ActiveProducts() []*Product {
	var out []*Product
	for _, p := range s.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

// CategoriesByVehicleType 指定车型的分类视图
func (s *Store) CategoriesByVehicleType(t VehicleType) []*Category {
	var out []*Category
	for _, c := range s.categories {
		if c.VehicleType == t {
			out = append(out, c)
		}
	}
	return out
}
