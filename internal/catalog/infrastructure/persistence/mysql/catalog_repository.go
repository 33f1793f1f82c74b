package mysql

import (
	"context"

	"github.com/autofixx/storefront/internal/catalog/domain"
	"gorm.io/gorm"
)

type catalogRepository struct{ db *gorm.DB }

// NewCatalogRepository 创建目录仓储实例
func NewCatalogRepository(db *gorm.DB) domain.CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	var products []*domain.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var categories []*domain.Category
	err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error
	return categories, err
}

func (r *catalogRepository) ListBrands(ctx context.Context) ([]*domain.Brand, error) {
	var brands []*domain.Brand
	err := r.db.WithContext(ctx).Order("id ASC").Find(&brands).Error
	return brands, err
}

// Migrate 创建目录相关表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.Product{}, &domain.Category{}, &domain.Brand{})
}
