package mysql

import (
	"context"

	"github.com/autofixx/storefront/internal/catalog/domain"
	"github.com/autofixx/storefront/pkg/logger"
	"github.com/autofixx/storefront/pkg/validate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed 灌入静态目录数据，表非空时跳过
func Seed(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Debug(ctx, "Catalog already seeded, skipping", "products", count)
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(seedCategories()).Error; err != nil {
			return err
		}
		if err := tx.Create(seedBrands()).Error; err != nil {
			return err
		}
		if err := tx.Create(seedProducts()).Error; err != nil {
			return err
		}
		logger.Info(ctx, "Catalog seeded successfully")
		return nil
	})
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func uintPtr(v uint) *uint { return &v }

// slug 统一由名称派生，种子数据不单独维护 slug 字段

func seedCategories() []*domain.Category {
	categories := []*domain.Category{
		{Name: "Engine Parts", Description: "Engine components and accessories", VehicleType: domain.VehicleTypeCar},
		{Name: "Brake System", Description: "Brake components and accessories", VehicleType: domain.VehicleTypeCar},
		{Name: "Suspension", Description: "Suspension components", VehicleType: domain.VehicleTypeCar},
		{Name: "Electrical", Description: "Electrical components and accessories", VehicleType: domain.VehicleTypeCar},
		{Name: "Tires & Wheels", Description: "Tires and wheel accessories", VehicleType: domain.VehicleTypeCar},
		{Name: "Body Parts", Description: "Body panels and accessories", VehicleType: domain.VehicleTypeCar},
		{Name: "Motorcycle Engine", Description: "Motorcycle engine parts", VehicleType: domain.VehicleTypeMotorcycle},
		{Name: "Motorcycle Brakes", Description: "Motorcycle brake components", VehicleType: domain.VehicleTypeMotorcycle},
		{Name: "Motorcycle Accessories", Description: "Motorcycle accessories and gear", VehicleType: domain.VehicleTypeMotorcycle},
	}
	for _, c := range categories {
		c.Slug = validate.Slugify(c.Name)
	}
	return categories
}

func seedBrands() []*domain.Brand {
	brands := []*domain.Brand{
		{Name: "Bosch", Description: "Premium automotive parts"},
		{Name: "Brembo", Description: "High-performance brake systems"},
		{Name: "K&N", Description: "High-flow air filters"},
		{Name: "Michelin", Description: "Premium tires"},
		{Name: "Pioneer", Description: "Car electronics and audio"},
		{Name: "Mann Filter", Description: "Filtration solutions"},
		{Name: "NGK", Description: "Spark plugs and ignition"},
		{Name: "Bilstein", Description: "Premium shock absorbers"},
	}
	for _, b := range brands {
		b.Slug = validate.Slugify(b.Name)
	}
	return brands
}

func seedProducts() []*domain.Product {
	products := []*domain.Product{
		{
			Name:             "Performance Brake Disc Rotor",
			Description:      "High-performance brake disc rotor with enhanced cooling design. Made from high-carbon steel for superior durability and performance.",
			ShortDescription: "High-performance brake disc with enhanced cooling",
			Price:            dec("89.99"),
			OriginalPrice:    decPtr("119.99"),
			SKU:              "BRM-001",
			Stock:            25,
			BrandID:          uintPtr(2),
			CategoryID:       uintPtr(2),
			VehicleType:      domain.VehicleTypeCar,
			Images:           []string{"https://images.unsplash.com/photo-1605371924599-2d0365da1ae0?ixlib=rb-4.0.3"},
			Specifications: map[string]any{
				"diameter":   "320mm",
				"thickness":  "28mm",
				"material":   "High-carbon steel",
				"ventilated": true,
				"coating":    "Zinc plated",
			},
			Compatibility: domain.Compatibility{
				Makes:  []string{"BMW", "Mercedes", "Audi"},
				Models: []string{"3 Series", "C-Class", "A4"},
				Years:  []string{"2015-2023"},
			},
			Rating:      decPtr("4.8"),
			ReviewCount: 127,
			IsActive:    true,
			IsFeatured:  true,
		},
		{
			Name:             "High-Flow Air Filter",
			Description:      "K&N high-flow air filter designed to increase horsepower and acceleration while providing excellent filtration.",
			ShortDescription: "High-flow air filter for increased performance",
			Price:            dec("45.99"),
			SKU:              "KN-002",
			Stock:            50,
			BrandID:          uintPtr(3),
			CategoryID:       uintPtr(1),
			VehicleType:      domain.VehicleTypeCar,
			Images:           []string{"https://images.unsplash.com/photo-1609630875171-b1321377ee65?ixlib=rb-4.0.3"},
			Specifications: map[string]any{
				"type":         "Cotton gauze",
				"shape":        "Panel",
				"washable":     true,
				"oilTreatment": "Pre-oiled",
			},
			Compatibility: domain.Compatibility{
				Makes:  []string{"Ford", "Chevrolet", "Toyota"},
				Models: []string{"F-150", "Silverado", "Camry"},
				Years:  []string{"2014-2023"},
			},
			Rating:      decPtr("4.6"),
			ReviewCount: 89,
			IsActive:    true,
			IsFeatured:  true,
		},
		{
			Name:             "Sport Performance Tire",
			Description:      "Michelin sport performance tire with advanced compound for superior grip and handling in all weather conditions.",
			ShortDescription: "High-performance tire for sport driving",
			Price:            dec("179.99"),
			OriginalPrice:    decPtr("199.99"),
			SKU:              "MCH-003",
			Stock:            30,
			BrandID:          uintPtr(4),
			CategoryID:       uintPtr(5),
			VehicleType:      domain.VehicleTypeCar,
			Images:           []string{"https://images.unsplash.com/photo-1558008258-3256797b43f3?ixlib=rb-4.0.3"},
			Specifications: map[string]any{
				"size":         "225/45R17",
				"speedRating":  "W",
				"loadIndex":    "94",
				"treadPattern": "Asymmetric",
				"warranty":     "50,000 miles",
			},
			Compatibility: domain.Compatibility{
				Makes:  []string{"BMW", "Audi", "Mercedes"},
				Models: []string{"3 Series", "A4", "C-Class"},
				Years:  []string{"2016-2023"},
			},
			Rating:      decPtr("4.9"),
			ReviewCount: 234,
			IsActive:    true,
			IsFeatured:  true,
		},
		{
			Name:             "Touchscreen Car Stereo",
			Description:      "Pioneer touchscreen car stereo with Apple CarPlay and Android Auto compatibility. Features high-resolution display and premium audio.",
			ShortDescription: "Touchscreen stereo with smartphone integration",
			Price:            dec("299.99"),
			SKU:              "PNR-004",
			Stock:            15,
			BrandID:          uintPtr(5),
			CategoryID:       uintPtr(4),
			VehicleType:      domain.VehicleTypeCar,
			Images:           []string{"https://images.unsplash.com/photo-1556909114-4526cd0b5d5c?ixlib=rb-4.0.3"},
			Specifications: map[string]any{
				"screenSize":   "7 inch",
				"resolution":   "1280x720",
				"connectivity": []string{"Apple CarPlay", "Android Auto", "Bluetooth"},
				"powerOutput":  "50W x 4",
				"inputs":       []string{"USB", "AUX", "RCA"},
			},
			Compatibility: domain.Compatibility{
				Makes:  []string{"Universal"},
				Models: []string{"Double DIN compatible vehicles"},
				Years:  []string{"2010-2023"},
			},
			Rating:      decPtr("4.4"),
			ReviewCount: 67,
			IsActive:    true,
			IsFeatured:  true,
		},
		{
			Name:             "Premium Oil Filter",
			Description:      "Mann Filter premium oil filter with advanced filtration technology for maximum engine protection.",
			ShortDescription: "Premium oil filter for engine protection",
			Price:            dec("12.99"),
			SKU:              "MAN-005",
			Stock:            100,
			BrandID:          uintPtr(6),
			CategoryID:       uintPtr(1),
			VehicleType:      domain.VehicleTypeCar,
			Images:           []string{"https://images.unsplash.com/photo-1619642751034-765dfdf7c58e?ixlib=rb-4.0.3"},
			Specifications: map[string]any{
				"type":       "Spin-on",
				"material":   "Synthetic media",
				"efficiency": "99.5%",
				"capacity":   "1.2 quarts",
				"gasket":     "Nitrile rubber",
			},
			Compatibility: domain.Compatibility{
				Makes:  []string{"Honda", "Toyota", "Nissan"},
				Models: []string{"Civic", "Corolla", "Sentra"},
				Years:  []string{"2015-2023"},
			},
			Rating:      decPtr("4.7"),
			ReviewCount: 156,
			IsActive:    true,
		},
		{
			Name:             "Motorcycle Performance Exhaust",
			Description:      "High-performance motorcycle exhaust system designed to increase power and enhance sound.",
			ShortDescription: "Performance exhaust for motorcycles",
			Price:            dec("399.99"),
			OriginalPrice:    decPtr("449.99"),
			SKU:              "EXH-006",
			Stock:            8,
			BrandID:          uintPtr(1),
			CategoryID:       uintPtr(7),
			VehicleType:      domain.VehicleTypeMotorcycle,
			Images:           []string{"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?ixlib=rb-4.0.3"},
			Specifications: map[string]any{
				"material":      "Stainless steel",
				"finish":        "Carbon fiber",
				"weight":        "8.5 lbs",
				"powerIncrease": "12 HP",
				"dBLevel":       "92 dB",
			},
			Compatibility: domain.Compatibility{
				Makes:  []string{"Yamaha", "Honda", "Kawasaki"},
				Models: []string{"YZF-R6", "CBR600RR", "Ninja 636"},
				Years:  []string{"2017-2023"},
			},
			Rating:      decPtr("4.6"),
			ReviewCount: 43,
			IsActive:    true,
			IsFeatured:  true,
		},
	}
	for _, p := range products {
		p.Slug = validate.Slugify(p.Name)
	}
	return products
}
