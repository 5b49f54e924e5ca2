package main

import (
	"github.com/bellu-mart/internal/config"
	"github.com/bellu-mart/internal/logger"
	"github.com/bellu-mart/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 初始化默认配置
	if err := models.InitDefaultConfig(); err != nil {
		stdLog.Fatalf("Failed to init default config: %v", err)
	}

	// 添加演示商品
	products := sampleProducts()
	for _, p := range products {
		product := p
		var existing models.Product
		if err := models.DB.Where("name = ? AND brand = ?", product.Name, product.Brand).First(&existing).Error; err != nil {
			product.SyncInStock()
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Created product: %s", product.Name)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
	}

	stdLog.Printf("Seed completed: %d products", len(products))
}

func money(value int64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromInt(value))
}

func moneyPtr(value int64) *models.Money {
	m := money(value)
	return &m
}

func sampleProducts() []models.Product {
	return []models.Product{
		{
			Name:          "Vitamin D3 Tablets",
			Brand:         "HealthVit",
			Price:         money(299),
			OriginalPrice: moneyPtr(399),
			Category:      "wellness",
			Image:         "https://images.unsplash.com/photo-1559757148-5c350d0d3c56?auto=format&fit=crop&w=400&h=300",
			DeliveryTime:  8,
			Stock:         25,
			Discount:      20,
			Badges:        models.StringArray{"20% OFF"},
		},
		{
			Name:         "Immunity Tea Pack",
			Brand:        "TeaFit",
			Price:        money(199),
			Category:     "wellness",
			Image:        "https://images.unsplash.com/photo-1563822249548-9a72b6353cd1?auto=format&fit=crop&w=400&h=300",
			DeliveryTime: 9,
			Stock:        30,
			Badges:       models.StringArray{"NEW"},
		},
		{
			Name:          "Omega-3 Capsules",
			Brand:         "NutriMax",
			Price:         money(599),
			OriginalPrice: moneyPtr(799),
			Category:      "wellness",
			Image:         "https://images.unsplash.com/photo-1505944270255-72b8c68c6a70?auto=format&fit=crop&w=400&h=300",
			DeliveryTime:  7,
			Stock:         3,
			Discount:      25,
			Badges:        models.StringArray{"Low Stock"},
		},
		{
			Name:          "Whey Protein Powder",
			Brand:         "FitMax",
			Price:         money(1299),
			OriginalPrice: moneyPtr(1599),
			Category:      "wellness",
			Image:         "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?auto=format&fit=crop&w=400&h=300",
			DeliveryTime:  10,
			Stock:         15,
			Discount:      19,
			Badges:        models.StringArray{"BESTSELLER"},
		},
		{
			Name:          "Vitamin C Serum",
			Brand:         "GlowSkin",
			Price:         money(899),
			OriginalPrice: moneyPtr(1199),
			Category:      "skincare",
			Image:         "https://images.unsplash.com/photo-1620916566398-39f1143ab7be?auto=format&fit=crop&w=400&h=300",
			DeliveryTime:  6,
			Stock:         18,
			Discount:      25,
			Badges:        models.StringArray{"TRENDING"},
		},
		{
			Name:         "Hydrating Face Cream",
			Brand:        "AquaGlow",
			Price:        money(699),
			Category:     "skincare",
			Image:        "https://images.unsplash.com/photo-1596755389378-c31d21fd1273?auto=format&fit=crop&w=400&h=300",
			DeliveryTime: 8,
			Stock:        22,
			Badges:       models.StringArray{"HYDRATING"},
		},
		{
			Name:          "Gentle Face Cleanser",
			Brand:         "PureSkin",
			Price:         money(399),
			OriginalPrice: moneyPtr(499),
			Category:      "skincare",
			Image:         "https://images.unsplash.com/photo-1612817288484-6f916006741a?auto=format&fit=crop&w=400&h=300",
			DeliveryTime:  7,
			Stock:         35,
			Discount:      20,
			Badges:        models.StringArray{"GENTLE"},
		},
		{
			Name:         "Sunscreen SPF 50",
			Brand:        "SunShield",
			Price:        money(599),
			Category:     "skincare",
			Image:        "https://images.unsplash.com/photo-1556228720-195a672e8a03?auto=format&fit=crop&w=400&h=300",
			DeliveryTime: 9,
			Stock:        28,
			Badges:       models.StringArray{"SPF 50"},
		},
		{
			Name:          "Power Bank 10000mAh",
			Brand:         "TechCharge",
			Price:         money(1299),
			OriginalPrice: moneyPtr(1699),
			Category:      "electronics",
			Image:         "https://images.unsplash.com/photo-1609592704166-2d4c6c6c9b3b?auto=format&fit=crop&w=400&h=300",
			DeliveryTime:  12,
			Stock:         14,
			Discount:      24,
			Badges:        models.StringArray{"10000mAh"},
		},
		{
			Name:          "Bluetooth Earbuds Pro",
			Brand:         "SoundMax",
			Price:         money(2999),
			OriginalPrice: moneyPtr(4999),
			Category:      "electronics",
			Image:         "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?auto=format&fit=crop&w=400&h=300",
			DeliveryTime:  15,
			Stock:         7,
			Discount:      40,
			Badges:        models.StringArray{"WIRELESS"},
		},
		{
			Name:          "Type-C Fast Cable",
			Brand:         "CablePro",
			Price:         money(399),
			OriginalPrice: moneyPtr(599),
			Category:      "electronics",
			Image:         "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?auto=format&fit=crop&w=400&h=300",
			DeliveryTime:  8,
			Stock:         45,
			Discount:      33,
			Badges:        models.StringArray{"FAST CHARGE"},
		},
		{
			Name:          "Shockproof Phone Case",
			Brand:         "ArmorShield",
			Price:         money(699),
			OriginalPrice: moneyPtr(999),
			Category:      "electronics",
			Image:         "https://images.unsplash.com/photo-1556656793-08538906a9f8?auto=format&fit=crop&w=400&h=300",
			DeliveryTime:  6,
			Stock:         32,
			Discount:      30,
			Badges:        models.StringArray{"PROTECTIVE"},
		},
	}
}
