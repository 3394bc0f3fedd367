package main

import (
	"github.com/straatfanaat/shop/internal/config"
	"github.com/straatfanaat/shop/internal/logger"
	"github.com/straatfanaat/shop/internal/models"
)

func main() {
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

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categories := []models.Category{
		{
			NameJSON: models.JSON(map[string]interface{}{
				"NL": "Hoodies",
				"EN": "Hoodies",
				"PL": "Bluzy",
			}),
			Slug:      "hoodies",
			SortOrder: 1,
			IsActive:  true,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"NL": "T-shirts",
				"EN": "Tees",
				"PL": "Koszulki",
			}),
			Slug:      "tees",
			SortOrder: 2,
			IsActive:  true,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"NL": "Broeken",
				"EN": "Pants",
				"PL": "Spodnie",
			}),
			Slug:      "pants",
			SortOrder: 3,
			IsActive:  true,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"NL": "Accessoires",
				"EN": "Accessories",
				"PL": "Akcesoria",
			}),
			Slug:      "accessories",
			SortOrder: 4,
			IsActive:  true,
		},
	}

	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Where("slug IN ?", []string{"hoodies", "tees", "pants", "accessories"}).Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}
	hoodiesID := categoryIDs["hoodies"]
	teesID := categoryIDs["tees"]
	pantsID := categoryIDs["pants"]
	accessoriesID := categoryIDs["accessories"]

	compareAt := func(amount float64) *models.Money {
		m := models.NewMoneyFromFloat(amount)
		return &m
	}

	products := []models.Product{
		{
			NameJSON: models.JSON(map[string]interface{}{
				"NL": "Straat Oversized Hoodie Zwart",
				"EN": "Straat Oversized Hoodie Black",
				"PL": "Bluza Oversize Straat Czarna",
			}),
			Slug: "straat-oversized-hoodie-black",
			SKU:  "SF-HD-001",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"NL": "Zware 450gsm fleece, dropped shoulders, geborduurd logo.",
				"EN": "Heavy 450gsm fleece, dropped shoulders, embroidered logo.",
				"PL": "Ciezki polar 450gsm, opuszczone ramiona, haftowane logo.",
			}),
			Price:         models.NewMoneyFromFloat(89.95),
			CategoryID:    &hoodiesID,
			ImageURL:      "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=800",
			Images:        models.StringArray([]string{"https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=800"}),
			Sizes:         models.StringArray([]string{"S", "M", "L", "XL", "XXL"}),
			Colors:        models.StringArray([]string{"black"}),
			StockQuantity: 120,
			IsActive:      true,
			IsFeatured:    true,
			IsNew:         true,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"NL": "Beton Boxy Tee Wit",
				"EN": "Beton Boxy Tee White",
				"PL": "Koszulka Boxy Beton Biala",
			}),
			Slug: "beton-boxy-tee-white",
			SKU:  "SF-TS-001",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"NL": "Boxy fit, dik katoen, print op de rug.",
				"EN": "Boxy fit, thick cotton, back print.",
				"PL": "Kroj boxy, gruba bawelna, nadruk na plecach.",
			}),
			Price:         models.NewMoneyFromFloat(39.95),
			CategoryID:    &teesID,
			ImageURL:      "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=800",
			Sizes:         models.StringArray([]string{"S", "M", "L", "XL"}),
			Colors:        models.StringArray([]string{"white", "black"}),
			StockQuantity: 200,
			IsActive:      true,
			IsFeatured:    true,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"NL": "Asfalt Cargo Broek",
				"EN": "Asfalt Cargo Pants",
				"PL": "Spodnie Cargo Asfalt",
			}),
			Slug: "asfalt-cargo-pants",
			SKU:  "SF-PT-001",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"NL": "Ripstop cargo met acht zakken en verstelbare enkels.",
				"EN": "Ripstop cargo with eight pockets and adjustable ankles.",
				"PL": "Cargo z ripstopu, osiem kieszeni, regulowane nogawki.",
			}),
			Price:          models.NewMoneyFromFloat(79.95),
			CompareAtPrice: compareAt(99.95),
			CategoryID:     &pantsID,
			ImageURL:       "https://images.unsplash.com/photo-1517438476312-10d79c077509?w=800",
			Sizes:          models.StringArray([]string{"28", "30", "32", "34", "36"}),
			Colors:         models.StringArray([]string{"olive", "black"}),
			StockQuantity:  80,
			IsActive:       true,
			IsOnSale:       true,
		},
		{
			NameJSON: models.JSON(map[string]interface{}{
				"NL": "Tunnel Beanie",
				"EN": "Tunnel Beanie",
				"PL": "Czapka Tunnel",
			}),
			Slug: "tunnel-beanie",
			SKU:  "SF-AC-001",
			DescriptionJSON: models.JSON(map[string]interface{}{
				"NL": "Dubbellaags gebreid, geweven label.",
				"EN": "Double-layer knit, woven label.",
				"PL": "Podwojna dzianina, tkana metka.",
			}),
			Price:         models.NewMoneyFromFloat(24.95),
			CategoryID:    &accessoriesID,
			ImageURL:      "https://images.unsplash.com/photo-1576871337622-98d48d1cf531?w=800",
			Colors:        models.StringArray([]string{"black", "grey", "orange"}),
			StockQuantity: 150,
			IsActive:      true,
			IsNew:         true,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&product).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", product.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", product.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", product.Slug)
		}
	}

	settings := []models.Setting{
		{Key: "site_name", Value: models.JSONValue(`"STRAATFANAAT"`), Type: "string", Category: "general", Description: "Storefront display name", IsPublic: true},
		{Key: "default_language", Value: models.JSONValue(`"NL"`), Type: "string", Category: "general", Description: "Default storefront language", IsPublic: true},
		{Key: "supported_languages", Value: models.JSONValue(`["NL","EN","PL"]`), Type: "array", Category: "general", Description: "Enabled storefront languages", IsPublic: true},
		{Key: "free_shipping_threshold", Value: models.JSONValue(`75`), Type: "number", Category: "checkout", Description: "Order total for free shipping", IsPublic: true},
		{Key: "shipping_cost", Value: models.JSONValue(`5.95`), Type: "number", Category: "checkout", Description: "Flat shipping rate", IsPublic: true},
		{Key: "maintenance_mode", Value: models.JSONValue(`false`), Type: "boolean", Category: "general", Description: "Hide the storefront", IsPublic: true},
		{Key: "low_stock_alerts", Value: models.JSONValue(`true`), Type: "boolean", Category: "inventory", Description: "Highlight low stock in the back office", IsPublic: false},
	}

	for _, setting := range settings {
		var existing models.Setting
		if err := models.DB.Where("key = ?", setting.Key).First(&existing).Error; err != nil {
			if err := models.DB.Create(&setting).Error; err != nil {
				stdLog.Printf("Failed to create setting %s: %v", setting.Key, err)
			} else {
				stdLog.Printf("Created setting: %s", setting.Key)
			}
		} else {
			stdLog.Printf("Setting already exists: %s", setting.Key)
		}
	}

	discount := models.DiscountCode{
		Code:           "WELKOM10",
		Description:    "10% off for new subscribers",
		DiscountType:   "percentage",
		DiscountValue:  models.NewMoneyFromFloat(10),
		MinOrderAmount: models.NewMoneyFromFloat(0),
		IsActive:       true,
	}
	var existingCode models.DiscountCode
	if err := models.DB.Where("code = ?", discount.Code).First(&existingCode).Error; err != nil {
		if err := models.DB.Create(&discount).Error; err != nil {
			stdLog.Printf("Failed to create discount code %s: %v", discount.Code, err)
		} else {
			stdLog.Printf("Created discount code: %s", discount.Code)
		}
	} else {
		stdLog.Printf("Discount code already exists: %s", discount.Code)
	}

	stdLog.Printf("Seed finished")
}
