package main

import (
	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	CategorySlug string
	Name         string
	Description  string
	Price        string
	Images       []string
	SortOrder    int
}

type seedDelivery struct {
	Area    string
	Block   string
	Charges string
}

var seedCategories = []models.Category{
	{Name: "Sofa Sets", Slug: "sofa-sets", Image: "/uploads/seed/sofa-sets.jpg", SortOrder: 40},
	{Name: "Sofa Cum Beds", Slug: "sofa-cum-beds", Image: "/uploads/seed/sofa-cum-beds.jpg", SortOrder: 30},
	{Name: "L-Shaped Sofas", Slug: "l-shaped-sofas", Image: "/uploads/seed/l-shaped.jpg", SortOrder: 20},
	{Name: "Poufs & Ottomans", Slug: "poufs-ottomans", Image: "/uploads/seed/poufs.jpg", SortOrder: 10},
}

var seedProducts = []seedProduct{
	{
		CategorySlug: "sofa-sets",
		Name:         "Royal Chesterfield 5 Seater",
		Description:  "Button tufted velvet, solid sheesham frame, 3+1+1 configuration.",
		Price:        "145000",
		Images:       []string{"/uploads/seed/chesterfield-1.jpg", "/uploads/seed/chesterfield-2.jpg"},
		SortOrder:    30,
	},
	{
		CategorySlug: "sofa-sets",
		Name:         "Minimal Linen 3 Seater",
		Description:  "Linen blend upholstery with high density foam cushions.",
		Price:        "68000",
		Images:       []string{"/uploads/seed/linen-3.jpg"},
		SortOrder:    20,
	},
	{
		CategorySlug: "sofa-cum-beds",
		Name:         "Fold Out Sofa Cum Bed",
		Description:  "Converts to a queen bed, storage box under the seat.",
		Price:        "54000",
		Images:       []string{"/uploads/seed/fold-out.jpg"},
		SortOrder:    10,
	},
	{
		CategorySlug: "l-shaped-sofas",
		Name:         "Corner L-Shape 7 Seater",
		Description:  "Reversible chaise, jute fabric, available in grey and beige.",
		Price:        "189000",
		Images:       []string{"/uploads/seed/corner-l-1.jpg", "/uploads/seed/corner-l-2.jpg", "/uploads/seed/corner-l-3.jpg"},
		SortOrder:    10,
	},
	{
		CategorySlug: "poufs-ottomans",
		Name:         "Round Velvet Pouf",
		Description:  "Hand stitched pouf with brass base.",
		Price:        "9500",
		Images:       []string{"/uploads/seed/pouf.jpg"},
		SortOrder:    10,
	},
}

var seedDeliveries = []seedDelivery{
	{Area: "Clifton", Block: "Block 2", Charges: "1500"},
	{Area: "Clifton", Block: "Block 5", Charges: "1500"},
	{Area: "Defence (DHA)", Block: "Phase 6", Charges: "2000"},
	{Area: "Defence (DHA)", Block: "Phase 8", Charges: "2500"},
	{Area: "Gulshan-e-Iqbal", Block: "Block 13-D", Charges: "1200"},
	{Area: "Gulistan-e-Jauhar", Block: "Block 7", Charges: "1300"},
	{Area: "Gulberg", Block: "Block 3", Charges: "1000"},
}

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

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 分类
	categoryIDs := map[string]uint{}
	for _, cat := range seedCategories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err == nil {
			stdLog.Printf("Category already exists: %s", cat.Slug)
			categoryIDs[cat.Slug] = existing.ID
			continue
		}
		item := cat
		if err := models.DB.Create(&item).Error; err != nil {
			stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			continue
		}
		stdLog.Printf("Created category: %s", cat.Slug)
		categoryIDs[cat.Slug] = item.ID
	}

	// 商品，按名称去重
	for _, p := range seedProducts {
		categoryID, ok := categoryIDs[p.CategorySlug]
		if !ok {
			stdLog.Printf("Skip product %s: category %s missing", p.Name, p.CategorySlug)
			continue
		}
		var count int64
		if err := models.DB.Model(&models.Product{}).Where("name = ?", p.Name).Count(&count).Error; err != nil {
			stdLog.Printf("Failed to check product %s: %v", p.Name, err)
			continue
		}
		if count > 0 {
			stdLog.Printf("Product already exists: %s", p.Name)
			continue
		}
		product := models.Product{
			CategoryID:  categoryID,
			Name:        p.Name,
			Description: p.Description,
			Price:       models.NewMoneyFromDecimal(decimal.RequireFromString(p.Price)),
			Images:      models.StringArray(p.Images),
			IsActive:    true,
			SortOrder:   p.SortOrder,
		}
		if err := models.DB.Create(&product).Error; err != nil {
			stdLog.Printf("Failed to create product %s: %v", p.Name, err)
			continue
		}
		stdLog.Printf("Created product: %s", p.Name)
	}

	// 运费
	for _, d := range seedDeliveries {
		key := service.DeliveryKey(d.Area, d.Block)
		var count int64
		if err := models.DB.Model(&models.DeliveryCharge{}).Where("area_key = ?", key).Count(&count).Error; err != nil {
			stdLog.Printf("Failed to check delivery charge %s: %v", key, err)
			continue
		}
		if count > 0 {
			stdLog.Printf("Delivery charge already exists: %s", key)
			continue
		}
		charge := models.DeliveryCharge{
			AreaKey: key,
			Area:    d.Area,
			Block:   d.Block,
			Charges: models.NewMoneyFromDecimal(decimal.RequireFromString(d.Charges)),
		}
		if err := models.DB.Create(&charge).Error; err != nil {
			stdLog.Printf("Failed to create delivery charge %s: %v", key, err)
			continue
		}
		stdLog.Printf("Created delivery charge: %s = %s", key, d.Charges)
	}

	stdLog.Printf("Seed completed")
}
