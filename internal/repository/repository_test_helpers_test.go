package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wahhajahmed/KarachiSofas/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func openRepositoryTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.PendingCartIntent{},
		&models.DeliveryCharge{},
		&models.Order{},
		&models.Admin{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.Create(&models.Category{ID: 1, Name: "Sofas", Slug: "sofas"}).Error; err != nil {
		t.Fatalf("seed category failed: %v", err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID: 1,
		Name:       name,
		Price:      models.NewMoneyFromInt(price),
		IsActive:   true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}
