package repository

import (
	"errors"
	"testing"

	"github.com/wahhajahmed/KarachiSofas/internal/models"

	"gorm.io/gorm"
)

func TestCartRepositoryUniquePerUserAndProduct(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	product := seedProduct(t, db, "Chesterfield Sofa", 1000)

	if err := repo.Create(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
	err := repo.Create(&models.CartItem{UserID: 1, ProductID: product.ID, Quantity: 1})
	if !IsUniqueViolation(err) {
		t.Fatalf("second insert should violate unique index, got %v", err)
	}
	if err := repo.Create(&models.CartItem{UserID: 2, ProductID: product.ID, Quantity: 1}); err != nil {
		t.Fatalf("other user should be able to add same product: %v", err)
	}
}

func TestCartRepositoryUpdateQuantityMissingRow(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)

	err := repo.UpdateQuantity(1, 99, 3)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want ErrRecordNotFound got %v", err)
	}
}

func TestCartRepositoryListPreloadsProductAndClear(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewCartRepository(db)
	sofa := seedProduct(t, db, "L-Shape Sofa", 1000)
	table := seedProduct(t, db, "Coffee Table", 500)

	for _, p := range []*models.Product{sofa, table} {
		if err := repo.Create(&models.CartItem{UserID: 7, ProductID: p.ID, Quantity: 1}); err != nil {
			t.Fatalf("create cart item failed: %v", err)
		}
	}
	if err := repo.UpdateQuantity(7, sofa.ID, 2); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}

	items, err := repo.ListByUser(7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("want 2 items got %d", len(items))
	}
	if items[0].Product == nil || items[0].Product.Name != "L-Shape Sofa" || items[0].Quantity != 2 {
		t.Fatalf("unexpected first item: %+v", items[0])
	}

	if err := repo.ClearByUser(7); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	items, err = repo.ListByUser(7)
	if err != nil {
		t.Fatalf("list after clear failed: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("want empty cart got %d", len(items))
	}
	got, err := repo.Get(7, sofa.ID)
	if err != nil || got != nil {
		t.Fatalf("want nil,nil got %v,%v", got, err)
	}
}
