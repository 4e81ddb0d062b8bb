package repository

import (
	"testing"

	"github.com/wahhajahmed/KarachiSofas/internal/models"
)

func TestDeliveryChargeRepositoryExactKey(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewDeliveryChargeRepository(db)

	charge := &models.DeliveryCharge{
		AreaKey: "Clifton - Block 5",
		Area:    "Clifton",
		Block:   "Block 5",
		Charges: models.NewMoneyFromInt(300),
	}
	if err := repo.Create(charge); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.FindByKey("Clifton - Block 5")
	if err != nil || got == nil {
		t.Fatalf("want entry got %v, %v", got, err)
	}
	if got.Charges.String() != "300.00" {
		t.Fatalf("want 300.00 got %s", got.Charges.String())
	}

	missing, err := repo.FindByKey("Clifton")
	if err != nil || missing != nil {
		t.Fatalf("want nil,nil for partial key got %v,%v", missing, err)
	}

	dup := &models.DeliveryCharge{AreaKey: "Clifton - Block 5", Area: "Clifton", Block: "Block 5"}
	if err := repo.Create(dup); !IsUniqueViolation(err) {
		t.Fatalf("want unique violation got %v", err)
	}

	deleted, err := repo.Delete(charge.ID)
	if err != nil || !deleted {
		t.Fatalf("delete failed: %v %v", deleted, err)
	}
	deleted, err = repo.Delete(charge.ID)
	if err != nil || deleted {
		t.Fatalf("second delete should report nothing removed: %v %v", deleted, err)
	}
}

func TestPendingIntentRepositoryUpsertOverwrites(t *testing.T) {
	db := openRepositoryTestDB(t)
	repo := NewPendingIntentRepository(db)

	if err := repo.Upsert(&models.PendingCartIntent{GuestToken: "guest-1", ProductID: 10}); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}
	if err := repo.Upsert(&models.PendingCartIntent{GuestToken: "guest-1", ProductID: 20}); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	var count int64
	db.Model(&models.PendingCartIntent{}).Count(&count)
	if count != 1 {
		t.Fatalf("want single slot got %d", count)
	}
	intent, err := repo.GetByToken("guest-1")
	if err != nil || intent == nil {
		t.Fatalf("get failed: %v", err)
	}
	if intent.ProductID != 20 {
		t.Fatalf("want product 20 got %d", intent.ProductID)
	}

	removed, err := repo.DeleteByToken("guest-1")
	if err != nil || !removed {
		t.Fatalf("delete failed: %v %v", removed, err)
	}
	intent, err = repo.GetByToken("guest-1")
	if err != nil || intent != nil {
		t.Fatalf("want empty slot got %v %v", intent, err)
	}
}
