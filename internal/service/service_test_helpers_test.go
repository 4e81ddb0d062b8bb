package service

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/queue"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.CartItem{},
		&models.PendingCartIntent{},
		&models.DeliveryCharge{},
		&models.Order{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	if err := db.Create(&models.Category{ID: 1, Name: "Sofas", Slug: "sofas"}).Error; err != nil {
		t.Fatalf("seed category failed: %v", err)
	}
	return db
}

func seedTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{Name: "Test User", Email: email, PasswordHash: "x", Status: "active"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func seedTestProduct(t *testing.T, db *gorm.DB, name string, price int64) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID: 1,
		Name:       name,
		Price:      models.NewMoneyFromInt(price),
		Images:     models.StringArray{"/uploads/product/" + strings.ToLower(name) + ".jpg"},
		IsActive:   true,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

type cartFixture struct {
	db          *gorm.DB
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	projection  *MemoryCartProjection
	cart        *CartService
}

func newCartFixture(t *testing.T) *cartFixture {
	t.Helper()
	db := openServiceTestDB(t)
	cartRepo := repository.NewCartRepository(db)
	productRepo := repository.NewProductRepository(db)
	projection := NewMemoryCartProjection()
	return &cartFixture{
		db:          db,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		projection:  projection,
		cart:        NewCartService(cartRepo, productRepo, projection),
	}
}

// recordingQueue 记录入队调用
type recordingQueue struct {
	mu           sync.Mutex
	placed       []queue.OrderPlacedEmailPayload
	statuses     []queue.OrderStatusEmailPayload
	adminRequest []queue.AdminRequestPayload
	err          error
}

func (q *recordingQueue) EnqueueOrderPlacedEmail(payload queue.OrderPlacedEmailPayload, _ ...asynq.Option) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.placed = append(q.placed, payload)
	return q.err
}

func (q *recordingQueue) EnqueueOrderStatusEmail(payload queue.OrderStatusEmailPayload, _ ...asynq.Option) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.statuses = append(q.statuses, payload)
	return q.err
}

func (q *recordingQueue) EnqueueAdminRequestReceived(payload queue.AdminRequestPayload, _ ...asynq.Option) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.adminRequest = append(q.adminRequest, payload)
	return q.err
}
