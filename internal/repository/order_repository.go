package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	CreateBatch(orders []models.Order) error
	GetByID(id uint) (*models.Order, error)
	UpdateStatus(id uint, status string, updatedAt time.Time) error
	ListAdmin(filter OrderListFilter) ([]models.Order, int64, error)
	ListByUser(filter OrderListFilter) ([]models.Order, int64, error)
	WithTx(tx *gorm.DB) OrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

// CreateBatch 在单个事务中批量写入订单，任一失败则全部回滚
func (r *GormOrderRepository) CreateBatch(orders []models.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		productIDs := make([]uint, 0, len(orders))
		seen := make(map[uint]struct{}, len(orders))
		for _, order := range orders {
			if _, ok := seen[order.ProductID]; ok {
				continue
			}
			seen[order.ProductID] = struct{}{}
			productIDs = append(productIDs, order.ProductID)
		}
		var count int64
		if err := tx.Model(&models.Product{}).Where("id IN ?", productIDs).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(productIDs)) {
			return ErrOrderProductMissing
		}
		if err := tx.Create(&orders).Error; err != nil {
			return fmt.Errorf("insert orders: %w", err)
		}
		return nil
	})
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Product").Preload("User").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus 直接写入目标状态
func (r *GormOrderRepository) UpdateStatus(id uint, status string, updatedAt time.Time) error {
	result := r.db.Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": updatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListAdmin 后台订单列表
func (r *GormOrderRepository) ListAdmin(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.applyFilter(r.db.Model(&models.Order{}), filter)
	return findPage[models.Order](query, Page{filter.Page, filter.PageSize}, "created_at DESC, id DESC", "Product", "User")
}

// ListByUser 用户订单历史
func (r *GormOrderRepository) ListByUser(filter OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return []models.Order{}, 0, nil
	}
	query := r.applyFilter(r.db.Model(&models.Order{}), filter)
	return findPage[models.Order](query, Page{filter.Page, filter.PageSize}, "created_at DESC, id DESC", "Product")
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, filter OrderListFilter) *gorm.DB {
	if filter.UserID != 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}
	if area := strings.TrimSpace(filter.Area); area != "" {
		query = query.Where("area = ?", area)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		condition, argCount := buildLikeCondition(r.db, "customer_name", "email", "phone")
		query = query.Where(condition, repeatLikeArgs("%"+search+"%", argCount)...)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}
	return query
}
