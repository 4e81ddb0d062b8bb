package repository

import (
	"errors"
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/models"

	"gorm.io/gorm"
)

// DeliveryChargeRepository 运费数据访问接口
type DeliveryChargeRepository interface {
	FindByKey(key string) (*models.DeliveryCharge, error)
	GetByID(id uint) (*models.DeliveryCharge, error)
	Create(charge *models.DeliveryCharge) error
	Update(charge *models.DeliveryCharge) error
	Delete(id uint) (bool, error)
	List(filter DeliveryChargeListFilter) ([]models.DeliveryCharge, int64, error)
}

// GormDeliveryChargeRepository GORM 实现
type GormDeliveryChargeRepository struct {
	db *gorm.DB
}

// NewDeliveryChargeRepository 创建运费仓库
func NewDeliveryChargeRepository(db *gorm.DB) *GormDeliveryChargeRepository {
	return &GormDeliveryChargeRepository{db: db}
}

// FindByKey 按 "区域 - 街区" 精确匹配
func (r *GormDeliveryChargeRepository) FindByKey(key string) (*models.DeliveryCharge, error) {
	var charge models.DeliveryCharge
	if err := r.db.Where("area_key = ?", key).First(&charge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &charge, nil
}

// GetByID 根据 ID 获取运费
func (r *GormDeliveryChargeRepository) GetByID(id uint) (*models.DeliveryCharge, error) {
	var charge models.DeliveryCharge
	if err := r.db.First(&charge, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &charge, nil
}

// Create 创建运费，唯一键冲突时返回原始错误，由调用方通过 IsUniqueViolation 判断
func (r *GormDeliveryChargeRepository) Create(charge *models.DeliveryCharge) error {
	return r.db.Create(charge).Error
}

// Update 更新运费
func (r *GormDeliveryChargeRepository) Update(charge *models.DeliveryCharge) error {
	return r.db.Save(charge).Error
}

// Delete 删除运费，返回是否删除了记录
func (r *GormDeliveryChargeRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.DeliveryCharge{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// List 运费列表
func (r *GormDeliveryChargeRepository) List(filter DeliveryChargeListFilter) ([]models.DeliveryCharge, int64, error) {
	query := r.db.Model(&models.DeliveryCharge{})
	if area := strings.TrimSpace(filter.Area); area != "" {
		query = query.Where("area = ?", area)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		condition, argCount := buildLikeCondition(r.db, "area_key")
		query = query.Where(condition, repeatLikeArgs("%"+search+"%", argCount)...)
	}
	return findPage[models.DeliveryCharge](query, Page{filter.Page, filter.PageSize}, "area ASC, block ASC")
}
