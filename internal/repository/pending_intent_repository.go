package repository

import (
	"errors"

	"github.com/wahhajahmed/KarachiSofas/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PendingIntentRepository 游客待加购数据访问接口
type PendingIntentRepository interface {
	Upsert(intent *models.PendingCartIntent) error
	GetByToken(token string) (*models.PendingCartIntent, error)
	DeleteByToken(token string) (bool, error)
}

// GormPendingIntentRepository GORM 实现
type GormPendingIntentRepository struct {
	db *gorm.DB
}

// NewPendingIntentRepository 创建待加购仓库
func NewPendingIntentRepository(db *gorm.DB) *GormPendingIntentRepository {
	return &GormPendingIntentRepository{db: db}
}

// Upsert 按游客令牌覆盖写入（后写覆盖先写）
func (r *GormPendingIntentRepository) Upsert(intent *models.PendingCartIntent) error {
	if intent == nil {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "guest_token"}},
		DoUpdates: clause.AssignmentColumns([]string{"product_id", "snapshot", "updated_at"}),
	}).Create(intent).Error
}

// GetByToken 读取游客令牌对应的待加购
func (r *GormPendingIntentRepository) GetByToken(token string) (*models.PendingCartIntent, error) {
	var intent models.PendingCartIntent
	if err := r.db.Where("guest_token = ?", token).First(&intent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &intent, nil
}

// DeleteByToken 删除待加购，返回是否存在
func (r *GormPendingIntentRepository) DeleteByToken(token string) (bool, error) {
	result := r.db.Where("guest_token = ?", token).Delete(&models.PendingCartIntent{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
