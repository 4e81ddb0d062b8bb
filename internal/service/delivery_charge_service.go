package service

import (
	"fmt"
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/areas"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/shopspring/decimal"
)

// DeliveryResolution 运费解析结果；Found=false 时金额为 0，需提示"未解析"
type DeliveryResolution struct {
	Key    string       `json:"key"`
	Found  bool         `json:"found"`
	Amount models.Money `json:"amount"`
}

// DeliveryChargeInput 后台运费提交参数
type DeliveryChargeInput struct {
	Area    string
	Block   string
	Charges models.Money
}

// DeliveryChargeService 运费服务
type DeliveryChargeService struct {
	repo repository.DeliveryChargeRepository
}

// NewDeliveryChargeService 创建运费服务
func NewDeliveryChargeService(repo repository.DeliveryChargeRepository) *DeliveryChargeService {
	return &DeliveryChargeService{repo: repo}
}

// DeliveryKey 组合运费键 "区域 - 街区"
func DeliveryKey(area, block string) string {
	return strings.TrimSpace(area) + constants.DeliveryKeySeparator + strings.TrimSpace(block)
}

// Resolve 精确匹配 "区域 - 街区"，不回退到仅区域的记录
func (s *DeliveryChargeService) Resolve(area, block string) (DeliveryResolution, error) {
	key := DeliveryKey(area, block)
	resolution := DeliveryResolution{Key: key, Amount: models.NewMoneyFromInt(0)}
	if strings.TrimSpace(area) == "" || strings.TrimSpace(block) == "" {
		return resolution, nil
	}
	charge, err := s.repo.FindByKey(key)
	if err != nil {
		return resolution, fmt.Errorf("find delivery charge: %w", err)
	}
	if charge == nil {
		return resolution, nil
	}
	resolution.Found = true
	resolution.Amount = charge.Charges
	return resolution, nil
}

// Create 新增运费；键重复返回 ErrDeliveryChargeExists
func (s *DeliveryChargeService) Create(input DeliveryChargeInput) (*models.DeliveryCharge, error) {
	charge, err := buildDeliveryCharge(input)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.FindByKey(charge.AreaKey)
	if err != nil {
		return nil, fmt.Errorf("find delivery charge: %w", err)
	}
	if existing != nil {
		return nil, ErrDeliveryChargeExists
	}
	if err := s.repo.Create(charge); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDeliveryChargeExists
		}
		return nil, fmt.Errorf("create delivery charge: %w", err)
	}
	return charge, nil
}

// Update 修改运费；修改区域/街区时同样校验唯一性
func (s *DeliveryChargeService) Update(id uint, input DeliveryChargeInput) (*models.DeliveryCharge, error) {
	next, err := buildDeliveryCharge(input)
	if err != nil {
		return nil, err
	}
	charge, err := s.repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("load delivery charge: %w", err)
	}
	if charge == nil {
		return nil, ErrDeliveryChargeNotFound
	}
	if next.AreaKey != charge.AreaKey {
		other, err := s.repo.FindByKey(next.AreaKey)
		if err != nil {
			return nil, fmt.Errorf("find delivery charge: %w", err)
		}
		if other != nil && other.ID != charge.ID {
			return nil, ErrDeliveryChargeExists
		}
	}
	charge.AreaKey = next.AreaKey
	charge.Area = next.Area
	charge.Block = next.Block
	charge.Charges = next.Charges
	if err := s.repo.Update(charge); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrDeliveryChargeExists
		}
		return nil, fmt.Errorf("update delivery charge: %w", err)
	}
	return charge, nil
}

// Delete 删除运费
func (s *DeliveryChargeService) Delete(id uint) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return fmt.Errorf("delete delivery charge: %w", err)
	}
	if !deleted {
		return ErrDeliveryChargeNotFound
	}
	return nil
}

// Get 获取运费详情
func (s *DeliveryChargeService) Get(id uint) (*models.DeliveryCharge, error) {
	charge, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if charge == nil {
		return nil, ErrDeliveryChargeNotFound
	}
	return charge, nil
}

// List 运费列表
func (s *DeliveryChargeService) List(filter repository.DeliveryChargeListFilter) ([]models.DeliveryCharge, int64, error) {
	return s.repo.List(filter)
}

func buildDeliveryCharge(input DeliveryChargeInput) (*models.DeliveryCharge, error) {
	area := strings.TrimSpace(input.Area)
	block := strings.TrimSpace(input.Block)
	if area == "" || block == "" {
		return nil, ErrDeliveryChargeInvalid
	}
	if !areas.HasBlock(area, block) {
		return nil, ErrDeliveryChargeInvalid
	}
	if input.Charges.Decimal.LessThan(decimal.Zero) {
		return nil, ErrDeliveryChargeInvalid
	}
	return &models.DeliveryCharge{
		AreaKey: DeliveryKey(area, block),
		Area:    area,
		Block:   block,
		Charges: models.NewMoneyFromDecimal(input.Charges.Decimal),
	}, nil
}
