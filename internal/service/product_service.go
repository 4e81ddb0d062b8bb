package service

import (
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/shopspring/decimal"
)

const maxProductImages = 4

// ProductService 商品业务服务
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		repo:         repo,
		categoryRepo: categoryRepo,
	}
}

// ProductInput 创建/更新商品输入
type ProductInput struct {
	CategoryID  uint
	Name        string
	Description string
	Price       models.Money
	Images      []string
	IsActive    bool
	SortOrder   int
}

// ListPublic 前台商品列表（仅上架）
func (s *ProductService) ListPublic(categoryID uint, search string, page, pageSize int) ([]models.Product, int64, error) {
	return s.repo.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   categoryID,
		Search:       strings.TrimSpace(search),
		OnlyActive:   true,
		WithCategory: true,
	})
}

// GetPublic 前台商品详情
func (s *ProductService) GetPublic(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// ListAdmin 后台商品列表
func (s *ProductService) ListAdmin(categoryID uint, search string, page, pageSize int) ([]models.Product, int64, error) {
	return s.repo.List(repository.ProductListFilter{
		Page:         page,
		PageSize:     pageSize,
		CategoryID:   categoryID,
		Search:       strings.TrimSpace(search),
		WithCategory: true,
	})
}

// GetAdmin 后台商品详情
func (s *ProductService) GetAdmin(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}
	product := &models.Product{
		CategoryID:  input.CategoryID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       models.NewMoneyFromDecimal(input.Price.Decimal),
		Images:      normalizeImages(input.Images),
		IsActive:    true,
		SortOrder:   input.SortOrder,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	// is_active 带默认值，零值需要单独写入
	if !input.IsActive {
		product.IsActive = false
		if err := s.repo.Update(product); err != nil {
			return nil, err
		}
	}
	return product, nil
}

// Update 更新商品；已有订单保留下单时的价格
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.GetAdmin(id)
	if err != nil {
		return nil, err
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}
	product.CategoryID = input.CategoryID
	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Price = models.NewMoneyFromDecimal(input.Price.Decimal)
	product.Images = normalizeImages(input.Images)
	product.IsActive = input.IsActive
	product.SortOrder = input.SortOrder
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品（软删除）
func (s *ProductService) Delete(id uint) error {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProductNotFound
	}
	return nil
}

func (s *ProductService) validate(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrProductInvalid
	}
	if input.Price.Decimal.LessThan(decimal.Zero) {
		return ErrProductInvalid
	}
	if len(normalizeImages(input.Images)) > maxProductImages {
		return ErrProductInvalid
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}

func normalizeImages(images []string) models.StringArray {
	result := make(models.StringArray, 0, len(images))
	for _, image := range images {
		trimmed := strings.TrimSpace(image)
		if trimmed == "" {
			continue
		}
		result = append(result, trimmed)
	}
	return result
}
