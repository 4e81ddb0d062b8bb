package admin

import (
	"strings"

	handlershared "github.com/wahhajahmed/KarachiSofas/internal/http/handlers/shared"
	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"github.com/gin-gonic/gin"
)

// ====================  商品管理  ====================

// ProductRequest 创建/更新商品请求
type ProductRequest struct {
	CategoryID  uint          `json:"category_id" binding:"required"`
	Name        string        `json:"name" binding:"required"`
	Description string        `json:"description"`
	Price       *models.Money `json:"price" binding:"required"`
	Images      []string      `json:"images"`
	IsActive    *bool         `json:"is_active"`
	SortOrder   int           `json:"sort_order"`
}

func (r ProductRequest) toInput() service.ProductInput {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}
	return service.ProductInput{
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Images:      r.Images,
		IsActive:    isActive,
		SortOrder:   r.SortOrder,
	}
}

// GetAdminProducts 后台商品列表（含下架）
func (h *Handler) GetAdminProducts(c *gin.Context) {
	page, pageSize := handlershared.ReadPagination(c)
	products, total, err := h.ProductService.ListAdmin(
		handlershared.QueryUint(c, "category_id"),
		strings.TrimSpace(c.Query("search")),
		page, pageSize,
	)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, products, handlershared.BuildPagination(page, pageSize, total))
}

// GetAdminProduct 后台商品详情
func (h *Handler) GetAdminProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetAdmin(id)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.product_fetch_failed")
		return
	}
	response.Success(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.product_invalid", err)
		return
	}
	product, err := h.ProductService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.product_save_failed")
		return
	}
	response.Success(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.product_invalid", err)
		return
	}
	product, err := h.ProductService.Update(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.product_save_failed")
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品（软删除）
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.ProductService.Delete(id); err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.product_delete_failed")
		return
	}
	response.Success(c, nil)
}

// ====================  分类管理  ====================

// CategoryRequest 创建/更新分类请求
type CategoryRequest struct {
	Name      string `json:"name" binding:"required"`
	Slug      string `json:"slug"`
	Image     string `json:"image"`
	SortOrder int    `json:"sort_order"`
}

func (r CategoryRequest) toInput() service.CategoryInput {
	return service.CategoryInput{
		Name:      r.Name,
		Slug:      r.Slug,
		Image:     r.Image,
		SortOrder: r.SortOrder,
	}
}

// GetAdminCategories 后台分类列表
func (h *Handler) GetAdminCategories(c *gin.Context) {
	page, pageSize := handlershared.ReadPagination(c)
	categories, total, err := h.CategoryService.List(repository.CategoryListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, categories, handlershared.BuildPagination(page, pageSize, total))
}

// GetAdminCategory 后台分类详情
func (h *Handler) GetAdminCategory(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	category, err := h.CategoryService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.category_fetch_failed")
		return
	}
	response.Success(c, category)
}

// CreateCategory 创建分类
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.category_invalid", err)
		return
	}
	category, err := h.CategoryService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.category_save_failed")
		return
	}
	response.Success(c, category)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.category_invalid", err)
		return
	}
	category, err := h.CategoryService.Update(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.category_save_failed")
		return
	}
	response.Success(c, category)
}

// DeleteCategory 删除分类，仍有商品时拒绝
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.CategoryService.Delete(id); err != nil {
		respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.category_delete_failed")
		return
	}
	response.Success(c, nil)
}
