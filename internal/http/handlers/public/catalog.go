package public

import (
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/areas"
	handlershared "github.com/wahhajahmed/KarachiSofas/internal/http/handlers/shared"
	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListAreas 获取配送区域及街区
func (h *Handler) ListAreas(c *gin.Context) {
	response.Success(c, areas.List())
}

// ListAreaBlocks 获取指定区域的街区列表
func (h *Handler) ListAreaBlocks(c *gin.Context) {
	name := strings.TrimSpace(c.Query("area"))
	if !areas.HasArea(name) {
		respondError(c, response.CodeBadRequest, "error.area_invalid", nil)
		return
	}
	response.Success(c, gin.H{
		"area":   name,
		"blocks": areas.BlocksFor(name),
	})
}

// ResolveDelivery 查询 "区域 - 街区" 的运费
func (h *Handler) ResolveDelivery(c *gin.Context) {
	resolution, err := h.DeliveryChargeService.Resolve(c.Query("area"), c.Query("block"))
	if err != nil {
		respondError(c, response.CodeInternal, "error.delivery_fetch_failed", err)
		return
	}
	response.Success(c, resolution)
}

// ListCategories 获取分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, _, err := h.CategoryService.List(repository.CategoryListFilter{})
	if err != nil {
		respondError(c, response.CodeInternal, "error.category_fetch_failed", err)
		return
	}
	response.Success(c, categories)
}

// ListProducts 获取上架商品列表
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := handlershared.ReadPagination(c)
	categoryID := handlershared.QueryUint(c, "category_id")
	if slug := strings.TrimSpace(c.Query("category")); slug != "" && categoryID == 0 {
		category, err := h.CategoryService.GetBySlug(slug)
		if err != nil {
			respondWithMappedError(c, err, categoryErrorRules, response.CodeInternal, "error.category_fetch_failed")
			return
		}
		categoryID = category.ID
	}

	products, total, err := h.ProductService.ListPublic(categoryID, c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, products, handlershared.BuildPagination(page, pageSize, total))
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	product, err := h.ProductService.GetPublic(id)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.product_fetch_failed")
		return
	}
	response.Success(c, product)
}
