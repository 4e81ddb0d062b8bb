package admin

import (
	"strings"

	handlershared "github.com/wahhajahmed/KarachiSofas/internal/http/handlers/shared"
	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/i18n"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"github.com/gin-gonic/gin"
)

// DeliveryChargeRequest 运费提交请求
type DeliveryChargeRequest struct {
	Area    string        `json:"area" binding:"required"`
	Block   string        `json:"block" binding:"required"`
	Charges *models.Money `json:"charges" binding:"required"`
}

func (r DeliveryChargeRequest) toInput() service.DeliveryChargeInput {
	return service.DeliveryChargeInput{
		Area:    r.Area,
		Block:   r.Block,
		Charges: *r.Charges,
	}
}

// GetDeliveryCharges 运费列表
func (h *Handler) GetDeliveryCharges(c *gin.Context) {
	page, pageSize := handlershared.ReadPagination(c)
	charges, total, err := h.DeliveryChargeService.List(repository.DeliveryChargeListFilter{
		Page:     page,
		PageSize: pageSize,
		Area:     strings.TrimSpace(c.Query("area")),
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.delivery_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, charges, handlershared.BuildPagination(page, pageSize, total))
}

// GetDeliveryCharge 运费详情
func (h *Handler) GetDeliveryCharge(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	charge, err := h.DeliveryChargeService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, deliveryChargeErrorRules, response.CodeInternal, "error.delivery_fetch_failed")
		return
	}
	response.Success(c, charge)
}

// CreateDeliveryCharge 新增运费
func (h *Handler) CreateDeliveryCharge(c *gin.Context) {
	var req DeliveryChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.delivery_charge_invalid", err)
		return
	}
	charge, err := h.DeliveryChargeService.Create(req.toInput())
	if err != nil {
		respondWithMappedError(c, err, deliveryChargeErrorRules, response.CodeInternal, "error.delivery_charge_failed")
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "success.delivery_created"), charge)
}

// UpdateDeliveryCharge 更新运费
func (h *Handler) UpdateDeliveryCharge(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req DeliveryChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.delivery_charge_invalid", err)
		return
	}
	charge, err := h.DeliveryChargeService.Update(id, req.toInput())
	if err != nil {
		respondWithMappedError(c, err, deliveryChargeErrorRules, response.CodeInternal, "error.delivery_charge_failed")
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "success.delivery_updated"), charge)
}

// DeleteDeliveryCharge 删除运费
func (h *Handler) DeleteDeliveryCharge(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.DeliveryChargeService.Delete(id); err != nil {
		respondWithMappedError(c, err, deliveryChargeErrorRules, response.CodeInternal, "error.delivery_charge_failed")
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "success.delivery_deleted"), nil)
}
