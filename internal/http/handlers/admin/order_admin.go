package admin

import (
	"strings"
	"time"

	handlershared "github.com/wahhajahmed/KarachiSofas/internal/http/handlers/shared"
	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/i18n"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetAdminOrders 后台订单列表
func (h *Handler) GetAdminOrders(c *gin.Context) {
	page, pageSize := handlershared.ReadPagination(c)
	createdFrom, err := parseDateQuery(c.Query("created_from"), false)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	createdTo, err := parseDateQuery(c.Query("created_to"), true)
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	orders, total, err := h.OrderService.ListForAdmin(repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		UserID:      handlershared.QueryUint(c, "user_id"),
		Status:      c.Query("status"),
		Area:        strings.TrimSpace(c.Query("area")),
		Search:      strings.TrimSpace(c.Query("search")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.order_fetch_failed")
		return
	}
	response.SuccessWithPage(c, orders, handlershared.BuildPagination(page, pageSize, total))
}

// GetAdminOrder 后台订单详情
func (h *Handler) GetAdminOrder(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(id)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.order_fetch_failed")
		return
	}
	response.Success(c, order)
}

// UpdateOrderStatusRequest 订单状态变更请求
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateAdminOrderStatus 将待处理订单标记为完成或拒绝
func (h *Handler) UpdateAdminOrderStatus(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	order, err := h.OrderService.Transition(id, req.Status)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.order_update_failed")
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "success.order_status_updated"), order)
}

// parseDateQuery 支持 YYYY-MM-DD 与 RFC3339；日期形式的截止时间取当天结束
func parseDateQuery(raw string, endOfDay bool) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return &parsed, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		parsed = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	return &parsed, nil
}
