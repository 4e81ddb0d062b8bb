package admin

import (
	"errors"
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/authz"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	handlershared "github.com/wahhajahmed/KarachiSofas/internal/http/handlers/shared"
	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/i18n"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"github.com/gin-gonic/gin"
)

// respondAdminRequestError 名额已满时带上上限人数
func (h *Handler) respondAdminRequestError(c *gin.Context, err error, fallbackKey string) {
	if errors.Is(err, service.ErrAdminLimitReached) {
		msg := i18n.Sprintf(i18n.ResolveLocale(c), "error.admin_limit_reached", h.AdminRequestService.MaxAdmins())
		respondErrorWithMsg(c, response.CodeForbidden, msg, nil)
		return
	}
	respondWithMappedError(c, err, adminRequestErrorRules, response.CodeInternal, fallbackKey)
}

// ListAdminRequests 管理员申请列表，默认只看待审批
func (h *Handler) ListAdminRequests(c *gin.Context) {
	page, pageSize := handlershared.ReadPagination(c)
	status := strings.ToLower(strings.TrimSpace(c.DefaultQuery("status", "pending")))
	if status == "all" {
		status = ""
	}
	admins, total, err := h.AdminRequestService.List(repository.AdminListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   status,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.admin_fetch_failed", err)
		return
	}
	items := make([]AdminProfile, 0, len(admins))
	for i := range admins {
		items = append(items, toAdminProfile(&admins[i]))
	}
	response.SuccessWithPage(c, gin.H{
		"items":      items,
		"max_admins": h.AdminRequestService.MaxAdmins(),
	}, handlershared.BuildPagination(page, pageSize, total))
}

// ApproveAdminRequest 审批通过
func (h *Handler) ApproveAdminRequest(c *gin.Context) {
	reviewerID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	admin, err := h.AdminRequestService.Approve(reviewerID, id)
	if err != nil {
		h.respondAdminRequestError(c, err, "error.admin_request_failed")
		return
	}
	requestLog(c).Infow("admin_request_approved", "reviewer_id", reviewerID, "admin_id", admin.ID)
	msg := i18n.Sprintf(i18n.ResolveLocale(c), "success.admin_approved", admin.Name)
	response.SuccessWithMsg(c, msg, toAdminProfile(admin))
}

// RejectAdminRequest 拒绝申请
func (h *Handler) RejectAdminRequest(c *gin.Context) {
	reviewerID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	admin, err := h.AdminRequestService.Reject(reviewerID, id)
	if err != nil {
		h.respondAdminRequestError(c, err, "error.admin_request_failed")
		return
	}
	requestLog(c).Infow("admin_request_rejected", "reviewer_id", reviewerID, "admin_id", admin.ID)
	msg := i18n.Sprintf(i18n.ResolveLocale(c), "success.admin_rejected", admin.Name)
	response.SuccessWithMsg(c, msg, toAdminProfile(admin))
}

type adminRolePayload struct {
	Role string `json:"role" binding:"required"`
}

// SetAdminRole 调整已审批管理员的角色（staff / viewer）
func (h *Handler) SetAdminRole(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id")
	if !ok {
		return
	}
	var req adminRolePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	role := strings.ToLower(strings.TrimSpace(req.Role))
	if !authz.IsKnownRole(role) {
		respondError(c, response.CodeBadRequest, "error.role_invalid", nil)
		return
	}
	admin, err := h.AuthService.GetAdmin(id)
	if err != nil {
		respondWithMappedError(c, err, adminAuthErrorRules, response.CodeInternal, "error.admin_fetch_failed")
		return
	}
	if admin.IsSuper || admin.Status != constants.AdminStatusApproved {
		respondError(c, response.CodeForbidden, "error.admin_forbidden", nil)
		return
	}
	if err := h.AuthzService.GrantAdminRole(admin.ID, role); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	operatorID, _ := getAdminID(c)
	logger.Infow("admin_role_changed", "admin_id", admin.ID, "role", role, "operator_id", operatorID)
	roles, err := h.AuthzService.AdminRoles(admin.ID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.admin_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{
		"admin": toAdminProfile(admin),
		"roles": roles,
	})
}
