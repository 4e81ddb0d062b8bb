package admin

import (
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/i18n"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"github.com/gin-gonic/gin"
)

// LoginRequest 管理员登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	Token     string       `json:"token"`
	Admin     AdminProfile `json:"admin"`
	ExpiresAt string       `json:"expires_at"`
}

// AdminProfile 管理员资料
type AdminProfile struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Status      string     `json:"status"`
	IsSuper     bool       `json:"is_super"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func toAdminProfile(admin *models.Admin) AdminProfile {
	return AdminProfile{
		ID:          admin.ID,
		Name:        admin.Name,
		Email:       admin.Email,
		Phone:       admin.Phone,
		Status:      admin.Status,
		IsSuper:     admin.IsSuper,
		LastLoginAt: admin.LastLoginAt,
	}
}

// AdminLogin 管理员登录，仅审批通过的账号可登录
func (h *Handler) AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	admin, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password)
	if err != nil {
		respondWithMappedError(c, err, adminAuthErrorRules, response.CodeInternal, "error.login_failed")
		return
	}
	response.Success(c, LoginResponse{
		Token:     token,
		Admin:     toAdminProfile(admin),
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

// AdminSignupRequest 管理员申请
type AdminSignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminSignup 提交管理员申请，等待超级管理员审批
func (h *Handler) AdminSignup(c *gin.Context) {
	var req AdminSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	admin, err := h.AdminRequestService.Signup(service.AdminSignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		h.respondAdminRequestError(c, err, "error.admin_request_failed")
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "success.admin_request_sent"), toAdminProfile(admin))
}

// GetAdminMe 当前管理员资料与角色
func (h *Handler) GetAdminMe(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	admin, err := h.AuthService.GetAdmin(adminID)
	if err != nil {
		respondWithMappedError(c, err, adminAuthErrorRules, response.CodeInternal, "error.admin_fetch_failed")
		return
	}
	roles, err := h.AuthzService.AdminRoles(adminID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.admin_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{
		"admin":    toAdminProfile(admin),
		"is_super": currentIsSuper(c),
		"roles":    roles,
	})
}

// UpdatePasswordRequest 修改密码请求
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UpdateAdminPassword 修改管理员密码
func (h *Handler) UpdateAdminPassword(c *gin.Context) {
	id, ok := getAdminID(c)
	if !ok {
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(id, req.OldPassword, req.NewPassword); err != nil {
		respondWithMappedError(c, err, adminAuthErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, nil)
}
