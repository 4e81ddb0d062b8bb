package public

import (
	"strings"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/i18n"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest 注册请求
type UserRegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Password   string `json:"password" binding:"required"`
	GuestToken string `json:"guest_token"`
}

// UserLoginRequest 登录请求
type UserLoginRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
	GuestToken string `json:"guest_token"`
}

// UserChangePasswordRequest 修改密码请求
type UserChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UserProfile 顾客资料
type UserProfile struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	LastLoginAt *time.Time `json:"last_login_at"`
}

func toUserProfile(user *models.User) UserProfile {
	return UserProfile{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Phone:       user.Phone,
		LastLoginAt: user.LastLoginAt,
	}
}

// UserRegister 顾客注册，成功后提交游客暂存的商品
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, token, expiresAt, err := h.UserAuthService.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		respondWithMappedError(c, err, userAuthErrorRules, response.CodeInternal, "error.register_failed")
		return
	}
	h.respondSession(c, user, token, expiresAt, req.GuestToken)
}

// UserLogin 顾客登录，成功后提交游客暂存的商品
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, token, expiresAt, err := h.UserAuthService.LoginWithRememberMe(req.Email, req.Password, req.RememberMe)
	if err != nil {
		respondWithMappedError(c, err, userAuthErrorRules, response.CodeInternal, "error.login_failed")
		return
	}
	h.respondSession(c, user, token, expiresAt, req.GuestToken)
}

func (h *Handler) respondSession(c *gin.Context, user *models.User, token string, expiresAt time.Time, bodyGuestToken string) {
	guestToken := strings.TrimSpace(bodyGuestToken)
	if guestToken == "" {
		guestToken = getGuestToken(c)
	}

	payload := gin.H{
		"user":       toUserProfile(user),
		"token":      token,
		"expires_at": expiresAt,
	}
	item, cart, err := h.PendingItemRelay.CompleteLogin(c.Request.Context(), guestToken, user.ID)
	if err != nil {
		// 登录已成功，购物车稍后可重新加载
		requestLog(c).Warnw("user_login_cart_hydrate_failed", "user_id", user.ID, "error", err)
	} else {
		payload["cart"] = toCartResponse(cart)
	}
	if item != nil {
		payload["added_item"] = item
	}
	response.Success(c, payload)
}

// GetCurrentUser 获取当前顾客资料
func (h *Handler) GetCurrentUser(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	user, err := h.UserAuthService.GetUserByID(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.user_fetch_failed", err)
		return
	}
	if user == nil {
		respondError(c, response.CodeNotFound, "error.not_found", nil)
		return
	}
	response.Success(c, toUserProfile(user))
}

// ChangeUserPassword 修改顾客密码
func (h *Handler) ChangeUserPassword(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req UserChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.UserAuthService.ChangePassword(uid, req.OldPassword, req.NewPassword); err != nil {
		respondWithMappedError(c, err, userAuthErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "success"), gin.H{"changed": true})
}
