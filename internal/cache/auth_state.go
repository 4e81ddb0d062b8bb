package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
)

const authStateCacheTTL = 10 * time.Minute

// UserAuthState 顾客鉴权快照，token_invalid_before 为 Unix 秒，0 表示未设置
type UserAuthState struct {
	UserID             uint   `json:"user_id"`
	Status             string `json:"status"`
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
	UpdatedAt          int64  `json:"updated_at"`
}

// Active 顾客账号是否可用
func (s *UserAuthState) Active() bool {
	return s != nil && strings.EqualFold(strings.TrimSpace(s.Status), constants.UserStatusActive)
}

// Admits 令牌版本一致且签发时间不早于失效时间
func (s *UserAuthState) Admits(tokenVersion uint64, issuedAtUnix int64) bool {
	return s != nil && admitsToken(s.TokenVersion, s.TokenInvalidBefore, tokenVersion, issuedAtUnix)
}

// AdminAuthState 管理员鉴权快照，只有 approved 状态可访问后台
type AdminAuthState struct {
	AdminID            uint   `json:"admin_id"`
	Email              string `json:"email"`
	Status             string `json:"status"`
	TokenVersion       uint64 `json:"token_version"`
	TokenInvalidBefore int64  `json:"token_invalid_before"`
	IsSuper            bool   `json:"is_super"`
	UpdatedAt          int64  `json:"updated_at"`
}

// Approved 管理员申请是否已通过
func (s *AdminAuthState) Approved() bool {
	return s != nil && s.Status == constants.AdminStatusApproved
}

// Admits 令牌版本一致且签发时间不早于失效时间
func (s *AdminAuthState) Admits(tokenVersion uint64, issuedAtUnix int64) bool {
	return s != nil && admitsToken(s.TokenVersion, s.TokenInvalidBefore, tokenVersion, issuedAtUnix)
}

func admitsToken(stateVersion uint64, invalidBefore int64, tokenVersion uint64, issuedAtUnix int64) bool {
	if stateVersion != tokenVersion {
		return false
	}
	if invalidBefore <= 0 {
		return true
	}
	return issuedAtUnix >= invalidBefore
}

func userAuthStateKey(userID uint) string {
	return fmt.Sprintf("auth:user:%d", userID)
}

func adminAuthStateKey(adminID uint) string {
	return fmt.Sprintf("auth:admin:%d", adminID)
}

func unixOrZero(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.Unix()
}

// BuildUserAuthState 从顾客模型构建鉴权快照
func BuildUserAuthState(user *models.User) *UserAuthState {
	if user == nil {
		return nil
	}
	return &UserAuthState{
		UserID:             user.ID,
		Status:             user.Status,
		TokenVersion:       user.TokenVersion,
		TokenInvalidBefore: unixOrZero(user.TokenInvalidBefore),
		UpdatedAt:          time.Now().Unix(),
	}
}

// BuildAdminAuthState 从管理员模型构建鉴权快照
func BuildAdminAuthState(admin *models.Admin) *AdminAuthState {
	if admin == nil {
		return nil
	}
	return &AdminAuthState{
		AdminID:            admin.ID,
		Email:              admin.Email,
		Status:             admin.Status,
		TokenVersion:       admin.TokenVersion,
		TokenInvalidBefore: unixOrZero(admin.TokenInvalidBefore),
		IsSuper:            admin.IsSuper,
		UpdatedAt:          time.Now().Unix(),
	}
}

func getAuthState[T any](ctx context.Context, key string) (*T, bool, error) {
	var state T
	hit, err := GetJSON(ctx, key, &state)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &state, true, nil
}

// GetUserAuthState 获取顾客鉴权快照
func GetUserAuthState(ctx context.Context, userID uint) (*UserAuthState, bool, error) {
	if userID == 0 {
		return nil, false, nil
	}
	return getAuthState[UserAuthState](ctx, userAuthStateKey(userID))
}

// SetUserAuthState 写入顾客鉴权快照
func SetUserAuthState(ctx context.Context, state *UserAuthState) error {
	if state == nil || state.UserID == 0 {
		return nil
	}
	return SetJSON(ctx, userAuthStateKey(state.UserID), state, authStateCacheTTL)
}

// DelUserAuthState 删除顾客鉴权快照
func DelUserAuthState(ctx context.Context, userID uint) error {
	if userID == 0 {
		return nil
	}
	return Del(ctx, userAuthStateKey(userID))
}

// GetAdminAuthState 获取管理员鉴权快照
func GetAdminAuthState(ctx context.Context, adminID uint) (*AdminAuthState, bool, error) {
	if adminID == 0 {
		return nil, false, nil
	}
	return getAuthState[AdminAuthState](ctx, adminAuthStateKey(adminID))
}

// SetAdminAuthState 写入管理员鉴权快照
func SetAdminAuthState(ctx context.Context, state *AdminAuthState) error {
	if state == nil || state.AdminID == 0 {
		return nil
	}
	return SetJSON(ctx, adminAuthStateKey(state.AdminID), state, authStateCacheTTL)
}

// DelAdminAuthState 删除管理员鉴权快照（审批状态变化后调用）
func DelAdminAuthState(ctx context.Context, adminID uint) error {
	if adminID == 0 {
		return nil
	}
	return Del(ctx, adminAuthStateKey(adminID))
}
