package service

import (
	"context"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/cache"
	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/golang-jwt/jwt/v5"
)

const defaultAdminTokenHours = 24

// AuthService 后台管理员认证
type AuthService struct {
	cfg       *config.Config
	adminRepo repository.AdminRepository
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config, adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{cfg: cfg, adminRepo: adminRepo}
}

// HashPassword bcrypt 加密
func (s *AuthService) HashPassword(password string) (string, error) {
	return hashPassword(password)
}

// ValidatePassword 按安全配置校验密码强度
func (s *AuthService) ValidatePassword(password string) error {
	if s == nil || s.cfg == nil {
		return nil
	}
	return validatePassword(s.cfg.Security.PasswordPolicy, password)
}

// JWTClaims 管理员 JWT 声明
type JWTClaims struct {
	AdminID      uint   `json:"admin_id"`
	Email        string `json:"email"`
	IsSuper      bool   `json:"is_super"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// GenerateJWT 为已审批管理员签发 Token
func (s *AuthService) GenerateJWT(admin *models.Admin) (string, time.Time, error) {
	claims := JWTClaims{
		AdminID:          admin.ID,
		Email:            admin.Email,
		IsSuper:          admin.IsSuper,
		TokenVersion:     admin.TokenVersion,
		RegisteredClaims: newRegisteredClaims(time.Now(), hoursOr(s.cfg.JWT.ExpireHours, defaultAdminTokenHours)),
	}
	token, err := signHS256(claims, s.cfg.JWT.SecretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, claims.ExpiresAt.Time, nil
}

// ParseJWT 校验签名并解析管理员 Token
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	return parseHS256(tokenString, s.cfg.JWT.SecretKey, &JWTClaims{})
}

// Login 管理员登录；密码正确但未审批时返回对应状态错误
func (s *AuthService) Login(email, password string) (*models.Admin, string, time.Time, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	admin, err := s.adminRepo.GetByEmail(normalized)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if admin == nil || !passwordMatches(admin.PasswordHash, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := adminStatusError(admin.Status); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	now := time.Now()
	admin.LastLoginAt = &now
	if err := s.adminRepo.Update(admin); err != nil {
		return nil, "", time.Time{}, err
	}
	_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))
	return admin, token, expiresAt, nil
}

func adminStatusError(status string) error {
	switch status {
	case constants.AdminStatusApproved:
		return nil
	case constants.AdminStatusRejected:
		return ErrAdminRejected
	default:
		return ErrAdminPendingApproval
	}
}

// GetAdmin 获取管理员，不存在时返回 ErrNotFound
func (s *AuthService) GetAdmin(adminID uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	return admin, nil
}

// ChangePassword 修改密码并吊销已签发的 Token
func (s *AuthService) ChangePassword(adminID uint, oldPassword, newPassword string) error {
	admin, err := s.GetAdmin(adminID)
	if err != nil {
		return err
	}
	if !passwordMatches(admin.PasswordHash, oldPassword) {
		return ErrInvalidPassword
	}
	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}

	now := time.Now()
	admin.PasswordHash = hash
	admin.TokenVersion++
	admin.TokenInvalidBefore = &now
	if err := s.adminRepo.Update(admin); err != nil {
		return err
	}
	_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))
	return nil
}
