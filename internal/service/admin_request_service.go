package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/cache"
	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/queue"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"
)

const defaultMaxAdmins = 2

// AdminRoleGranter 审批通过后分配后台角色
type AdminRoleGranter interface {
	GrantAdminRole(adminID uint, role string) error
	RevokeAdminRoles(adminID uint) error
}

// AdminSignupInput 管理员注册申请参数
type AdminSignupInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// AdminRequestService 管理员申请与审批（状态字段流转）
type AdminRequestService struct {
	cfg         *config.Config
	adminRepo   repository.AdminRepository
	authService *AuthService
	granter     AdminRoleGranter
	queueClient NotificationQueue
	staffRole   string
}

// NewAdminRequestService 创建管理员申请服务
func NewAdminRequestService(cfg *config.Config, adminRepo repository.AdminRepository, authService *AuthService, granter AdminRoleGranter, queueClient NotificationQueue, staffRole string) *AdminRequestService {
	return &AdminRequestService{
		cfg:         cfg,
		adminRepo:   adminRepo,
		authService: authService,
		granter:     granter,
		queueClient: queueClient,
		staffRole:   staffRole,
	}
}

// MaxAdmins 允许的已审批管理员上限
func (s *AdminRequestService) MaxAdmins() int {
	if s.cfg == nil || s.cfg.Admin.MaxAdmins <= 0 {
		return defaultMaxAdmins
	}
	return s.cfg.Admin.MaxAdmins
}

// Signup 提交管理员申请；已被拒绝的邮箱可重新申请
func (s *AdminRequestService) Signup(input AdminSignupInput) (*models.Admin, error) {
	name, err := normalizePersonName(input.Name)
	if err != nil {
		return nil, err
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	phone, err := normalizePhone(input.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.authService.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	approved, err := s.adminRepo.CountByStatus(constants.AdminStatusApproved)
	if err != nil {
		return nil, err
	}
	if approved >= int64(s.MaxAdmins()) {
		return nil, ErrAdminLimitReached
	}

	existing, err := s.adminRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		switch existing.Status {
		case constants.AdminStatusPending:
			return nil, ErrAdminRequestPending
		case constants.AdminStatusApproved:
			return nil, ErrEmailExists
		}
	}

	hash, err := s.authService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	admin := existing
	if admin == nil {
		admin = &models.Admin{Email: email, CreatedAt: now}
	}
	admin.Name = name
	admin.Phone = phone
	admin.PasswordHash = hash
	admin.Status = constants.AdminStatusPending
	admin.ReviewedBy = nil
	admin.ReviewedAt = nil
	admin.UpdatedAt = now

	if existing == nil {
		err = s.adminRepo.Create(admin)
	} else {
		err = s.adminRepo.Update(admin)
	}
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAdminRequestPending
		}
		return nil, fmt.Errorf("save admin request: %w", err)
	}

	if s.queueClient != nil {
		if err := s.queueClient.EnqueueAdminRequestReceived(queue.AdminRequestPayload{AdminID: admin.ID}); err != nil {
			logger.Warnw("admin_request_enqueue_failed", "admin_id", admin.ID, "error", err)
		}
	}
	return admin, nil
}

// List 申请列表
func (s *AdminRequestService) List(filter repository.AdminListFilter) ([]models.Admin, int64, error) {
	return s.adminRepo.List(filter)
}

// Approve 审批通过并分配 staff 角色
func (s *AdminRequestService) Approve(reviewerID, adminID uint) (*models.Admin, error) {
	admin, err := s.loadPending(adminID)
	if err != nil {
		return nil, err
	}
	approved, err := s.adminRepo.CountByStatus(constants.AdminStatusApproved)
	if err != nil {
		return nil, err
	}
	if approved >= int64(s.MaxAdmins()) {
		return nil, ErrAdminLimitReached
	}

	s.markReviewed(admin, reviewerID, constants.AdminStatusApproved)
	if err := s.adminRepo.Update(admin); err != nil {
		return nil, fmt.Errorf("approve admin: %w", err)
	}
	if s.granter != nil {
		if err := s.granter.GrantAdminRole(admin.ID, s.staffRole); err != nil {
			logger.Errorw("admin_role_grant_failed", "admin_id", admin.ID, "role", s.staffRole, "error", err)
			return nil, err
		}
	}
	_ = cache.SetAdminAuthState(context.Background(), cache.BuildAdminAuthState(admin))
	return admin, nil
}

// Reject 拒绝申请
func (s *AdminRequestService) Reject(reviewerID, adminID uint) (*models.Admin, error) {
	admin, err := s.loadPending(adminID)
	if err != nil {
		return nil, err
	}
	s.markReviewed(admin, reviewerID, constants.AdminStatusRejected)
	if err := s.adminRepo.Update(admin); err != nil {
		return nil, fmt.Errorf("reject admin: %w", err)
	}
	if s.granter != nil {
		if err := s.granter.RevokeAdminRoles(admin.ID); err != nil {
			logger.Warnw("admin_role_revoke_failed", "admin_id", admin.ID, "error", err)
		}
	}
	_ = cache.DelAdminAuthState(context.Background(), admin.ID)
	return admin, nil
}

func (s *AdminRequestService) loadPending(adminID uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrAdminRequestNotFound
	}
	if admin.Status != constants.AdminStatusPending {
		return nil, ErrAdminRequestReviewed
	}
	return admin, nil
}

func (s *AdminRequestService) markReviewed(admin *models.Admin, reviewerID uint, status string) {
	now := time.Now()
	admin.Status = status
	admin.ReviewedAt = &now
	if reviewerID > 0 {
		reviewer := reviewerID
		admin.ReviewedBy = &reviewer
	}
	admin.UpdatedAt = now
}
