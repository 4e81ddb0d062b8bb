package models

import (
	"strings"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultAdminEmail    = "admin@karachisofas.pk"
	defaultAdminPassword = "admin12345"
)

// InitDefaultAdmin 初始化默认超级管理员（已存在管理员时只确保其超级权限）
func InitDefaultAdmin(email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = defaultAdminEmail
	}

	var count int64
	if err := DB.Model(&Admin{}).Where("status = ?", constants.AdminStatusApproved).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		if err := DB.Model(&Admin{}).Where("email = ?", email).Update("is_super", true).Error; err != nil {
			logger.Warnw("ensure_default_admin_super_failed", "error", err)
		}
		return nil
	}

	if password == "" {
		password = defaultAdminPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now()
	admin := Admin{
		Name:         "Store Owner",
		Email:        email,
		PasswordHash: string(hash),
		Status:       constants.AdminStatusApproved,
		IsSuper:      true,
		ReviewedAt:   &now,
	}
	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == defaultAdminPassword {
		logger.Warnw("default_admin_created_with_default_password", "email", email)
		logger.Warnw("default_admin_password_change_required", "email", email)
	} else {
		logger.Warnw("default_admin_created", "email", email, "password_hidden", true)
	}
	return nil
}
