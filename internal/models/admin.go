package models

import (
	"time"
)

// Admin 管理员表（注册后为待审批状态，审批通过后才能登录）
type Admin struct {
	ID                 uint       `gorm:"primarykey" json:"id"`
	Name               string     `gorm:"type:varchar(120);not null" json:"name"`
	Email              string     `gorm:"uniqueIndex;not null" json:"email"`
	Phone              string     `gorm:"type:varchar(32)" json:"phone"`
	PasswordHash       string     `gorm:"not null" json:"-"`
	Status             string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	IsSuper            bool       `gorm:"not null;default:false;index" json:"is_super"`
	ReviewedBy         *uint      `gorm:"index" json:"reviewed_by,omitempty"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
	TokenVersion       uint64     `gorm:"not null;default:0" json:"-"`
	TokenInvalidBefore *time.Time `gorm:"index" json:"-"`
	LastLoginAt        *time.Time `json:"last_login_at"`
	CreatedAt          time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// TableName 指定表名
func (Admin) TableName() string {
	return "admins"
}
