package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 商品分类（沙发套装、沙发床等），slug 用于前台链接
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(120);not null" json:"name"`
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"`
	Image     string         `gorm:"type:varchar(500)" json:"image"`
	SortOrder int            `gorm:"default:0;index" json:"sort_order"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
