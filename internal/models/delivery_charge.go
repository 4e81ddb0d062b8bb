package models

import (
	"time"
)

// DeliveryCharge 运费表，area_key = "区域 - 街区"
type DeliveryCharge struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	AreaKey   string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"area_key"`
	Area      string    `gorm:"type:varchar(120);not null;index" json:"area"`
	Block     string    `gorm:"type:varchar(120);not null" json:"block"`
	Charges   Money     `gorm:"type:decimal(20,2);not null;default:0" json:"charges"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName 指定表名
func (DeliveryCharge) TableName() string {
	return "delivery_charges"
}
