package models

import (
	"time"
)

// PendingCartIntent 游客待登录后加入购物车的单个商品（每个游客令牌只保留一条）
type PendingCartIntent struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	GuestToken string    `gorm:"type:varchar(64);uniqueIndex;not null" json:"guest_token"`
	ProductID  uint      `gorm:"not null" json:"product_id"`
	Snapshot   JSON      `gorm:"type:json" json:"snapshot"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `gorm:"index" json:"updated_at"`
}

// TableName 指定表名
func (PendingCartIntent) TableName() string {
	return "pending_cart_intents"
}
