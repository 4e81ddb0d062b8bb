package models

import (
	"time"
)

// Order 订单表，一次结账按购物车行生成多条订单
type Order struct {
	ID            uint      `gorm:"primarykey" json:"id"`                                     // 主键
	UserID        uint      `gorm:"index;not null" json:"user_id"`                            // 用户ID
	ProductID     uint      `gorm:"index;not null" json:"product_id"`                         // 商品ID
	Quantity      int       `gorm:"not null" json:"quantity"`                                 // 下单时数量
	UnitPrice     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"`  // 下单时单价
	TotalPrice    Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // 行合计（不含运费）
	PaymentMethod string    `gorm:"type:varchar(32);not null" json:"payment_method"`          // COD / Bank Transfer
	Status        string    `gorm:"type:varchar(20);index;not null" json:"status"`            // pending / completed / rejected
	CustomerName  string    `gorm:"type:varchar(120)" json:"customer_name"`                   // 收货人
	Email         string    `gorm:"type:varchar(255)" json:"email"`                           // 联系邮箱
	Phone         string    `gorm:"type:varchar(32)" json:"phone"`                            // 联系电话
	Address       string    `gorm:"type:text" json:"address"`                                 // 详细地址
	Area          string    `gorm:"type:varchar(120);index" json:"area"`                      // 区域
	Block         string    `gorm:"type:varchar(120)" json:"block"`                           // 街区
	Landmark      string    `gorm:"type:varchar(255)" json:"landmark"`                        // 地标
	CreatedAt     time.Time `gorm:"index" json:"created_at"`                                  // 创建时间
	UpdatedAt     time.Time `gorm:"index" json:"updated_at"`                                  // 更新时间

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
