package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	OnlyActive   bool
	WithCategory bool
}

// CategoryListFilter 查询分类列表的过滤条件
type CategoryListFilter struct {
	Page     int
	PageSize int
	Search   string
}

// OrderListFilter 查询订单列表的过滤条件
type OrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	Area        string
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// DeliveryChargeListFilter 查询运费列表的过滤条件
type DeliveryChargeListFilter struct {
	Page     int
	PageSize int
	Area     string
	Search   string
}

// AdminListFilter 查询管理员列表的过滤条件
type AdminListFilter struct {
	Page     int
	PageSize int
	Status   string
}
