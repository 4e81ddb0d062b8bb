package repository

import "gorm.io/gorm"

const maxPageSize = 100

// Page 分页参数，PageSize 为 0 时不分页
type Page struct {
	Page     int
	PageSize int
}

func (p Page) bounds() (limit, offset int) {
	if p.PageSize <= 0 {
		return 0, 0
	}
	limit = p.PageSize
	if limit > maxPageSize {
		limit = maxPageSize
	}
	page := p.Page
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

// findPage 先统计总数，再按排序取当前页；关联预加载只作用于取数
func findPage[T any](query *gorm.DB, page Page, order string, preloads ...string) ([]T, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	items := make([]T, 0)
	if total == 0 {
		return items, 0, nil
	}
	if limit, offset := page.bounds(); limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}
	if order != "" {
		query = query.Order(order)
	}
	for _, rel := range preloads {
		query = query.Preload(rel)
	}
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
