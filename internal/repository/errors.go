package repository

import "errors"

// ErrOrderProductMissing 批量下单时引用的商品已不存在
var ErrOrderProductMissing = errors.New("referenced product no longer exists")
