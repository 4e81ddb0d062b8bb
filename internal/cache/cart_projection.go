package cache

import (
	"context"
	"fmt"
	"time"
)

func cartProjectionKey(userID uint) string {
	return fmt.Sprintf("cart:user:%d", userID)
}

// GetCartProjection 读取用户购物车投影
func GetCartProjection(ctx context.Context, userID uint, dest interface{}) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return GetJSON(ctx, cartProjectionKey(userID), dest)
}

// SetCartProjection 写入用户购物车投影
func SetCartProjection(ctx context.Context, userID uint, value interface{}, ttl time.Duration) error {
	if userID == 0 {
		return nil
	}
	return SetJSON(ctx, cartProjectionKey(userID), value, ttl)
}

// DelCartProjection 删除用户购物车投影
func DelCartProjection(ctx context.Context, userID uint) error {
	if userID == 0 {
		return nil
	}
	return Del(ctx, cartProjectionKey(userID))
}
