package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/cache"
	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"
)

// CartProjection 购物车会话视图存储，只保存已落库的状态
type CartProjection interface {
	Load(ctx context.Context, userID uint) (CartState, bool, error)
	Store(ctx context.Context, userID uint, state CartState) error
	Drop(ctx context.Context, userID uint) error
}

// NewCartProjection 根据配置选择投影后端
func NewCartProjection(cfg config.CartConfig) CartProjection {
	backend := strings.ToLower(strings.TrimSpace(cfg.Projection))
	if backend == constants.CartProjectionRedis && cache.Enabled() {
		ttl := time.Duration(cfg.ProjectionTTLMins) * time.Minute
		if ttl <= 0 {
			ttl = 30 * time.Minute
		}
		return NewRedisCartProjection(ttl)
	}
	return NewMemoryCartProjection()
}

// MemoryCartProjection 进程内投影
type MemoryCartProjection struct {
	mu     sync.RWMutex
	states map[uint]CartState
}

// NewMemoryCartProjection 创建进程内投影
func NewMemoryCartProjection() *MemoryCartProjection {
	return &MemoryCartProjection{states: make(map[uint]CartState)}
}

// Load 读取投影
func (p *MemoryCartProjection) Load(_ context.Context, userID uint) (CartState, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	state, ok := p.states[userID]
	if !ok {
		return CartState{}, false, nil
	}
	return state.clone(), true, nil
}

// Store 写入投影
func (p *MemoryCartProjection) Store(_ context.Context, userID uint, state CartState) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states[userID] = state.clone()
	return nil
}

// Drop 删除投影
func (p *MemoryCartProjection) Drop(_ context.Context, userID uint) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.states, userID)
	return nil
}

// RedisCartProjection Redis 投影，多实例部署时共享
type RedisCartProjection struct {
	ttl time.Duration
}

// NewRedisCartProjection 创建 Redis 投影
func NewRedisCartProjection(ttl time.Duration) *RedisCartProjection {
	return &RedisCartProjection{ttl: ttl}
}

// Load 读取投影
func (p *RedisCartProjection) Load(ctx context.Context, userID uint) (CartState, bool, error) {
	var state CartState
	ok, err := cache.GetCartProjection(ctx, userID, &state)
	if err != nil || !ok {
		return CartState{}, false, err
	}
	if state.Lines == nil {
		state.Lines = []CartLine{}
	}
	return state, true, nil
}

// Store 写入投影
func (p *RedisCartProjection) Store(ctx context.Context, userID uint, state CartState) error {
	return cache.SetCartProjection(ctx, userID, state, p.ttl)
}

// Drop 删除投影
func (p *RedisCartProjection) Drop(ctx context.Context, userID uint) error {
	return cache.DelCartProjection(ctx, userID)
}
