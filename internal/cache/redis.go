package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 3 * time.Second

// 进程内共享的 Redis 连接；client 为 nil 时所有读写都是空操作
var store struct {
	sync.RWMutex
	client *redis.Client
	prefix string
}

// InitRedis 按配置连接 Redis；连不上时保持关闭状态并返回错误
func InitRedis(cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		UseClient(nil, "")
		return nil
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		UseClient(nil, cfg.Prefix)
		return fmt.Errorf("redis %s unreachable: %w", client.Options().Addr, err)
	}
	UseClient(client, cfg.Prefix)
	return nil
}

// UseClient 注入 Redis 客户端，nil 表示关闭缓存
func UseClient(client *redis.Client, prefix string) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = constants.RedisPrefixDefault
	}
	store.Lock()
	store.client = client
	store.prefix = prefix
	store.Unlock()
}

// Enabled 是否连接了 Redis
func Enabled() bool {
	return Client() != nil
}

// Client 当前 Redis 客户端，未启用时为 nil
func Client() *redis.Client {
	store.RLock()
	defer store.RUnlock()
	return store.client
}

// Key 加上全局前缀，供限流等直接使用客户端的场景
func Key(suffix string) string {
	return buildKey(suffix)
}

// GetJSON 读取 JSON 缓存，返回是否命中
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	client := Client()
	if client == nil {
		return false, nil
	}
	raw, err := client.Get(ctx, buildKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, fmt.Errorf("decode cache %s: %w", key, err)
	}
	return true, nil
}

// SetJSON 写入 JSON 缓存
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	client := Client()
	if client == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return client.Set(ctx, buildKey(key), payload, ttl).Err()
}

// Del 删除缓存
func Del(ctx context.Context, key string) error {
	client := Client()
	if client == nil {
		return nil
	}
	return client.Del(ctx, buildKey(key)).Err()
}

func buildKey(key string) string {
	store.RLock()
	prefix := store.prefix
	store.RUnlock()
	if prefix == "" {
		prefix = constants.RedisPrefixDefault
	}
	key = strings.Trim(strings.TrimSpace(key), ":")
	if key == "" {
		return prefix
	}
	return prefix + ":" + key
}
