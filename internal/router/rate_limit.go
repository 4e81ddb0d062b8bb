package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/i18n"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// 读取 JSON 字段时最多缓冲的请求体字节数
const rateLimitPeekBytes = 64 << 10

// RateLimitKeyFunc 生成限流 key
type RateLimitKeyFunc func(*gin.Context) string

// RateLimitRule 固定窗口限流；超限后封禁 BlockSeconds 秒（为 0 时等待窗口结束）
type RateLimitRule struct {
	Prefix        string
	WindowSeconds int
	MaxRequests   int
	BlockSeconds  int
	MessageKey    string
}

func (r RateLimitRule) active() bool {
	return r.WindowSeconds > 0 && r.MaxRequests > 0
}

// KEYS[1] 计数 key，KEYS[2] 封禁 key；返回 {计数, 剩余秒数, 是否封禁}
var rateLimitScript = redis.NewScript(`
local blocked = redis.call("TTL", KEYS[2])
if blocked > 0 then
	return {0, blocked, 1}
end
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("TTL", KEYS[1])
if current > tonumber(ARGV[2]) and tonumber(ARGV[3]) > 0 then
	redis.call("SET", KEYS[2], 1, "EX", ARGV[3])
	return {current, tonumber(ARGV[3]), 1}
end
return {current, ttl, 0}
`)

type rateLimitDecision struct {
	allowed     bool
	retryAfter  int
	windowCount int64
}

// decideRateLimit 解释脚本返回值
func decideRateLimit(values []int64, rule RateLimitRule) (rateLimitDecision, error) {
	if len(values) < 3 {
		return rateLimitDecision{}, fmt.Errorf("rate limit script returned %d values", len(values))
	}
	count, ttl, blocked := values[0], values[1], values[2]
	if blocked == 0 && count <= int64(rule.MaxRequests) {
		return rateLimitDecision{allowed: true, windowCount: count}, nil
	}
	wait := int(ttl)
	if wait < 1 {
		wait = rule.WindowSeconds
	}
	return rateLimitDecision{retryAfter: wait, windowCount: count}, nil
}

// RateLimitMiddleware Redis 频率限制；未配置 Redis 时放行，Redis 故障时拒绝
func RateLimitMiddleware(client *redis.Client, rule RateLimitRule, keyFunc RateLimitKeyFunc) gin.HandlerFunc {
	msgKey := strings.TrimSpace(rule.MessageKey)
	if msgKey == "" {
		msgKey = "error.rate_limited"
	}
	return func(c *gin.Context) {
		if client == nil || !rule.active() {
			c.Next()
			return
		}
		key := rateLimitKey(c, rule.Prefix, keyFunc)
		values, err := rateLimitScript.Run(c.Request.Context(), client,
			[]string{key, key + ":block"},
			rule.WindowSeconds, rule.MaxRequests, rule.BlockSeconds,
		).Int64Slice()
		if err != nil {
			logger.Warnw("rate_limit_script_failed", "key", key, "error", err)
			abortRateLimitUnavailable(c)
			return
		}
		decision, err := decideRateLimit(values, rule)
		if err != nil {
			logger.Warnw("rate_limit_result_invalid", "key", key, "error", err)
			abortRateLimitUnavailable(c)
			return
		}
		if !decision.allowed {
			logger.Infow("rate_limited", "key", key, "count", decision.windowCount, "retry_after", decision.retryAfter)
			c.Header("Retry-After", strconv.Itoa(decision.retryAfter))
			response.Error(c, response.CodeTooManyRequests, i18n.Sprintf(i18n.ResolveLocale(c), msgKey, decision.retryAfter))
			c.Abort()
			return
		}
		c.Next()
	}
}

func rateLimitKey(c *gin.Context, prefix string, keyFunc RateLimitKeyFunc) string {
	key := ""
	if keyFunc != nil {
		key = strings.TrimSpace(keyFunc(c))
	}
	if key == "" {
		key = c.ClientIP()
	}
	if prefix != "" {
		key = prefix + ":" + key
	}
	return key
}

func abortRateLimitUnavailable(c *gin.Context) {
	response.Error(c, response.CodeInternal, i18n.T(i18n.ResolveLocale(c), "error.rate_limit_unavailable"))
	c.Abort()
}

// KeyByIP 使用 IP 作为限流 key
func KeyByIP(c *gin.Context) string {
	return c.ClientIP()
}

// KeyByIPAndJSONField 使用 JSON 字段 + IP 作为限流 key（登录按邮箱）
func KeyByIPAndJSONField(field string) RateLimitKeyFunc {
	return func(c *gin.Context) string {
		value := strings.ToLower(peekJSONField(c, field))
		if value == "" {
			return c.ClientIP()
		}
		return value + "|" + c.ClientIP()
	}
}

// KeyByUser 登录顾客按 user_id 限流，否则按 IP
func KeyByUser(c *gin.Context) string {
	if raw, ok := c.Get("user_id"); ok {
		if id, ok := raw.(uint); ok && id > 0 {
			return fmt.Sprintf("user:%d", id)
		}
	}
	return c.ClientIP()
}

// peekJSONField 读取请求体中的字符串字段，随后把请求体原样还给后续处理器
func peekJSONField(c *gin.Context, field string) string {
	if c.Request == nil || c.Request.Body == nil {
		return ""
	}
	original := c.Request.Body
	head, err := io.ReadAll(io.LimitReader(original, rateLimitPeekBytes))
	c.Request.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), original), original}
	if err != nil || len(head) == 0 {
		return ""
	}
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(head, &payload); err != nil {
		return ""
	}
	var text string
	if err := json.Unmarshal(payload[field], &text); err != nil {
		return ""
	}
	return strings.TrimSpace(text)
}
