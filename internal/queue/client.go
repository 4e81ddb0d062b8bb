package queue

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"

	"github.com/hibiken/asynq"
)

// DefaultQueue 默认队列名称
const DefaultQueue = constants.QueueDefault

const (
	defaultMaxRetry    = 5
	defaultTaskTimeout = 2 * time.Minute
	defaultConcurrency = 10
)

// Client 通知任务入队客户端；未启用时所有入队操作为空操作
type Client struct {
	inner *asynq.Client
	queue string
}

// NewClient 创建队列客户端
func NewClient(cfg *config.QueueConfig) (*Client, error) {
	if cfg == nil || !cfg.Enabled {
		return &Client{queue: DefaultQueue}, nil
	}
	return &Client{inner: asynq.NewClient(RedisOpt(cfg)), queue: DefaultQueue}, nil
}

// Enabled 是否连接了队列
func (c *Client) Enabled() bool {
	return c != nil && c.inner != nil
}

// Close 关闭客户端
func (c *Client) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.inner.Close()
}

// EnqueueOrderPlacedEmail 一次结账对应一个任务，以首个订单号去重
func (c *Client) EnqueueOrderPlacedEmail(payload OrderPlacedEmailPayload, opts ...asynq.Option) error {
	if len(payload.OrderIDs) > 0 {
		opts = append([]asynq.Option{asynq.TaskID(fmt.Sprintf("order-placed:%d", payload.OrderIDs[0]))}, opts...)
	}
	return c.submit(TaskOrderPlacedEmail, payload, opts)
}

// EnqueueOrderStatusEmail 订单状态变更通知
func (c *Client) EnqueueOrderStatusEmail(payload OrderStatusEmailPayload, opts ...asynq.Option) error {
	return c.submit(TaskOrderStatusEmail, payload, opts)
}

// EnqueueAdminRequestReceived 新管理员申请通知
func (c *Client) EnqueueAdminRequestReceived(payload AdminRequestPayload, opts ...asynq.Option) error {
	return c.submit(TaskAdminRequestReceived, payload, opts)
}

func (c *Client) submit(taskType string, payload interface{}, opts []asynq.Option) error {
	if !c.Enabled() {
		return nil
	}
	task, err := newJSONTask(taskType, payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", taskType, err)
	}
	options := append([]asynq.Option{
		asynq.Queue(c.queue),
		asynq.MaxRetry(defaultMaxRetry),
		asynq.Timeout(defaultTaskTimeout),
	}, opts...)
	info, err := c.inner.Enqueue(task, options...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		logger.Debugw("queue_task_duplicate_skipped", "type", taskType)
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}
	logger.Debugw("queue_task_enqueued", "type", taskType, "task_id", info.ID, "queue", info.Queue)
	return nil
}

// BuildServerConfig 生成 worker 端配置，任务最终失败时记录日志
func BuildServerConfig(cfg *config.QueueConfig) (asynq.RedisClientOpt, asynq.Config) {
	concurrency := defaultConcurrency
	queues := map[string]int{DefaultQueue: 1}
	if cfg != nil {
		if cfg.Concurrency > 0 {
			concurrency = cfg.Concurrency
		}
		if len(cfg.Queues) > 0 {
			queues = cfg.Queues
		}
	}
	return RedisOpt(cfg), asynq.Config{
		Concurrency:     concurrency,
		Queues:          queues,
		ShutdownTimeout: 10 * time.Second,
		Logger:          logger.S(),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			retried, _ := asynq.GetRetryCount(ctx)
			maxRetry, _ := asynq.GetMaxRetry(ctx)
			logger.Warnw("queue_task_failed",
				"type", task.Type(),
				"retried", retried,
				"max_retry", maxRetry,
				"error", err,
			)
		}),
	}
}

// RedisOpt 队列 Redis 连接参数
func RedisOpt(cfg *config.QueueConfig) asynq.RedisClientOpt {
	opt := asynq.RedisClientOpt{Addr: "127.0.0.1:6379"}
	if cfg == nil {
		return opt
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	opt.Addr = fmt.Sprintf("%s:%d", host, port)
	opt.Password = cfg.Password
	opt.DB = cfg.DB
	return opt
}
