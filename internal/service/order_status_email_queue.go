package service

import (
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/queue"

	"github.com/hibiken/asynq"
)

// NotificationQueue 异步通知入队接口，由 queue.Client 实现
type NotificationQueue interface {
	EnqueueOrderPlacedEmail(payload queue.OrderPlacedEmailPayload, opts ...asynq.Option) error
	EnqueueOrderStatusEmail(payload queue.OrderStatusEmailPayload, opts ...asynq.Option) error
	EnqueueAdminRequestReceived(payload queue.AdminRequestPayload, opts ...asynq.Option) error
}

// enqueueOrderStatusEmail 入队订单状态邮件，失败只记录日志
func enqueueOrderStatusEmail(queueClient NotificationQueue, orderID uint, status string) {
	if queueClient == nil || orderID == 0 {
		return
	}
	if err := queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: orderID,
		Status:  strings.TrimSpace(status),
	}); err != nil {
		logger.Warnw("order_status_email_enqueue_failed", "order_id", orderID, "status", status, "error", err)
	}
}

// enqueueOrderPlacedEmail 入队下单成功邮件，失败只记录日志
func enqueueOrderPlacedEmail(queueClient NotificationQueue, payload queue.OrderPlacedEmailPayload) {
	if queueClient == nil || len(payload.OrderIDs) == 0 {
		return
	}
	if err := queueClient.EnqueueOrderPlacedEmail(payload); err != nil {
		logger.Warnw("order_placed_email_enqueue_failed", "user_id", payload.UserID, "order_ids", payload.OrderIDs, "error", err)
	}
}
