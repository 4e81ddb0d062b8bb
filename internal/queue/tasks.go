package queue

import (
	"encoding/json"

	"github.com/wahhajahmed/KarachiSofas/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlacedEmail 下单成功邮件通知任务
	TaskOrderPlacedEmail = constants.TaskOrderPlacedEmail
	// TaskOrderStatusEmail 订单状态邮件通知任务
	TaskOrderStatusEmail = constants.TaskOrderStatusEmail
	// TaskAdminRequestReceived 管理员申请通知任务
	TaskAdminRequestReceived = constants.TaskAdminRequestReceived
)

// OrderPlacedEmailPayload 下单成功邮件任务载荷（一次结账的订单批次）
type OrderPlacedEmailPayload struct {
	UserID           uint   `json:"user_id"`
	OrderIDs         []uint `json:"order_ids"`
	PaymentMethod    string `json:"payment_method"`
	Subtotal         string `json:"subtotal"`
	DeliveryFee      string `json:"delivery_fee"`
	DeliveryResolved bool   `json:"delivery_resolved"`
	GrandTotal       string `json:"grand_total"`
}

// OrderStatusEmailPayload 订单状态邮件任务载荷
type OrderStatusEmailPayload struct {
	OrderID uint   `json:"order_id"`
	Status  string `json:"status"`
}

// AdminRequestPayload 管理员申请任务载荷
type AdminRequestPayload struct {
	AdminID uint `json:"admin_id"`
}

// NewOrderPlacedEmailTask 创建下单成功邮件任务
func NewOrderPlacedEmailTask(payload OrderPlacedEmailPayload) (*asynq.Task, error) {
	return newJSONTask(TaskOrderPlacedEmail, payload)
}

// NewOrderStatusEmailTask 创建订单状态邮件任务
func NewOrderStatusEmailTask(payload OrderStatusEmailPayload) (*asynq.Task, error) {
	return newJSONTask(TaskOrderStatusEmail, payload)
}

// NewAdminRequestTask 创建管理员申请通知任务
func NewAdminRequestTask(payload AdminRequestPayload) (*asynq.Task, error) {
	return newJSONTask(TaskAdminRequestReceived, payload)
}

func newJSONTask(taskType string, payload interface{}) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(taskType, body), nil
}
