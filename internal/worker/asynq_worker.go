package worker

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/provider"
	"github.com/wahhajahmed/KarachiSofas/internal/queue"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlacedEmail, c.handleOrderPlacedEmail)
	mux.HandleFunc(queue.TaskOrderStatusEmail, c.handleOrderStatusEmail)
	mux.HandleFunc(queue.TaskAdminRequestReceived, c.handleAdminRequestReceived)
}

func (c *Consumer) handleOrderPlacedEmail(_ context.Context, task *asynq.Task) error {
	var payload queue.OrderPlacedEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_placed_email_unmarshal_failed", "error", err)
		return err
	}
	if len(payload.OrderIDs) == 0 {
		logger.Debugw("worker_order_placed_email_skip_invalid_payload", "user_id", payload.UserID)
		return nil
	}

	orders := make([]*models.Order, 0, len(payload.OrderIDs))
	for _, id := range payload.OrderIDs {
		order, err := c.OrderRepo.GetByID(id)
		if err != nil {
			logger.Warnw("worker_order_placed_email_fetch_order_failed", "order_id", id, "error", err)
			return err
		}
		if order != nil {
			orders = append(orders, order)
		}
	}
	if len(orders) == 0 {
		logger.Debugw("worker_order_placed_email_skip_orders_not_found", "order_ids", payload.OrderIDs)
		return nil
	}

	input := buildOrderPlacedEmailInput(orders, payload, c.currency())
	if payload.PaymentMethod == constants.PaymentMethodBankTransfer {
		details := c.Config.Checkout.BankDetails
		input.BankDetails = &details
	}

	receivers := []string{resolveReceiverEmail(orders[0])}
	if inbox := c.EmailService.StoreInbox(); inbox != "" {
		receivers = append(receivers, inbox)
	}
	for _, receiver := range receivers {
		if receiver == "" {
			continue
		}
		if err := c.EmailService.SendOrderPlacedEmail(receiver, input); err != nil {
			logger.Warnw("worker_order_placed_email_send_failed",
				"order_ids", payload.OrderIDs,
				"receiver_email", receiver,
				"error", err,
			)
			return err
		}
	}
	return nil
}

func (c *Consumer) handleOrderStatusEmail(_ context.Context, task *asynq.Task) error {
	var payload queue.OrderStatusEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_email_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_email_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_email_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		logger.Debugw("worker_order_status_email_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}
	receiver := resolveReceiverEmail(order)
	if receiver == "" {
		logger.Debugw("worker_order_status_email_skip_empty_receiver", "order_id", order.ID)
		return nil
	}
	status := strings.TrimSpace(payload.Status)
	if status == "" {
		status = order.Status
	}
	input := service.OrderStatusEmailInput{
		OrderID:      order.ID,
		CustomerName: order.CustomerName,
		Quantity:     order.Quantity,
		Status:       status,
		TotalPrice:   order.TotalPrice,
		Currency:     c.currency(),
	}
	if order.Product != nil {
		input.ProductName = order.Product.Name
	}
	if err := c.EmailService.SendOrderStatusEmail(receiver, input); err != nil {
		logger.Warnw("worker_order_status_email_send_failed",
			"order_id", order.ID,
			"receiver_email", receiver,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleAdminRequestReceived(_ context.Context, task *asynq.Task) error {
	var payload queue.AdminRequestPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_admin_request_unmarshal_failed", "error", err)
		return err
	}
	inbox := c.EmailService.StoreInbox()
	if inbox == "" {
		logger.Debugw("worker_admin_request_skip_empty_inbox", "admin_id", payload.AdminID)
		return nil
	}
	admin, err := c.AdminRepo.GetByID(payload.AdminID)
	if err != nil {
		logger.Warnw("worker_admin_request_fetch_failed", "admin_id", payload.AdminID, "error", err)
		return err
	}
	if admin == nil || admin.Status != constants.AdminStatusPending {
		return nil
	}
	if err := c.EmailService.SendAdminRequestEmail(inbox, service.AdminRequestEmailInput{
		AdminID: admin.ID,
		Name:    admin.Name,
		Email:   admin.Email,
		Phone:   admin.Phone,
	}); err != nil {
		logger.Warnw("worker_admin_request_send_failed", "admin_id", admin.ID, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) currency() string {
	if c.Config == nil || strings.TrimSpace(c.Config.Checkout.Currency) == "" {
		return constants.CurrencyDefault
	}
	return c.Config.Checkout.Currency
}

// resolveReceiverEmail 优先使用下单表单中的邮箱
func resolveReceiverEmail(order *models.Order) string {
	if order == nil {
		return ""
	}
	if email := strings.TrimSpace(order.Email); email != "" {
		return email
	}
	if order.User != nil {
		return strings.TrimSpace(order.User.Email)
	}
	return ""
}

func buildOrderPlacedEmailInput(orders []*models.Order, payload queue.OrderPlacedEmailPayload, currency string) service.OrderPlacedEmailInput {
	first := orders[0]
	input := service.OrderPlacedEmailInput{
		CustomerName:     first.CustomerName,
		Phone:            first.Phone,
		Address:          first.Address,
		Area:             first.Area,
		Block:            first.Block,
		Landmark:         first.Landmark,
		PaymentMethod:    payload.PaymentMethod,
		Currency:         currency,
		Subtotal:         payload.Subtotal,
		DeliveryFee:      payload.DeliveryFee,
		DeliveryResolved: payload.DeliveryResolved,
		GrandTotal:       payload.GrandTotal,
		Lines:            make([]service.OrderEmailLine, 0, len(orders)),
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = first.PaymentMethod
	}
	for _, order := range orders {
		line := service.OrderEmailLine{
			OrderID:    order.ID,
			Quantity:   order.Quantity,
			TotalPrice: order.TotalPrice,
		}
		if order.Product != nil {
			line.ProductName = order.Product.Name
		}
		input.Lines = append(input.Lines, line)
	}
	return input
}
