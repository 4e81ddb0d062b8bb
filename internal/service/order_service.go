package service

import (
	"fmt"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"
)

// OrderService 订单服务（状态流转由后台发起）
type OrderService struct {
	orderRepo   repository.OrderRepository
	queueClient NotificationQueue
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, queueClient NotificationQueue) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		queueClient: queueClient,
	}
}

// Transition 后台修改订单状态；终态订单返回 ErrOrderStatusTerminal。
// 无乐观锁，并发修改以最后一次写入为准。
func (s *OrderService) Transition(orderID uint, target string) (*models.Order, error) {
	if orderID == 0 {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := checkOrderTransition(order.Status, target); err != nil {
		return nil, err
	}

	status := normalizeOrderStatus(target)
	now := time.Now()
	if err := s.orderRepo.UpdateStatus(order.ID, status, now); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	order.Status = status
	order.UpdatedAt = now

	enqueueOrderStatusEmail(s.queueClient, order.ID, status)
	return order, nil
}

// Get 获取订单详情
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListForAdmin 后台订单列表
func (s *OrderService) ListForAdmin(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.Status != "" {
		filter.Status = normalizeOrderStatus(filter.Status)
		if !isKnownOrderStatus(filter.Status) {
			return nil, 0, ErrOrderStatusInvalid
		}
	}
	return s.orderRepo.ListAdmin(filter)
}

// ListByUser 用户订单历史
func (s *OrderService) ListByUser(userID uint, filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrUnauthorized
	}
	filter.UserID = userID
	if filter.Status != "" {
		filter.Status = normalizeOrderStatus(filter.Status)
	}
	return s.orderRepo.ListByUser(filter)
}
