package service

import (
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/constants"
)

// orderStatusTransitions 允许的状态流转：pending 只能进入 completed / rejected
var orderStatusTransitions = map[string]map[string]struct{}{
	constants.OrderStatusPending: {
		constants.OrderStatusCompleted: {},
		constants.OrderStatusRejected:  {},
	},
}

func normalizeOrderStatus(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func isKnownOrderStatus(status string) bool {
	switch status {
	case constants.OrderStatusPending, constants.OrderStatusCompleted, constants.OrderStatusRejected:
		return true
	default:
		return false
	}
}

// isTerminalOrderStatus 终态不可再流转
func isTerminalOrderStatus(status string) bool {
	switch normalizeOrderStatus(status) {
	case constants.OrderStatusCompleted, constants.OrderStatusRejected:
		return true
	default:
		return false
	}
}

// checkOrderTransition 校验状态流转
func checkOrderTransition(current, target string) error {
	from := normalizeOrderStatus(current)
	to := normalizeOrderStatus(target)
	if !isKnownOrderStatus(to) {
		return ErrOrderStatusInvalid
	}
	if isTerminalOrderStatus(from) {
		return ErrOrderStatusTerminal
	}
	allowed, ok := orderStatusTransitions[from]
	if !ok {
		return ErrOrderStatusInvalid
	}
	if _, ok := allowed[to]; !ok {
		return ErrOrderStatusInvalid
	}
	return nil
}
