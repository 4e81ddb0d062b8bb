package worker

import (
	"testing"

	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/queue"
)

func TestResolveReceiverEmailPrefersOrderEmail(t *testing.T) {
	order := &models.Order{Email: " buyer@example.com ", User: &models.User{Email: "account@example.com"}}
	if got := resolveReceiverEmail(order); got != "buyer@example.com" {
		t.Fatalf("want buyer@example.com got %q", got)
	}
	order.Email = ""
	if got := resolveReceiverEmail(order); got != "account@example.com" {
		t.Fatalf("want account@example.com got %q", got)
	}
	if got := resolveReceiverEmail(nil); got != "" {
		t.Fatalf("nil order should have empty receiver, got %q", got)
	}
}

func TestBuildOrderPlacedEmailInput(t *testing.T) {
	orders := []*models.Order{
		{ID: 1, Quantity: 2, TotalPrice: models.NewMoneyFromInt(2000), CustomerName: "Ali Khan", Area: "Clifton", Block: "Block 5", PaymentMethod: constants.PaymentMethodCOD, Product: &models.Product{Name: "Sofa"}},
		{ID: 2, Quantity: 1, TotalPrice: models.NewMoneyFromInt(500), Product: &models.Product{Name: "Table"}},
	}
	input := buildOrderPlacedEmailInput(orders, queue.OrderPlacedEmailPayload{
		Subtotal:         "2500.00",
		DeliveryFee:      "200.00",
		DeliveryResolved: true,
		GrandTotal:       "2700.00",
	}, "PKR")

	if input.PaymentMethod != constants.PaymentMethodCOD {
		t.Fatalf("payment method should fall back to order value, got %q", input.PaymentMethod)
	}
	if len(input.Lines) != 2 || input.Lines[1].ProductName != "Table" {
		t.Fatalf("unexpected lines %+v", input.Lines)
	}
	if input.CustomerName != "Ali Khan" || input.GrandTotal != "2700.00" {
		t.Fatalf("unexpected input %+v", input)
	}
}
