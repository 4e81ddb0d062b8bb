package service

import (
	"testing"

	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTestOrder(t *testing.T, fx *cartFixture, status string) *models.Order {
	t.Helper()
	user := seedTestUser(t, fx.db, status+"-order@example.com")
	product := seedTestProduct(t, fx.db, "Sofa", 1000)
	order := &models.Order{
		UserID:        user.ID,
		ProductID:     product.ID,
		Quantity:      1,
		UnitPrice:     product.Price,
		TotalPrice:    product.Price,
		PaymentMethod: constants.PaymentMethodCOD,
		Status:        status,
	}
	require.NoError(t, fx.db.Create(order).Error)
	return order
}

func TestOrderTransitionFromPending(t *testing.T) {
	fx := newCartFixture(t)
	q := &recordingQueue{}
	svc := NewOrderService(repository.NewOrderRepository(fx.db), q)
	order := seedTestOrder(t, fx, constants.OrderStatusPending)

	updated, err := svc.Transition(order.ID, "Completed")
	require.NoError(t, err)
	assert.Equal(t, constants.OrderStatusCompleted, updated.Status)

	stored, err := svc.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.OrderStatusCompleted, stored.Status)

	require.Len(t, q.statuses, 1)
	assert.Equal(t, order.ID, q.statuses[0].OrderID)
	assert.Equal(t, constants.OrderStatusCompleted, q.statuses[0].Status)
}

func TestOrderTransitionTerminalIsRejected(t *testing.T) {
	for _, terminal := range []string{constants.OrderStatusCompleted, constants.OrderStatusRejected} {
		t.Run(terminal, func(t *testing.T) {
			fx := newCartFixture(t)
			q := &recordingQueue{}
			svc := NewOrderService(repository.NewOrderRepository(fx.db), q)
			order := seedTestOrder(t, fx, terminal)

			for _, target := range []string{constants.OrderStatusPending, constants.OrderStatusCompleted, constants.OrderStatusRejected} {
				_, err := svc.Transition(order.ID, target)
				assert.ErrorIs(t, err, ErrOrderStatusTerminal)
			}

			stored, err := svc.Get(order.ID)
			require.NoError(t, err)
			assert.Equal(t, terminal, stored.Status)
			assert.Empty(t, q.statuses)
		})
	}
}

func TestOrderTransitionInvalidTarget(t *testing.T) {
	fx := newCartFixture(t)
	svc := NewOrderService(repository.NewOrderRepository(fx.db), nil)
	order := seedTestOrder(t, fx, constants.OrderStatusPending)

	_, err := svc.Transition(order.ID, "processing")
	assert.ErrorIs(t, err, ErrOrderStatusInvalid)

	_, err = svc.Transition(order.ID, constants.OrderStatusPending)
	assert.ErrorIs(t, err, ErrOrderStatusInvalid)

	_, err = svc.Transition(9999, constants.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderListForAdminRejectsUnknownStatus(t *testing.T) {
	fx := newCartFixture(t)
	svc := NewOrderService(repository.NewOrderRepository(fx.db), nil)
	seedTestOrder(t, fx, constants.OrderStatusPending)

	_, _, err := svc.ListForAdmin(repository.OrderListFilter{Status: "shipped"})
	assert.ErrorIs(t, err, ErrOrderStatusInvalid)

	orders, total, err := svc.ListForAdmin(repository.OrderListFilter{Status: "PENDING", Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, orders, 1)
}
