package service

import (
	"context"
	"errors"
	"testing"

	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingOrderRepo struct {
	repository.OrderRepository
	err error
}

func (r *failingOrderRepo) CreateBatch(_ []models.Order) error {
	return r.err
}

type checkoutFixture struct {
	*cartFixture
	cfg       *config.Config
	orderRepo repository.OrderRepository
	delivery  *DeliveryChargeService
	queue     *recordingQueue
	checkout  *CheckoutService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	fx := newCartFixture(t)
	cfg := config.Default()
	cfg.Checkout.BankDetails = config.BankDetailsConfig{
		BankName:      "Meezan Bank",
		AccountTitle:  "Karachi Sofas",
		AccountNumber: "0101-0102030405",
	}
	orderRepo := repository.NewOrderRepository(fx.db)
	delivery := NewDeliveryChargeService(repository.NewDeliveryChargeRepository(fx.db))
	q := &recordingQueue{}
	return &checkoutFixture{
		cartFixture: fx,
		cfg:         cfg,
		orderRepo:   orderRepo,
		delivery:    delivery,
		queue:       q,
		checkout:    NewCheckoutService(cfg, fx.cartRepo, orderRepo, fx.cart, delivery, q),
	}
}

func validCheckoutForm() CheckoutForm {
	return CheckoutForm{
		Name:     "Ali Khan",
		Email:    "ali@example.com",
		Phone:    "0300-1234567",
		Address:  "House 12, Street 4",
		Area:     "Clifton",
		Block:    "Block 2",
		Landmark: "Near Dolmen Mall",
	}
}

func (fx *checkoutFixture) fillCart(t *testing.T, userID uint) (*models.Product, *models.Product) {
	t.Helper()
	ctx := context.Background()
	sofa := seedTestProduct(t, fx.db, "Sofa", 1000)
	table := seedTestProduct(t, fx.db, "Table", 500)
	_, _, err := fx.cart.Add(ctx, userID, sofa.ID)
	require.NoError(t, err)
	_, err = fx.cart.Increase(ctx, userID, sofa.ID)
	require.NoError(t, err)
	_, _, err = fx.cart.Add(ctx, userID, table.ID)
	require.NoError(t, err)
	return sofa, table
}

func countOrders(t *testing.T, fx *checkoutFixture) int64 {
	t.Helper()
	var count int64
	require.NoError(t, fx.db.Model(&models.Order{}).Count(&count).Error)
	return count
}

func TestCheckoutExcludesDeliveryFeeFromOrderTotals(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedTestUser(t, fx.db, "buyer@example.com")
	sofa, table := fx.fillCart(t, user.ID)
	_, err := fx.delivery.Create(DeliveryChargeInput{Area: "Clifton", Block: "Block 2", Charges: models.NewMoneyFromInt(200)})
	require.NoError(t, err)

	result, err := fx.checkout.Checkout(context.Background(), user.ID, validCheckoutForm())
	require.NoError(t, err)

	assert.Equal(t, "2500.00", result.Quote.Subtotal.String())
	assert.Equal(t, "200.00", result.Quote.DeliveryFee.String())
	assert.True(t, result.Quote.DeliveryResolved)
	assert.Equal(t, "2700.00", result.Quote.GrandTotal.String())
	assert.Equal(t, constants.PaymentMethodCOD, result.PaymentMethod)
	assert.Nil(t, result.BankDetails)

	orders, total, err := fx.orderRepo.ListByUser(repository.OrderListFilter{UserID: user.ID, Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	totals := map[uint]string{}
	for _, order := range orders {
		totals[order.ProductID] = order.TotalPrice.String()
		assert.Equal(t, constants.OrderStatusPending, order.Status)
		assert.NotEqual(t, "2700.00", order.TotalPrice.String())
	}
	assert.Equal(t, "2000.00", totals[sofa.ID])
	assert.Equal(t, "500.00", totals[table.ID])

	items, err := fx.cartRepo.ListByUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	require.Len(t, fx.queue.placed, 1)
	assert.Len(t, fx.queue.placed[0].OrderIDs, 2)
	assert.Equal(t, "2700.00", fx.queue.placed[0].GrandTotal)
}

func TestCheckoutValidationAbortsBeforeInsert(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(f *CheckoutForm)
		field   string
		message string
	}{
		{name: "short name", mutate: func(f *CheckoutForm) { f.Name = "Al" }, field: "name", message: "Name must be at least 3 characters long."},
		{name: "invalid email", mutate: func(f *CheckoutForm) { f.Email = "a@b" }, field: "email", message: "Please enter a valid email address (e.g., name@example.com)."},
		{name: "short phone", mutate: func(f *CheckoutForm) { f.Phone = "12345" }, field: "phone", message: "Please enter a valid phone number (at least 10 digits)."},
		{name: "short address", mutate: func(f *CheckoutForm) { f.Address = "short" }, field: "address", message: "Address must be at least 10 characters long."},
		{name: "missing area", mutate: func(f *CheckoutForm) { f.Area = "" }, field: "area", message: "Please select your area."},
		{name: "missing block", mutate: func(f *CheckoutForm) { f.Block = "" }, field: "block", message: "Please select your block/sector."},
		{name: "empty landmark", mutate: func(f *CheckoutForm) { f.Landmark = "   " }, field: "landmark", message: "Nearest landmark is required."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := newCheckoutFixture(t)
			user := seedTestUser(t, fx.db, "form@example.com")
			fx.fillCart(t, user.ID)

			form := validCheckoutForm()
			tc.mutate(&form)
			_, err := fx.checkout.Checkout(context.Background(), user.ID, form)
			require.ErrorIs(t, err, ErrCheckoutValidation)

			var validationErr *CheckoutValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tc.field, validationErr.Field)
			assert.Equal(t, tc.message, validationErr.Message)
			assert.Zero(t, countOrders(t, fx))

			items, err := fx.cartRepo.ListByUser(user.ID)
			require.NoError(t, err)
			assert.Len(t, items, 2)
		})
	}
}

func TestCheckoutUnresolvedDeliveryDoesNotBlock(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedTestUser(t, fx.db, "unresolved@example.com")
	fx.fillCart(t, user.ID)

	result, err := fx.checkout.Checkout(context.Background(), user.ID, validCheckoutForm())
	require.NoError(t, err)
	assert.False(t, result.Quote.DeliveryResolved)
	assert.True(t, result.Quote.DeliveryFee.IsZero())
	assert.Equal(t, "2500.00", result.Quote.GrandTotal.String())
	require.Len(t, fx.queue.placed, 1)
	assert.False(t, fx.queue.placed[0].DeliveryResolved)
}

func TestCheckoutPreconditions(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedTestUser(t, fx.db, "pre@example.com")

	_, err := fx.checkout.Checkout(context.Background(), 0, validCheckoutForm())
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = fx.checkout.Checkout(context.Background(), user.ID, validCheckoutForm())
	assert.ErrorIs(t, err, ErrCartEmpty)

	fx.fillCart(t, user.ID)
	form := validCheckoutForm()
	form.PaymentMethod = "crypto"
	_, err = fx.checkout.Checkout(context.Background(), user.ID, form)
	assert.ErrorIs(t, err, ErrPaymentMethodInvalid)
	assert.Zero(t, countOrders(t, fx))
}

func TestCheckoutBatchFailureKeepsCart(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedTestUser(t, fx.db, "batch@example.com")
	fx.fillCart(t, user.ID)

	batchErr := errors.New("FOREIGN KEY constraint failed")
	svc := NewCheckoutService(fx.cfg, fx.cartRepo, &failingOrderRepo{OrderRepository: fx.orderRepo, err: batchErr}, fx.cart, fx.delivery, fx.queue)

	_, err := svc.Checkout(context.Background(), user.ID, validCheckoutForm())
	require.ErrorIs(t, err, batchErr)
	assert.Equal(t, batchErr.Error(), err.Error())

	items, err := fx.cartRepo.ListByUser(user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Empty(t, fx.queue.placed)
}

func TestCheckoutBankTransferReturnsBankDetails(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedTestUser(t, fx.db, "bank@example.com")
	fx.fillCart(t, user.ID)

	form := validCheckoutForm()
	form.PaymentMethod = "bank transfer"
	result, err := fx.checkout.Checkout(context.Background(), user.ID, form)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentMethodBankTransfer, result.PaymentMethod)
	require.NotNil(t, result.BankDetails)
	assert.Equal(t, "Meezan Bank", result.BankDetails.BankName)
	for _, order := range result.Orders {
		assert.Equal(t, constants.PaymentMethodBankTransfer, order.PaymentMethod)
	}
}

func TestCheckoutQuote(t *testing.T) {
	fx := newCheckoutFixture(t)
	user := seedTestUser(t, fx.db, "quote@example.com")
	fx.fillCart(t, user.ID)
	_, err := fx.delivery.Create(DeliveryChargeInput{Area: "Clifton", Block: "Block 2", Charges: models.NewMoneyFromInt(200)})
	require.NoError(t, err)

	quote, err := fx.checkout.Quote(user.ID, "Clifton", "Block 2")
	require.NoError(t, err)
	assert.Equal(t, 3, quote.ItemCount)
	assert.Equal(t, "2700.00", quote.GrandTotal.String())
	assert.Equal(t, constants.CurrencyDefault, quote.Currency)
}
