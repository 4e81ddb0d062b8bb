package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/queue"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/go-playground/validator/v10"
)

// CheckoutQuote 结账金额预览；GrandTotal 仅用于展示，不写入订单
type CheckoutQuote struct {
	Subtotal         models.Money `json:"subtotal"`
	DeliveryKey      string       `json:"delivery_key"`
	DeliveryFee      models.Money `json:"delivery_fee"`
	DeliveryResolved bool         `json:"delivery_resolved"`
	GrandTotal       models.Money `json:"grand_total"`
	Currency         string       `json:"currency"`
	ItemCount        int          `json:"item_count"`
}

// CheckoutResult 下单结果
type CheckoutResult struct {
	Orders        []models.Order            `json:"orders"`
	Quote         CheckoutQuote             `json:"quote"`
	PaymentMethod string                    `json:"payment_method"`
	BankDetails   *config.BankDetailsConfig `json:"bank_details,omitempty"`
}

// CheckoutService 结账服务：校验表单、计算金额、批量生成订单并清空购物车
type CheckoutService struct {
	cfg             *config.Config
	cartRepo        repository.CartRepository
	orderRepo       repository.OrderRepository
	cartService     *CartService
	deliveryService *DeliveryChargeService
	queueClient     NotificationQueue
	validate        *validator.Validate
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(
	cfg *config.Config,
	cartRepo repository.CartRepository,
	orderRepo repository.OrderRepository,
	cartService *CartService,
	deliveryService *DeliveryChargeService,
	queueClient NotificationQueue,
) *CheckoutService {
	return &CheckoutService{
		cfg:             cfg,
		cartRepo:        cartRepo,
		orderRepo:       orderRepo,
		cartService:     cartService,
		deliveryService: deliveryService,
		queueClient:     queueClient,
		validate:        newCheckoutValidator(),
	}
}

// Validate 只校验表单，不读取购物车
func (s *CheckoutService) Validate(form CheckoutForm) error {
	return validateCheckoutForm(s.validate, form.normalize())
}

// Quote 计算当前购物车的金额预览
func (s *CheckoutService) Quote(userID uint, area, block string) (*CheckoutQuote, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	items, err := s.loadCart(userID)
	if err != nil {
		return nil, err
	}
	return s.buildQuote(items, area, block)
}

// BankDetails 银行转账收款信息（仅展示）
func (s *CheckoutService) BankDetails() config.BankDetailsConfig {
	if s.cfg == nil {
		return config.BankDetailsConfig{}
	}
	return s.cfg.Checkout.BankDetails
}

// Checkout 提交订单：每个购物车行生成一条订单，批量写入要么全部成功要么全部失败
func (s *CheckoutService) Checkout(ctx context.Context, userID uint, form CheckoutForm) (*CheckoutResult, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	items, err := s.loadCart(userID)
	if err != nil {
		return nil, err
	}

	form = form.normalize()
	if err := validateCheckoutForm(s.validate, form); err != nil {
		return nil, err
	}
	paymentMethod, err := normalizePaymentMethod(form.PaymentMethod)
	if err != nil {
		return nil, err
	}

	quote, err := s.buildQuote(items, form.Area, form.Block)
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(items))
	for _, item := range items {
		orders = append(orders, models.Order{
			UserID:        userID,
			ProductID:     item.ProductID,
			Quantity:      item.Quantity,
			UnitPrice:     item.Product.Price,
			TotalPrice:    item.Product.Price.MulInt(item.Quantity),
			PaymentMethod: paymentMethod,
			Status:        constants.OrderStatusPending,
			CustomerName:  form.Name,
			Email:         form.Email,
			Phone:         form.Phone,
			Address:       form.Address,
			Area:          form.Area,
			Block:         form.Block,
			Landmark:      form.Landmark,
		})
	}
	if err := s.orderRepo.CreateBatch(orders); err != nil {
		return nil, err
	}

	// 订单已写入，清空失败不回滚订单
	if err := s.cartService.Clear(ctx, userID); err != nil {
		logger.Warnw("checkout_cart_clear_failed", "user_id", userID, "error", err)
	}

	orderIDs := make([]uint, 0, len(orders))
	for _, order := range orders {
		orderIDs = append(orderIDs, order.ID)
	}
	enqueueOrderPlacedEmail(s.queueClient, queue.OrderPlacedEmailPayload{
		UserID:           userID,
		OrderIDs:         orderIDs,
		PaymentMethod:    paymentMethod,
		Subtotal:         quote.Subtotal.String(),
		DeliveryFee:      quote.DeliveryFee.String(),
		DeliveryResolved: quote.DeliveryResolved,
		GrandTotal:       quote.GrandTotal.String(),
	})

	result := &CheckoutResult{
		Orders:        orders,
		Quote:         *quote,
		PaymentMethod: paymentMethod,
	}
	if paymentMethod == constants.PaymentMethodBankTransfer {
		details := s.BankDetails()
		result.BankDetails = &details
	}
	return result, nil
}

func (s *CheckoutService) loadCart(userID uint) ([]models.CartItem, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}
	for _, item := range items {
		if item.Product == nil {
			return nil, fmt.Errorf("%w: product %d", ErrProductNotAvailable, item.ProductID)
		}
	}
	return items, nil
}

func (s *CheckoutService) buildQuote(items []models.CartItem, area, block string) (*CheckoutQuote, error) {
	subtotal := models.NewMoneyFromInt(0)
	count := 0
	for _, item := range items {
		subtotal = subtotal.Plus(item.Product.Price.MulInt(item.Quantity))
		count += item.Quantity
	}
	resolution, err := s.deliveryService.Resolve(area, block)
	if err != nil {
		return nil, err
	}
	fee := models.NewMoneyFromInt(0)
	if resolution.Found {
		fee = resolution.Amount
	}
	return &CheckoutQuote{
		Subtotal:         subtotal,
		DeliveryKey:      resolution.Key,
		DeliveryFee:      fee,
		DeliveryResolved: resolution.Found,
		GrandTotal:       subtotal.Plus(fee),
		Currency:         s.currency(),
		ItemCount:        count,
	}, nil
}

func (s *CheckoutService) currency() string {
	if s.cfg == nil || strings.TrimSpace(s.cfg.Checkout.Currency) == "" {
		return constants.CurrencyDefault
	}
	return s.cfg.Checkout.Currency
}

func normalizePaymentMethod(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "cod", "cash on delivery":
		return constants.PaymentMethodCOD, nil
	case "bank transfer", "bank_transfer":
		return constants.PaymentMethodBankTransfer, nil
	default:
		return "", ErrPaymentMethodInvalid
	}
}
