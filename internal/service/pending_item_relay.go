package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"

	"github.com/google/uuid"
)

// PendingItem 游客待提交的商品快照
type PendingItem struct {
	GuestToken string       `json:"guest_token"`
	ProductID  uint         `json:"product_id"`
	Name       string       `json:"name"`
	Price      models.Money `json:"price"`
	Image      string       `json:"image"`
}

// PendingItemRelay 跨登录边界传递一次加购意图（至多一次）
type PendingItemRelay struct {
	intentRepo  repository.PendingIntentRepository
	productRepo repository.ProductRepository
	cartService *CartService
}

// NewPendingItemRelay 创建加购意图中转服务
func NewPendingItemRelay(intentRepo repository.PendingIntentRepository, productRepo repository.ProductRepository, cartService *CartService) *PendingItemRelay {
	return &PendingItemRelay{
		intentRepo:  intentRepo,
		productRepo: productRepo,
		cartService: cartService,
	}
}

// NewGuestToken 生成游客令牌
func NewGuestToken() string {
	return uuid.NewString()
}

// Hold 保存游客加购意图，覆盖旧值
func (r *PendingItemRelay) Hold(guestToken string, productID uint) (*PendingItem, error) {
	token := strings.TrimSpace(guestToken)
	if token == "" {
		return nil, ErrGuestTokenMissing
	}
	product, err := r.productRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if !product.IsActive {
		return nil, ErrProductNotAvailable
	}

	line := cartLineFromProduct(product, 1)
	intent := &models.PendingCartIntent{
		GuestToken: token,
		ProductID:  product.ID,
		Snapshot: models.JSON{
			"name":  line.Name,
			"price": line.Price.String(),
			"image": line.Image,
		},
	}
	if err := r.intentRepo.Upsert(intent); err != nil {
		return nil, fmt.Errorf("save pending item: %w", err)
	}
	return &PendingItem{
		GuestToken: token,
		ProductID:  line.ProductID,
		Name:       line.Name,
		Price:      line.Price,
		Image:      line.Image,
	}, nil
}

// Peek 查看游客当前的加购意图，不存在时返回 nil
func (r *PendingItemRelay) Peek(guestToken string) (*PendingItem, error) {
	token := strings.TrimSpace(guestToken)
	if token == "" {
		return nil, nil
	}
	intent, err := r.intentRepo.GetByToken(token)
	if err != nil {
		return nil, fmt.Errorf("load pending item: %w", err)
	}
	if intent == nil {
		return nil, nil
	}
	return pendingItemFromIntent(intent), nil
}

// Release 登录成功后提交加购意图；先清空槽位，提交失败只记录日志
func (r *PendingItemRelay) Release(ctx context.Context, guestToken string, userID uint) *PendingItem {
	token := strings.TrimSpace(guestToken)
	if token == "" || userID == 0 {
		return nil
	}
	intent, err := r.intentRepo.GetByToken(token)
	if err != nil {
		logger.Warnw("pending_intent_release_failed", "stage", "load", "user_id", userID, "error", err)
		return nil
	}
	if intent == nil {
		return nil
	}
	deleted, err := r.intentRepo.DeleteByToken(token)
	if err != nil {
		logger.Warnw("pending_intent_release_failed", "stage", "clear", "user_id", userID, "product_id", intent.ProductID, "error", err)
		return nil
	}
	if !deleted {
		// 另一个请求已取走该意图
		return nil
	}

	item := pendingItemFromIntent(intent)
	if _, _, err := r.cartService.Add(ctx, userID, intent.ProductID); err != nil {
		logger.Warnw("pending_intent_release_failed",
			"stage", "commit",
			"user_id", userID,
			"product_id", intent.ProductID,
			"error", err,
		)
		return nil
	}
	return item
}

// CompleteLogin 登录/注册成功后提交加购意图，再从持久层整体重建购物车视图
func (r *PendingItemRelay) CompleteLogin(ctx context.Context, guestToken string, userID uint) (*PendingItem, CartState, error) {
	item := r.Release(ctx, guestToken, userID)
	state, err := r.cartService.Hydrate(ctx, userID)
	if err != nil {
		return item, CartState{}, err
	}
	return item, state, nil
}

func pendingItemFromIntent(intent *models.PendingCartIntent) *PendingItem {
	item := &PendingItem{
		GuestToken: intent.GuestToken,
		ProductID:  intent.ProductID,
	}
	if intent.Snapshot == nil {
		return item
	}
	if name, ok := intent.Snapshot["name"].(string); ok {
		item.Name = name
	}
	if image, ok := intent.Snapshot["image"].(string); ok {
		item.Image = image
	}
	if raw, ok := intent.Snapshot["price"].(string); ok {
		if price, err := models.ParseMoney(raw); err == nil {
			item.Price = price
		}
	}
	return item
}
