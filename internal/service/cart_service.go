package service

import (
	"context"
	"fmt"

	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"
)

// CartService 购物车服务（先落库，再更新投影）
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	projection  CartProjection
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository, projection CartProjection) *CartService {
	if projection == nil {
		projection = NewMemoryCartProjection()
	}
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		projection:  projection,
	}
}

// Add 加入购物车；已存在时不增加数量，返回 added=false
func (s *CartService) Add(ctx context.Context, userID, productID uint) (CartState, bool, error) {
	if userID == 0 {
		return CartState{}, false, ErrUnauthorized
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return CartState{}, false, fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return CartState{}, false, ErrProductNotFound
	}
	if !product.IsActive {
		return CartState{}, false, ErrProductNotAvailable
	}

	existing, err := s.cartRepo.Get(userID, productID)
	if err != nil {
		return CartState{}, false, fmt.Errorf("load cart item: %w", err)
	}
	if existing != nil {
		state, err := s.View(ctx, userID)
		return state, false, err
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}
	if err := s.cartRepo.Create(item); err != nil {
		if repository.IsUniqueViolation(err) {
			state, viewErr := s.View(ctx, userID)
			return state, false, viewErr
		}
		return CartState{}, false, fmt.Errorf("save cart item: %w", err)
	}

	state := s.apply(ctx, userID, CartCommand{Kind: CartCommandAdd, Line: cartLineFromProduct(product, 1)})
	return state, true, nil
}

// Increase 数量 +1
func (s *CartService) Increase(ctx context.Context, userID, productID uint) (CartState, error) {
	existing, err := s.requireLine(userID, productID)
	if err != nil {
		return CartState{}, err
	}
	if err := s.cartRepo.UpdateQuantity(userID, productID, existing.Quantity+1); err != nil {
		return CartState{}, fmt.Errorf("update cart item: %w", err)
	}
	return s.apply(ctx, userID, CartCommand{Kind: CartCommandIncrease, ProductID: productID}), nil
}

// Decrease 数量 -1，小于 1 时删除该行
func (s *CartService) Decrease(ctx context.Context, userID, productID uint) (CartState, error) {
	existing, err := s.requireLine(userID, productID)
	if err != nil {
		return CartState{}, err
	}
	next := existing.Quantity - 1
	if next < 1 {
		err = s.cartRepo.Delete(userID, productID)
	} else {
		err = s.cartRepo.UpdateQuantity(userID, productID, next)
	}
	if err != nil {
		return CartState{}, fmt.Errorf("update cart item: %w", err)
	}
	return s.apply(ctx, userID, CartCommand{Kind: CartCommandDecrease, ProductID: productID}), nil
}

// Remove 删除购物车行
func (s *CartService) Remove(ctx context.Context, userID, productID uint) (CartState, error) {
	if userID == 0 {
		return CartState{}, ErrUnauthorized
	}
	if err := s.cartRepo.Delete(userID, productID); err != nil {
		return CartState{}, fmt.Errorf("delete cart item: %w", err)
	}
	return s.apply(ctx, userID, CartCommand{Kind: CartCommandRemove, ProductID: productID}), nil
}

// Clear 清空用户购物车
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	if userID == 0 {
		return ErrUnauthorized
	}
	if err := s.cartRepo.ClearByUser(userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.apply(ctx, userID, CartCommand{Kind: CartCommandClear})
	return nil
}

// Hydrate 从持久层整体重建投影（不合并旧投影）
func (s *CartService) Hydrate(ctx context.Context, userID uint) (CartState, error) {
	if userID == 0 {
		return CartState{}, ErrUnauthorized
	}
	state, err := s.loadPersisted(userID)
	if err != nil {
		return CartState{}, err
	}
	if err := s.projection.Store(ctx, userID, state); err != nil {
		logger.Warnw("cart_projection_update_failed", "user_id", userID, "command", CartCommandHydrate, "error", err)
	}
	return state, nil
}

// View 读取购物车视图，投影缺失时从持久层重建
func (s *CartService) View(ctx context.Context, userID uint) (CartState, error) {
	if userID == 0 {
		return CartState{}, ErrUnauthorized
	}
	state, ok, err := s.projection.Load(ctx, userID)
	if err != nil {
		logger.Warnw("cart_projection_load_failed", "user_id", userID, "error", err)
	}
	if err == nil && ok {
		return state, nil
	}
	return s.Hydrate(ctx, userID)
}

func (s *CartService) requireLine(userID, productID uint) (*models.CartItem, error) {
	if userID == 0 {
		return nil, ErrUnauthorized
	}
	existing, err := s.cartRepo.Get(userID, productID)
	if err != nil {
		return nil, fmt.Errorf("load cart item: %w", err)
	}
	if existing == nil {
		return nil, ErrCartItemNotFound
	}
	return existing, nil
}

func (s *CartService) loadPersisted(userID uint) (CartState, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return CartState{}, fmt.Errorf("load cart: %w", err)
	}
	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, cartLineFromItem(item))
	}
	return Reduce(CartState{}, CartCommand{Kind: CartCommandHydrate, Lines: lines}), nil
}

// apply 持久化成功后推进投影；投影缺失时以持久层为准重建
func (s *CartService) apply(ctx context.Context, userID uint, cmd CartCommand) CartState {
	current, ok, err := s.projection.Load(ctx, userID)
	var next CartState
	if err == nil && ok {
		next = Reduce(current, cmd)
	} else {
		persisted, loadErr := s.loadPersisted(userID)
		if loadErr != nil {
			logger.Warnw("cart_projection_rebuild_failed", "user_id", userID, "command", cmd.Kind, "error", loadErr)
			_ = s.projection.Drop(ctx, userID)
			return Reduce(current, cmd)
		}
		next = persisted
	}
	if err := s.projection.Store(ctx, userID, next); err != nil {
		logger.Warnw("cart_projection_update_failed", "user_id", userID, "command", cmd.Kind, "error", err)
		_ = s.projection.Drop(ctx, userID)
	}
	return next
}
