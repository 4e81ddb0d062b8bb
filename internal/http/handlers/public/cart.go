package public

import (
	"context"

	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/i18n"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车商品请求
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// CartLineResponse 购物车行
type CartLineResponse struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Price     models.Money `json:"price"`
	Image     string       `json:"image"`
	Quantity  int          `json:"quantity"`
	Subtotal  models.Money `json:"subtotal"`
}

// CartResponse 购物车视图
type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	ItemCount int                `json:"item_count"`
	Subtotal  models.Money       `json:"subtotal"`
}

func toCartResponse(state service.CartState) CartResponse {
	items := make([]CartLineResponse, 0, len(state.Lines))
	for _, line := range state.Lines {
		items = append(items, CartLineResponse{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Image:     line.Image,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal(),
		})
	}
	return CartResponse{
		Items:     items,
		ItemCount: state.ItemCount(),
		Subtotal:  state.Subtotal(),
	}
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	state, err := h.CartService.View(c.Request.Context(), uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, toCartResponse(state))
}

// AddCartItem 加入购物车；已存在时不增加数量
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	state, added, err := h.CartService.Add(c.Request.Context(), uid, req.ProductID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	key := "success.cart_added"
	if !added {
		key = "success.cart_already_present"
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), key), gin.H{
		"added": added,
		"cart":  toCartResponse(state),
	})
}

// IncreaseCartItem 数量加一
func (h *Handler) IncreaseCartItem(c *gin.Context) {
	h.mutateCartLine(c, h.CartService.Increase)
}

// DecreaseCartItem 数量减一，减到 0 时移除
func (h *Handler) DecreaseCartItem(c *gin.Context) {
	h.mutateCartLine(c, h.CartService.Decrease)
}

// RemoveCartItem 移除购物车商品
func (h *Handler) RemoveCartItem(c *gin.Context) {
	h.mutateCartLine(c, h.CartService.Remove)
}

type cartLineMutation func(ctx context.Context, userID, productID uint) (service.CartState, error)

func (h *Handler) mutateCartLine(c *gin.Context, mutate cartLineMutation) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	state, err := mutate(c.Request.Context(), uid, req.ProductID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, toCartResponse(state))
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(c.Request.Context(), uid); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, toCartResponse(service.CartState{}))
}
