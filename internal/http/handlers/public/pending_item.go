package public

import (
	"github.com/wahhajahmed/KarachiSofas/internal/http/response"

	"github.com/gin-gonic/gin"
)

// PendingItemRequest 游客加购请求
type PendingItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// HoldPendingItem 游客点击加购时暂存商品，登录后自动加入购物车
func (h *Handler) HoldPendingItem(c *gin.Context) {
	var req PendingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	item, err := h.PendingItemRelay.Hold(getGuestToken(c), req.ProductID)
	if err != nil {
		respondWithMappedError(c, err, pendingItemErrorRules, response.CodeInternal, "error.pending_item_failed")
		return
	}
	response.Success(c, gin.H{
		"pending_item":   item,
		"login_required": true,
	})
}

// GetPendingItem 查看游客暂存的商品
func (h *Handler) GetPendingItem(c *gin.Context) {
	item, err := h.PendingItemRelay.Peek(getGuestToken(c))
	if err != nil {
		respondError(c, response.CodeInternal, "error.pending_item_failed", err)
		return
	}
	response.Success(c, gin.H{"pending_item": item})
}
