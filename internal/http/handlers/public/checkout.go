package public

import (
	"errors"

	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/i18n"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"github.com/gin-gonic/gin"
)

// respondCheckoutError 表单错误带字段返回；未知错误原文拼入提示
func respondCheckoutError(c *gin.Context, err error) {
	var validationErr *service.CheckoutValidationError
	if errors.As(err, &validationErr) {
		response.ErrorWithData(c, response.CodeBadRequest, validationErr.Message, gin.H{
			"field": validationErr.Field,
		})
		return
	}
	for _, rule := range checkoutErrorRules {
		if errors.Is(err, rule.Target) {
			respondError(c, rule.Code, rule.Key, nil)
			return
		}
	}
	msg := i18n.Sprintf(i18n.ResolveLocale(c), "error.checkout_failed", err.Error())
	respondErrorWithMsg(c, response.CodeInternal, msg, err)
}

// ValidateCheckout 仅校验结账表单
func (h *Handler) ValidateCheckout(c *gin.Context) {
	var form service.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if err := h.CheckoutService.Validate(form); err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, gin.H{"valid": true})
}

// QuoteCheckout 计算小计、运费与应付总额
func (h *Handler) QuoteCheckout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	quote, err := h.CheckoutService.Quote(uid, c.Query("area"), c.Query("block"))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, quote)
}

// GetBankDetails 银行转账收款信息
func (h *Handler) GetBankDetails(c *gin.Context) {
	response.Success(c, h.CheckoutService.BankDetails())
}

// SubmitCheckout 提交订单
func (h *Handler) SubmitCheckout(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	var form service.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	result, err := h.CheckoutService.Checkout(c.Request.Context(), uid, form)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), "success.order_placed"), result)
}
