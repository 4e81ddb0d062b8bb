package admin

import (
	handlershared "github.com/wahhajahmed/KarachiSofas/internal/http/handlers/shared"
	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type mappedHandlerError = handlershared.MappedError

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondErrorWithMsg(c, code, msg, err)
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	handlershared.RespondMappedError(c, err, rules, fallbackCode, fallbackKey)
}

var adminAuthErrorRules = []mappedHandlerError{
	{Target: service.ErrInvalidCredentials, Code: response.CodeUnauthorized, Key: "error.invalid_credentials"},
	{Target: service.ErrAdminPendingApproval, Code: response.CodeForbidden, Key: "error.admin_pending_approval"},
	{Target: service.ErrAdminRejected, Code: response.CodeForbidden, Key: "error.admin_request_rejected"},
	{Target: service.ErrInvalidPassword, Code: response.CodeBadRequest, Key: "error.password_invalid"},
	{Target: service.ErrNotFound, Code: response.CodeNotFound, Key: "error.not_found"},
}

var adminRequestErrorRules = []mappedHandlerError{
	{Target: service.ErrInvalidName, Code: response.CodeBadRequest, Key: "error.name_invalid"},
	{Target: service.ErrInvalidEmail, Code: response.CodeBadRequest, Key: "error.email_invalid"},
	{Target: service.ErrInvalidPhone, Code: response.CodeBadRequest, Key: "error.phone_invalid"},
	{Target: service.ErrEmailExists, Code: response.CodeConflict, Key: "error.email_exists"},
	{Target: service.ErrAdminRequestPending, Code: response.CodeConflict, Key: "error.admin_request_pending"},
	{Target: service.ErrAdminRequestNotFound, Code: response.CodeNotFound, Key: "error.admin_request_not_found"},
	{Target: service.ErrAdminRequestReviewed, Code: response.CodeConflict, Key: "error.admin_request_reviewed"},
}

var productErrorRules = []mappedHandlerError{
	{Target: service.ErrProductNotFound, Code: response.CodeNotFound, Key: "error.product_not_found"},
	{Target: service.ErrProductInvalid, Code: response.CodeBadRequest, Key: "error.product_invalid"},
	{Target: service.ErrCategoryNotFound, Code: response.CodeBadRequest, Key: "error.category_not_found"},
}

var categoryErrorRules = []mappedHandlerError{
	{Target: service.ErrCategoryNotFound, Code: response.CodeNotFound, Key: "error.category_not_found"},
	{Target: service.ErrCategoryInvalid, Code: response.CodeBadRequest, Key: "error.category_invalid"},
	{Target: service.ErrCategoryInUse, Code: response.CodeConflict, Key: "error.category_in_use"},
	{Target: service.ErrSlugExists, Code: response.CodeConflict, Key: "error.slug_exists"},
}

var deliveryChargeErrorRules = []mappedHandlerError{
	{Target: service.ErrDeliveryChargeExists, Code: response.CodeConflict, Key: "error.delivery_charge_exists"},
	{Target: service.ErrDeliveryChargeInvalid, Code: response.CodeBadRequest, Key: "error.delivery_charge_invalid"},
	{Target: service.ErrDeliveryChargeNotFound, Code: response.CodeNotFound, Key: "error.delivery_charge_missing"},
}

var orderErrorRules = []mappedHandlerError{
	{Target: service.ErrOrderNotFound, Code: response.CodeNotFound, Key: "error.order_not_found"},
	{Target: service.ErrOrderStatusInvalid, Code: response.CodeBadRequest, Key: "error.order_status_invalid"},
	{Target: service.ErrOrderStatusTerminal, Code: response.CodeConflict, Key: "error.order_status_terminal"},
}

var uploadErrorRules = []mappedHandlerError{
	{Target: service.ErrUploadTooLarge, Code: response.CodeBadRequest, Key: "error.upload_too_large"},
	{Target: service.ErrUploadTypeInvalid, Code: response.CodeBadRequest, Key: "error.upload_type_invalid"},
}
