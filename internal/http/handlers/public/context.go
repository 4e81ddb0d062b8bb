package public

import (
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	handlershared "github.com/wahhajahmed/KarachiSofas/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

// getGuestToken 优先读取中间件写入的令牌，其次读取请求头
func getGuestToken(c *gin.Context) string {
	if token := strings.TrimSpace(c.GetString("guest_token")); token != "" {
		return token
	}
	return strings.TrimSpace(c.GetHeader(constants.HeaderGuestToken))
}
