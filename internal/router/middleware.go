package router

import (
	"strconv"
	"strings"
	"time"

	"github.com/wahhajahmed/KarachiSofas/internal/authz"
	"github.com/wahhajahmed/KarachiSofas/internal/cache"
	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/constants"
	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/i18n"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	requestIDKey           = "request_id"
	requestIDHeader        = "X-Request-ID"
	guestTokenHeader       = constants.HeaderGuestToken
	guestTokenContextKey   = "guest_token"
	adminIsSuperContextKey = "admin_is_super"
)

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{"Content-Type", "Authorization", "X-Requested-With", guestTokenHeader}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials); allowed != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowed)
			if allowed != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		c.Writer.Header().Set("Access-Control-Expose-Headers", requestIDHeader+", "+guestTokenHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志
func LoggerMiddleware(l *zap.Logger) gin.HandlerFunc {
	if l == nil {
		l = zap.L()
	}
	sugar := l.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	if value, ok := c.Get(requestIDKey); ok {
		if requestID, ok := value.(string); ok {
			return requestID
		}
	}
	return ""
}

// GuestTokenMiddleware 读取游客令牌，缺失时签发新令牌并通过响应头返回
func GuestTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimSpace(c.GetHeader(guestTokenHeader))
		if token == "" {
			token = service.NewGuestToken()
		}
		c.Set(guestTokenContextKey, token)
		c.Writer.Header().Set(guestTokenHeader, token)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, key string) {
	response.Unauthorized(c, i18n.T(i18n.ResolveLocale(c), key))
	c.Abort()
}

func bearerToken(c *gin.Context) (string, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", "error.auth_header_missing"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", "error.auth_header_invalid"
	}
	return strings.TrimSpace(parts[1]), ""
}

func parseHS256(tokenString, secretKey string, claims jwt.Claims) bool {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})
	return err == nil && token.Valid
}

// JWTAuthMiddleware 管理员 JWT 鉴权，只放行已审批的账号
func JWTAuthMiddleware(secretKey string, adminRepo repository.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secretKey == "" {
			abortUnauthorized(c, "error.jwt_secret_missing")
			return
		}
		if adminRepo == nil {
			abortUnauthorized(c, "error.token_invalid")
			return
		}
		tokenString, failKey := bearerToken(c)
		if failKey != "" {
			abortUnauthorized(c, failKey)
			return
		}
		claims := &service.JWTClaims{}
		if !parseHS256(tokenString, secretKey, claims) || claims.AdminID == 0 {
			abortUnauthorized(c, "error.token_invalid")
			return
		}

		state, hit, err := cache.GetAdminAuthState(c.Request.Context(), claims.AdminID)
		if err != nil || !hit || state == nil {
			admin, err := adminRepo.GetByID(claims.AdminID)
			if err != nil || admin == nil {
				abortUnauthorized(c, "error.token_invalid")
				return
			}
			state = cache.BuildAdminAuthState(admin)
			_ = cache.SetAdminAuthState(c.Request.Context(), state)
		}
		if !state.Approved() {
			abortUnauthorized(c, "error.admin_pending_approval")
			return
		}
		if !state.Admits(claims.TokenVersion, issuedAtUnix(claims.IssuedAt)) {
			abortUnauthorized(c, "error.token_revoked")
			return
		}

		setAdminContext(c, claims, state.IsSuper)
		c.Next()
	}
}

func setAdminContext(c *gin.Context, claims *service.JWTClaims, isSuper bool) {
	c.Set("admin_id", claims.AdminID)
	c.Set("admin_email", claims.Email)
	c.Set(adminIsSuperContextKey, isSuper)
}

func isSuperAdmin(c *gin.Context) bool {
	value, ok := c.Get(adminIsSuperContextKey)
	if !ok {
		return false
	}
	isSuper, _ := value.(bool)
	return isSuper
}

// SuperAdminOnlyMiddleware 仅超级管理员可访问（审批管理员申请）
func SuperAdminOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isSuperAdmin(c) {
			response.Forbidden(c, i18n.T(i18n.ResolveLocale(c), "error.forbidden"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRBACMiddleware 管理端 RBAC 鉴权，超级管理员直接放行
func AdminRBACMiddleware(authzService *authz.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authzService == nil {
			logger.Errorw("admin_rbac_service_unavailable")
			abortUnauthorized(c, "error.unauthorized")
			return
		}
		if isSuperAdmin(c) {
			c.Next()
			return
		}

		var adminID uint
		if raw, ok := c.Get("admin_id"); ok {
			adminID, _ = raw.(uint)
		}
		if adminID == 0 {
			abortUnauthorized(c, "error.unauthorized")
			return
		}

		resource := c.FullPath()
		if strings.TrimSpace(resource) == "" {
			resource = c.Request.URL.Path
		}
		allowed, err := authzService.EnforceAdmin(adminID, resource, c.Request.Method)
		if err != nil {
			logger.Errorw("admin_rbac_enforce_failed",
				"admin_id", adminID,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err,
			)
			abortUnauthorized(c, "error.unauthorized")
			return
		}
		if !allowed {
			logger.Warnw("admin_rbac_permission_denied",
				"admin_id", adminID,
				"method", c.Request.Method,
				"resource", authz.NormalizeObject(resource),
			)
			response.Forbidden(c, i18n.T(i18n.ResolveLocale(c), "error.forbidden"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserJWTAuthMiddleware 顾客 JWT 鉴权
func UserJWTAuthMiddleware(secretKey string, userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secretKey == "" {
			abortUnauthorized(c, "error.jwt_secret_missing")
			return
		}
		if userRepo == nil {
			abortUnauthorized(c, "error.token_invalid")
			return
		}
		tokenString, failKey := bearerToken(c)
		if failKey != "" {
			abortUnauthorized(c, failKey)
			return
		}
		claims := &service.UserJWTClaims{}
		if !parseHS256(tokenString, secretKey, claims) || claims.UserID == 0 {
			abortUnauthorized(c, "error.token_invalid")
			return
		}

		state, hit, err := cache.GetUserAuthState(c.Request.Context(), claims.UserID)
		if err != nil || !hit || state == nil {
			user, err := userRepo.GetByID(claims.UserID)
			if err != nil || user == nil {
				abortUnauthorized(c, "error.token_invalid")
				return
			}
			state = cache.BuildUserAuthState(user)
			_ = cache.SetUserAuthState(c.Request.Context(), state)
		}
		if !state.Active() {
			abortUnauthorized(c, "error.user_disabled")
			return
		}
		if !state.Admits(claims.TokenVersion, issuedAtUnix(claims.IssuedAt)) {
			abortUnauthorized(c, "error.token_revoked")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Next()
	}
}

func issuedAtUnix(issuedAt *jwt.NumericDate) int64 {
	if issuedAt == nil {
		return 0
	}
	return issuedAt.Time.Unix()
}
