package router

import (
	"sort"
	"strings"

	"github.com/wahhajahmed/KarachiSofas/internal/authz"
	"github.com/wahhajahmed/KarachiSofas/internal/cache"
	"github.com/wahhajahmed/KarachiSofas/internal/config"
	adminhandlers "github.com/wahhajahmed/KarachiSofas/internal/http/handlers/admin"
	publichandlers "github.com/wahhajahmed/KarachiSofas/internal/http/handlers/public"
	"github.com/wahhajahmed/KarachiSofas/internal/http/response"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        cache.Key("rate:login"),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}
	adminLoginRule := RateLimitRule{
		Prefix:        cache.Key("rate:admin_login"),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.login_too_many",
	}
	checkoutRule := RateLimitRule{
		Prefix:        cache.Key("rate:checkout"),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.CheckoutRateLimit.BlockSeconds,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（上传的图片）
	r.Static(uploadPublicPrefix(cfg.Upload), uploadDir(cfg.Upload))

	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/areas", publicHandler.ListAreas)
			public.GET("/areas/blocks", publicHandler.ListAreaBlocks)
			public.GET("/delivery-charges/resolve", publicHandler.ResolveDelivery)
			public.GET("/categories", publicHandler.ListCategories)
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/bank-details", publicHandler.GetBankDetails)
			public.POST("/checkout/validate", publicHandler.ValidateCheckout)
		}

		// 游客接口：未登录时暂存加购意图
		guest := apiV1.Group("/guest")
		guest.Use(GuestTokenMiddleware())
		{
			guest.POST("/pending-item", publicHandler.HoldPendingItem)
			guest.GET("/pending-item", publicHandler.GetPendingItem)
		}

		// 顾客认证接口
		auth := apiV1.Group("/auth")
		auth.Use(GuestTokenMiddleware())
		{
			auth.POST("/register", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.UserLogin)
		}

		// 顾客接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetCurrentUser)
			user.PUT("/me/password", publicHandler.ChangeUserPassword)
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.POST("/cart/items/increase", publicHandler.IncreaseCartItem)
			user.POST("/cart/items/decrease", publicHandler.DecreaseCartItem)
			user.POST("/cart/items/remove", publicHandler.RemoveCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)
			user.GET("/checkout/quote", publicHandler.QuoteCheckout)
			user.POST("/checkout", RateLimitMiddleware(redisClient, checkoutRule, KeyByUser), publicHandler.SubmitCheckout)
			user.GET("/orders", publicHandler.ListMyOrders)
			user.GET("/orders/:id", publicHandler.GetMyOrder)
		}

		// 管理端
		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIPAndJSONField("email")), adminHandler.AdminLogin)
			admin.POST("/signup", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIPAndJSONField("email")), adminHandler.AdminSignup)

			authed := admin.Group("")
			authed.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authed.GET("/me", adminHandler.GetAdminMe)
				authed.PUT("/me/password", adminHandler.UpdateAdminPassword)
			}

			// 管理员审批仅超级管理员可用
			super := authed.Group("")
			super.Use(SuperAdminOnlyMiddleware())
			{
				super.GET("/admin-requests", adminHandler.ListAdminRequests)
				super.POST("/admin-requests/:id/approve", adminHandler.ApproveAdminRequest)
				super.POST("/admin-requests/:id/reject", adminHandler.RejectAdminRequest)
				super.PUT("/admins/:id/role", adminHandler.SetAdminRole)
				super.GET("/permissions", func(ctx *gin.Context) {
					response.Success(ctx, buildAdminPermissionCatalog(r))
				})
			}

			authorized := authed.Group("")
			authorized.Use(AdminRBACMiddleware(c.AuthzService))
			{
				authorized.GET("/orders", adminHandler.GetAdminOrders)
				authorized.GET("/orders/:id", adminHandler.GetAdminOrder)
				authorized.PATCH("/orders/:id/status", adminHandler.UpdateAdminOrderStatus)

				authorized.GET("/products", adminHandler.GetAdminProducts)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.GET("/products/:id", adminHandler.GetAdminProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				authorized.GET("/categories", adminHandler.GetAdminCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.GET("/categories/:id", adminHandler.GetAdminCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				authorized.GET("/delivery-charges", adminHandler.GetDeliveryCharges)
				authorized.POST("/delivery-charges", adminHandler.CreateDeliveryCharge)
				authorized.GET("/delivery-charges/:id", adminHandler.GetDeliveryCharge)
				authorized.PUT("/delivery-charges/:id", adminHandler.UpdateDeliveryCharge)
				authorized.DELETE("/delivery-charges/:id", adminHandler.DeleteDeliveryCharge)

				authorized.POST("/upload", adminHandler.UploadFile)
			}
		}
	}

	r.GET("/health", HealthHandler(c))

	return r
}

func uploadDir(cfg config.UploadConfig) string {
	if dir := strings.TrimSpace(cfg.Dir); dir != "" {
		return dir
	}
	return "./uploads"
}

func uploadPublicPrefix(cfg config.UploadConfig) string {
	prefix := strings.Trim(strings.TrimSpace(cfg.PublicPrefix), "/")
	if prefix == "" {
		return "/uploads"
	}
	return "/" + prefix
}

type adminPermissionCatalogItem struct {
	Module     string `json:"module"`
	Method     string `json:"method"`
	Object     string `json:"object"`
	Permission string `json:"permission"`
}

func buildAdminPermissionCatalog(engine *gin.Engine) []adminPermissionCatalogItem {
	if engine == nil {
		return []adminPermissionCatalogItem{}
	}

	routes := engine.Routes()
	seen := make(map[string]struct{}, len(routes))
	items := make([]adminPermissionCatalogItem, 0, len(routes))

	for _, item := range routes {
		method := strings.ToUpper(strings.TrimSpace(item.Method))
		if method == "" || method == "OPTIONS" || method == "HEAD" {
			continue
		}
		if !strings.HasPrefix(item.Path, "/api/v1/admin/") {
			continue
		}
		if item.Path == "/api/v1/admin/login" || item.Path == "/api/v1/admin/signup" {
			continue
		}
		object := authz.NormalizeObject(item.Path)
		permission := method + ":" + object
		if _, exists := seen[permission]; exists {
			continue
		}
		seen[permission] = struct{}{}
		items = append(items, adminPermissionCatalogItem{
			Module:     deriveAdminPermissionModule(object),
			Method:     method,
			Object:     object,
			Permission: permission,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Module == items[j].Module {
			if items[i].Object == items[j].Object {
				return items[i].Method < items[j].Method
			}
			return items[i].Object < items[j].Object
		}
		return items[i].Module < items[j].Module
	})

	return items
}

func deriveAdminPermissionModule(object string) string {
	normalized := strings.TrimPrefix(strings.TrimSpace(object), "/")
	if normalized == "" {
		return "system"
	}
	segments := strings.Split(normalized, "/")
	if len(segments) <= 1 {
		return segments[0]
	}
	if segments[0] != "admin" {
		return segments[0]
	}
	if segments[1] == "authz" {
		return "authz"
	}
	return segments[1]
}
