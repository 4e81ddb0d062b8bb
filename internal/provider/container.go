package provider

import (
	"fmt"

	"github.com/wahhajahmed/KarachiSofas/internal/authz"
	"github.com/wahhajahmed/KarachiSofas/internal/cache"
	"github.com/wahhajahmed/KarachiSofas/internal/config"
	"github.com/wahhajahmed/KarachiSofas/internal/logger"
	"github.com/wahhajahmed/KarachiSofas/internal/models"
	"github.com/wahhajahmed/KarachiSofas/internal/queue"
	"github.com/wahhajahmed/KarachiSofas/internal/repository"
	"github.com/wahhajahmed/KarachiSofas/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	DB          *gorm.DB
	QueueClient *queue.Client

	// Repositories
	AdminRepo          repository.AdminRepository
	UserRepo           repository.UserRepository
	CategoryRepo       repository.CategoryRepository
	ProductRepo        repository.ProductRepository
	CartRepo           repository.CartRepository
	PendingIntentRepo  repository.PendingIntentRepository
	DeliveryChargeRepo repository.DeliveryChargeRepository
	OrderRepo          repository.OrderRepository

	// Services
	AuthzService          *authz.Service
	AuthService           *service.AuthService
	AdminRequestService   *service.AdminRequestService
	UserAuthService       *service.UserAuthService
	EmailService          *service.EmailService
	UploadService         *service.UploadService
	CategoryService       *service.CategoryService
	ProductService        *service.ProductService
	CartService           *service.CartService
	PendingItemRelay      *service.PendingItemRelay
	DeliveryChargeService *service.DeliveryChargeService
	CheckoutService       *service.CheckoutService
	OrderService          *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient, _ = queue.NewClient(nil)
	}

	c, err := Build(cfg, models.DB, queueClient)
	if err != nil {
		logger.Errorw("provider_init_services_failed", "error", err)
		panic(err)
	}
	return c
}

// Build 使用指定数据库与队列客户端装配容器
func Build(cfg *config.Config, db *gorm.DB, queueClient *queue.Client) (*Container, error) {
	c := &Container{
		Config:      cfg,
		DB:          db,
		QueueClient: queueClient,
	}
	c.initRepositories(db)
	if err := c.initServices(db); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Container) initRepositories(db *gorm.DB) {
	c.AdminRepo = repository.NewAdminRepository(db)
	c.UserRepo = repository.NewUserRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.PendingIntentRepo = repository.NewPendingIntentRepository(db)
	c.DeliveryChargeRepo = repository.NewDeliveryChargeRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices(db *gorm.DB) error {
	authzService, err := authz.NewService(db)
	if err != nil {
		return fmt.Errorf("init authz: %w", err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		return fmt.Errorf("bootstrap builtin roles: %w", err)
	}

	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.AdminRequestService = service.NewAdminRequestService(c.Config, c.AdminRepo, c.AuthService, c.AuthzService, c.QueueClient, authz.RoleStaff)
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.UploadService = service.NewUploadService(c.Config)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)

	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, service.NewCartProjection(c.Config.Cart))
	c.PendingItemRelay = service.NewPendingItemRelay(c.PendingIntentRepo, c.ProductRepo, c.CartService)
	c.DeliveryChargeService = service.NewDeliveryChargeService(c.DeliveryChargeRepo)
	c.CheckoutService = service.NewCheckoutService(c.Config, c.CartRepo, c.OrderRepo, c.CartService, c.DeliveryChargeService, c.QueueClient)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.QueueClient)
	return nil
}
