package provider

import (
	"github.com/bellu-mart/internal/cache"
	"github.com/bellu-mart/internal/config"
	"github.com/bellu-mart/internal/logger"
	"github.com/bellu-mart/internal/models"
	"github.com/bellu-mart/internal/queue"
	"github.com/bellu-mart/internal/repository"
	"github.com/bellu-mart/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	ConfigRepo  repository.ConfigRepository

	// Services
	ProductService *service.ProductService
	CartService    *service.CartService
	OrderService   *service.OrderService
	ConfigService  *service.ConfigService
	PincodeService *service.PincodeService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}
	queue.InitClient(cfg.Queue)

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ConfigRepo = repository.NewConfigRepository(db)
}

func (c *Container) initServices() {
	c.ConfigService = service.NewConfigService(c.ConfigRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.ConfigService)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartService, c.Config.Order, c.Config.Delivery)
	c.PincodeService = service.NewPincodeService(c.ConfigService, c.Config.Delivery)
}
