package provider

import (
	"github.com/dentora-store/internal/cache"
	"github.com/dentora-store/internal/config"
	"github.com/dentora-store/internal/logger"
	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/queue"
	"github.com/dentora-store/internal/repository"
	"github.com/dentora-store/internal/service"
)

// Container wires repositories and services once so nothing below it
// reaches for global handles.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	OrderRepo    repository.OrderRepository
	ProductRepo  repository.ProductRepository
	BundleRepo   repository.BundleRepository
	CategoryRepo repository.CategoryRepository
	CartRepo     repository.CartRepository
	CartStore    repository.CartStore

	// Services
	CartService        *service.CartService
	OrderService       *service.OrderService
	PaymentService     *service.PaymentService
	FulfillmentService *service.FulfillmentService
	ProductService     *service.ProductService
	BundleService      *service.BundleService
	CategoryService    *service.CategoryService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.BundleRepo = repository.NewBundleRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.CartRepo = repository.NewCartRepository(db)

	if cache.Enabled() {
		c.CartStore = repository.NewRedisCartStore(cache.Client(), cache.Prefix(), 0)
	} else {
		logger.Warnw("provider_cart_store_memory_fallback", "reason", "redis_disabled")
		c.CartStore = repository.NewMemoryCartStore()
	}
}

func (c *Container) initServices() {
	currency := c.Config.Order.Currency

	c.CartService = service.NewCartService(c.CartStore, c.CartRepo, c.ProductRepo, c.BundleRepo, currency)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.BundleRepo, c.CartService, c.QueueClient)
	c.PaymentService = service.NewPaymentService(c.OrderRepo, c.QueueClient)
	c.FulfillmentService = service.NewFulfillmentService(c.OrderRepo, c.QueueClient)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo)
	c.BundleService = service.NewBundleService(c.BundleRepo, c.ProductRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
}
