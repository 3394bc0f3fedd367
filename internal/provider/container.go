package provider

import (
	"time"

	"github.com/straatfanaat/shop/internal/cache"
	"github.com/straatfanaat/shop/internal/config"
	"github.com/straatfanaat/shop/internal/logger"
	"github.com/straatfanaat/shop/internal/models"
	"github.com/straatfanaat/shop/internal/queue"
	"github.com/straatfanaat/shop/internal/repository"
	"github.com/straatfanaat/shop/internal/service"
	"github.com/straatfanaat/shop/internal/stylist"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo        repository.AdminRepository
	CustomerRepo     repository.CustomerRepository
	AddressRepo      repository.AddressRepository
	OrderRepo        repository.OrderRepository
	PaymentRepo      repository.PaymentRepository
	ProductRepo      repository.ProductRepository
	CategoryRepo     repository.CategoryRepository
	SettingRepo      repository.SettingRepository
	DiscountCodeRepo repository.DiscountCodeRepository
	NewsletterRepo   repository.NewsletterRepository
	DashboardRepo    repository.DashboardRepository

	// Services
	AuthService       *service.AuthService
	CheckoutService   *service.CheckoutService
	OrderService      *service.OrderService
	PaymentService    *service.PaymentService
	CatalogService    *service.CatalogService
	CustomerService   *service.CustomerService
	SettingService    *service.SettingService
	DiscountService   *service.DiscountService
	NewsletterService *service.NewsletterService
	DashboardService  *service.DashboardService
	EmailService      *service.EmailService

	StylistClient *stylist.Client
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
	c.AdminRepo = repository.NewAdminRepository(db)
	c.CustomerRepo = repository.NewCustomerRepository(db)
	c.AddressRepo = repository.NewAddressRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.PaymentRepo = repository.NewPaymentRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.DiscountCodeRepo = repository.NewDiscountCodeRepository(db)
	c.NewsletterRepo = repository.NewNewsletterRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	c.EmailService = service.NewEmailService(&c.Config.Email)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.CategoryRepo)
	c.DiscountService = service.NewDiscountService(c.DiscountCodeRepo)
	c.NewsletterService = service.NewNewsletterService(c.NewsletterRepo, c.QueueClient)
	c.CustomerService = service.NewCustomerService(c.CustomerRepo, c.OrderRepo, c.AddressRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.Config.Checkout.AdminOrderListMaxLimit)
	c.PaymentService = service.NewPaymentService(models.DB, c.PaymentRepo, c.OrderRepo)
	c.CheckoutService = service.NewCheckoutService(
		c.CustomerRepo,
		c.AddressRepo,
		c.OrderRepo,
		c.PaymentRepo,
		c.ProductRepo,
		c.QueueClient,
		c.Config.Checkout.FreeShippingThreshold,
		c.Config.Checkout.ShippingCost,
		time.Duration(c.Config.Checkout.GatewayDelayMS)*time.Millisecond,
	)
	c.DashboardService = service.NewDashboardService(c.DashboardRepo, c.OrderRepo, c.Config.Checkout.RecentOrdersLimit)
	c.StylistClient = stylist.New(&c.Config.Stylist)
}
