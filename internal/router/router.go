package router

import (
	"fmt"
	"strings"

	"github.com/straatfanaat/shop/internal/cache"
	"github.com/straatfanaat/shop/internal/config"
	adminhandlers "github.com/straatfanaat/shop/internal/http/handlers/admin"
	publichandlers "github.com/straatfanaat/shop/internal/http/handlers/public"
	"github.com/straatfanaat/shop/internal/logger"
	"github.com/straatfanaat/shop/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP route tree.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "sf"
	}
	redisClient := cache.Client()
	adminLoginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:admin_login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// storefront
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/featured", publicHandler.GetFeaturedProducts)
			public.GET("/products/:slug", publicHandler.GetProduct)
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/settings", publicHandler.GetPublicSettings)
			public.POST("/newsletter/subscribe", publicHandler.SubscribeNewsletter)
			public.POST("/newsletter/unsubscribe", publicHandler.UnsubscribeNewsletter)
			public.POST("/discount/validate", publicHandler.ValidateDiscount)
			public.POST("/stylist/advice", publicHandler.GetStylingAdvice)
		}

		// checkout
		checkout := apiV1.Group("/checkout")
		{
			checkout.POST("/quote", publicHandler.QuoteCart)
			checkout.POST("/validate", publicHandler.ValidateCheckoutStep)
			checkout.POST("", publicHandler.SubmitCheckout)
		}

		// back office
		admin := apiV1.Group("/admin")
		{
			admin.POST("/login", RateLimitMiddleware(redisClient, adminLoginRule, KeyByIP), adminHandler.Login)

			authorized := admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.AdminRepo))
			{
				authorized.PUT("/password", adminHandler.UpdatePassword)

				authorized.GET("/dashboard/stats", adminHandler.GetDashboardStats)

				authorized.GET("/orders", adminHandler.GetOrders)
				authorized.GET("/orders/:id", adminHandler.GetOrder)
				authorized.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)
				authorized.PATCH("/orders/:id/fulfillment", adminHandler.UpdateOrderFulfillment)
				authorized.PATCH("/orders/:id/tracking", adminHandler.UpdateOrderTracking)
				authorized.PATCH("/orders/:id/notes", adminHandler.UpdateOrderNotes)

				authorized.GET("/payments", adminHandler.GetPayments)
				authorized.POST("/payments/:id/refund", adminHandler.RefundPayment)
				authorized.POST("/payments/:id/fail", adminHandler.MarkPaymentFailed)

				authorized.GET("/products", adminHandler.GetProducts)
				authorized.GET("/products/:id", adminHandler.GetProduct)
				authorized.POST("/products", adminHandler.CreateProduct)
				authorized.PUT("/products/:id", adminHandler.UpdateProduct)
				authorized.DELETE("/products/:id", adminHandler.DeleteProduct)

				authorized.GET("/categories", adminHandler.GetCategories)
				authorized.POST("/categories", adminHandler.CreateCategory)
				authorized.PUT("/categories/:id", adminHandler.UpdateCategory)
				authorized.DELETE("/categories/:id", adminHandler.DeleteCategory)

				authorized.GET("/customers", adminHandler.GetCustomers)
				authorized.GET("/customers/:id", adminHandler.GetCustomer)
				authorized.PATCH("/customers/:id/marketing", adminHandler.UpdateCustomerMarketing)

				authorized.GET("/settings", adminHandler.GetSettings)
				authorized.GET("/settings/:key", adminHandler.GetSetting)
				authorized.PUT("/settings/:key", adminHandler.UpdateSetting)

				authorized.GET("/discount-codes", adminHandler.GetDiscountCodes)
				authorized.POST("/discount-codes", adminHandler.CreateDiscountCode)
				authorized.PUT("/discount-codes/:id", adminHandler.UpdateDiscountCode)
				authorized.DELETE("/discount-codes/:id", adminHandler.DeleteDiscountCode)

				authorized.GET("/newsletter/subscribers", adminHandler.GetNewsletterSubscribers)
				authorized.DELETE("/newsletter/subscribers/:id", adminHandler.DeleteNewsletterSubscriber)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
