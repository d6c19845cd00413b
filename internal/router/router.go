package router

import (
	"fmt"
	"strings"

	"github.com/dentora-store/internal/cache"
	"github.com/dentora-store/internal/config"
	adminhandlers "github.com/dentora-store/internal/http/handlers/admin"
	publichandlers "github.com/dentora-store/internal/http/handlers/public"
	"github.com/dentora-store/internal/logger"
	"github.com/dentora-store/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires middleware and routes.
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
		redisPrefix = "dt"
	}
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxAttempts,
		MessageKey:    "error.rate_limited",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	secret := cfg.Auth.Secret

	apiV1 := r.Group("/api/v1")
	{
		// Storefront: browsable anonymously, cart keyed by session.
		public := apiV1.Group("/public")
		public.Use(OptionalAuthMiddleware(secret))
		{
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/bundles", publicHandler.GetBundles)
			public.GET("/bundles/:id", publicHandler.GetBundle)

			public.GET("/cart", publicHandler.GetCart)
			public.POST("/cart/items", publicHandler.AddCartItem)
			public.PUT("/cart/items", publicHandler.UpdateCartItem)
			public.DELETE("/cart/items", publicHandler.RemoveCartItem)
			public.DELETE("/cart", publicHandler.ClearCart)
		}

		// Customer: requires an externally issued token.
		user := apiV1.Group("/user")
		user.Use(AuthMiddleware(secret))
		{
			user.POST("/orders",
				RateLimitMiddleware(cache.Client(), checkoutRule, KeyBySubjectOrIP),
				publicHandler.Checkout,
			)
			user.GET("/orders", publicHandler.ListMyOrders)
			user.GET("/orders/:id", publicHandler.GetMyOrder)
			user.GET("/orders/by-order-no/:order_no", publicHandler.GetMyOrderByOrderNo)
			user.POST("/orders/:id/cancel", publicHandler.CancelMyOrder)
		}

		// Back office: admin role required on top of auth.
		admin := apiV1.Group("/admin")
		admin.Use(AuthMiddleware(secret), RequireAdminMiddleware())
		{
			admin.GET("/orders", adminHandler.AdminListOrders)
			admin.GET("/orders/:id", adminHandler.AdminGetOrder)
			admin.PUT("/orders/:id/payment-status", adminHandler.AdminSetPaymentStatus)
			admin.PUT("/orders/:id/status", adminHandler.AdminSetOrderStatus)

			admin.GET("/categories", adminHandler.AdminListCategories)
			admin.POST("/categories", adminHandler.AdminCreateCategory)
			admin.PUT("/categories/:id", adminHandler.AdminUpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.AdminDeleteCategory)

			admin.GET("/products", adminHandler.AdminListProducts)
			admin.GET("/products/:id", adminHandler.AdminGetProduct)
			admin.POST("/products", adminHandler.AdminCreateProduct)
			admin.PUT("/products/:id", adminHandler.AdminUpdateProduct)
			admin.DELETE("/products/:id", adminHandler.AdminDeleteProduct)

			admin.GET("/bundles", adminHandler.AdminListBundles)
			admin.GET("/bundles/:id", adminHandler.AdminGetBundle)
			admin.POST("/bundles", adminHandler.AdminCreateBundle)
			admin.PUT("/bundles/:id", adminHandler.AdminUpdateBundle)
			admin.DELETE("/bundles/:id", adminHandler.AdminDeleteBundle)
		}
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
