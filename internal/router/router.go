package router

import (
	"fmt"
	"strings"

	"github.com/bellu-mart/internal/cache"
	"github.com/bellu-mart/internal/config"
	adminhandlers "github.com/bellu-mart/internal/http/handlers/admin"
	publichandlers "github.com/bellu-mart/internal/http/handlers/public"
	"github.com/bellu-mart/internal/http/response"
	"github.com/bellu-mart/internal/logger"
	"github.com/bellu-mart/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.NewHandler(c.ProductService, c.CartService, c.OrderService, c.PincodeService)
	adminHandler := adminhandlers.NewHandler(c.ProductService, c.OrderService, c.ConfigService)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "bellu"
	}
	redisClient := cache.Client()
	checkoutRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:checkout", redisPrefix),
		WindowSeconds: cfg.Security.CheckoutRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CheckoutRateLimit.MaxRequests,
	}
	pincodeRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:pincode", redisPrefix),
		WindowSeconds: cfg.Security.PincodeRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.PincodeRateLimit.MaxRequests,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/products", publicHandler.ListProducts)
		api.GET("/products/:id", publicHandler.GetProduct)
		api.POST("/products", adminHandler.CreateProduct)
		api.PUT("/products/:id", adminHandler.UpdateProduct)
		api.PATCH("/products/:id/stock", adminHandler.UpdateProductStock)
		api.DELETE("/products/:id", adminHandler.DeleteProduct)
		api.GET("/categories", publicHandler.ListCategories)

		api.GET("/cart/:session_id", publicHandler.GetCart)
		api.DELETE("/cart/:session_id", publicHandler.ClearCart)
		api.POST("/cart", publicHandler.AddCartItem)
		api.PATCH("/cart/:session_id/:product_id", publicHandler.UpdateCartItem)
		api.DELETE("/cart/:session_id/:product_id", publicHandler.RemoveCartItem)

		api.POST("/orders",
			RateLimitMiddleware(redisClient, checkoutRule, KeyByIPAndJSONField("session_id")),
			publicHandler.CreateOrder)
		// 路径参数为会话 ID；与下方状态路由共用 :id 段
		api.GET("/orders/:id", publicHandler.ListOrders)
		api.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)

		api.POST("/pincode/check",
			RateLimitMiddleware(redisClient, pincodeRule, KeyByIP),
			publicHandler.CheckPincode)

		adminGroup := api.Group("/admin")
		{
			adminGroup.GET("/orders", adminHandler.ListOrders)
			adminGroup.GET("/config", adminHandler.ListConfig)
			adminGroup.POST("/config", adminHandler.SetConfig)
			adminGroup.GET("/config/:key", adminHandler.GetConfig)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	return r
}
