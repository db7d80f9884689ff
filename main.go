package main

import (
	"github.com/HITENDRAS940/E-commerce1/cache"
	"github.com/HITENDRAS940/E-commerce1/controllers"
	"github.com/HITENDRAS940/E-commerce1/database"
	"github.com/HITENDRAS940/E-commerce1/kafka"
	"github.com/HITENDRAS940/E-commerce1/middleware"
	"github.com/HITENDRAS940/E-commerce1/pkg/apperrors"
	"github.com/HITENDRAS940/E-commerce1/pkg/logger"
	"github.com/HITENDRAS940/E-commerce1/repository"
	"github.com/HITENDRAS940/E-commerce1/routes"
	"github.com/HITENDRAS940/E-commerce1/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := LoadConfig()

	logger.Initialize(cfg.Env)
	defer logger.Log.Sync()

	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.PostgresHost,
		Port:     cfg.PostgresPort,
		User:     cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DBName:   cfg.PostgresDB,
		SSLMode:  cfg.PostgresSSLMode,
		TimeZone: cfg.PostgresTimeZone,
	})
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := database.Migrate(db); err != nil {
		logger.Log.Fatal("Migration failed", zap.Error(err))
	}

	redisClient, err := database.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Log.Warn("Redis unavailable, product cache disabled", zap.Error(err))
	}

	var producer kafka.PublisherAPI
	if len(cfg.KafkaBrokers) > 0 {
		p := kafka.NewProducer(cfg.KafkaBrokers, cfg.OrderEventsTopic, logger.Log)
		defer p.Close()
		producer = p
	}

	txm := repository.NewGormTxManager(db, cfg.LockTimeout)
	productRepo := repository.NewGormProductRepository(db)
	cartRepo := repository.NewGormCartRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)
	addressRepo := repository.NewGormAddressRepository(db)
	categoryRepo := repository.NewGormCategoryRepository(db)

	productCache := cache.NewProductCache(redisClient, logger.Log)

	cartService := services.NewCartService(txm, cartRepo, logger.Log)
	orderService := services.NewOrderService(txm, orderRepo, producer, logger.Log)
	productService := services.NewProductService(txm, productRepo, categoryRepo, productCache, logger.Log)
	categoryService := services.NewCategoryService(categoryRepo, logger.Log)
	addressService := services.NewAddressService(addressRepo, logger.Log)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	controllers.RegisterValidators()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())
	r.Use(middleware.RateLimitMiddleware())
	r.Use(apperrors.ErrorMiddleware())

	routes.Register(r,
		middleware.AuthMiddleware(cfg.JWTSecret),
		controllers.NewCartController(cartService),
		controllers.NewOrderController(orderService),
		controllers.NewProductController(productService),
		controllers.NewCategoryController(categoryService),
		controllers.NewAddressController(addressService),
	)

	logger.Log.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Log.Fatal("Server failed", zap.Error(err))
	}
}
