// Storefront 主程序
// 功能：汽摩配件商城后端，提供商品目录、购物车、心愿单、结算与订单查询
// 架构：基于 DDD + REST + Kafka
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authhttp "github.com/autofixx/storefront/internal/auth/interfaces/http"
	cartapp "github.com/autofixx/storefront/internal/cart/application"
	cartdomain "github.com/autofixx/storefront/internal/cart/domain"
	cartmysql "github.com/autofixx/storefront/internal/cart/infrastructure/persistence/mysql"
	carthttp "github.com/autofixx/storefront/internal/cart/interfaces/http"
	catalogapp "github.com/autofixx/storefront/internal/catalog/application"
	catalogmysql "github.com/autofixx/storefront/internal/catalog/infrastructure/persistence/mysql"
	cataloghttp "github.com/autofixx/storefront/internal/catalog/interfaces/http"
	orderapp "github.com/autofixx/storefront/internal/order/application"
	orderdomain "github.com/autofixx/storefront/internal/order/domain"
	ordermessaging "github.com/autofixx/storefront/internal/order/infrastructure/messaging"
	ordermysql "github.com/autofixx/storefront/internal/order/infrastructure/persistence/mysql"
	orderhttp "github.com/autofixx/storefront/internal/order/interfaces/http"
	wishlistapp "github.com/autofixx/storefront/internal/wishlist/application"
	wishlistmysql "github.com/autofixx/storefront/internal/wishlist/infrastructure/persistence/mysql"
	wishlisthttp "github.com/autofixx/storefront/internal/wishlist/interfaces/http"
	"github.com/autofixx/storefront/pkg/cache"
	"github.com/autofixx/storefront/pkg/config"
	"github.com/autofixx/storefront/pkg/db"
	"github.com/autofixx/storefront/pkg/logger"
	"github.com/autofixx/storefront/pkg/metrics"
	"github.com/autofixx/storefront/pkg/middleware"
	"github.com/autofixx/storefront/pkg/mq"
	"github.com/autofixx/storefront/pkg/ratelimit"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. 加载配置
	var configPath string
	flag.StringVar(&configPath, "config", "configs/storefront/config.toml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. 初始化日志
	loggerCfg := logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		FilePath:   cfg.Logger.FilePath,
		MaxSize:    cfg.Logger.MaxSize,
		MaxBackups: cfg.Logger.MaxBackups,
		MaxAge:     cfg.Logger.MaxAge,
		Compress:   cfg.Logger.Compress,
		WithCaller: cfg.Logger.WithCaller,
	}
	if err := logger.Init(loggerCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	logger.Info(ctx, "Starting Storefront",
		"service", cfg.ServiceName,
		"version", cfg.Version,
		"environment", cfg.Environment,
	)

	// 3. 初始化数据库
	dbCfg := db.Config{
		Driver:             cfg.Database.Driver,
		DSN:                cfg.Database.DSN,
		MaxOpenConns:       cfg.Database.MaxOpenConns,
		MaxIdleConns:       cfg.Database.MaxIdleConns,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		LogEnabled:         cfg.Database.LogEnabled,
		SlowQueryThreshold: cfg.Database.SlowQueryThreshold,
	}
	database, err := db.Init(dbCfg)
	if err != nil {
		logger.Fatal(ctx, "Failed to initialize database", "error", err)
	}
	defer database.Close()

	// 4. 迁移并灌入种子目录数据
	if cfg.Database.AutoMigrate {
		if err := catalogmysql.Migrate(database.DB); err != nil {
			logger.Fatal(ctx, "Failed to migrate catalog tables", "error", err)
		}
		if err := cartmysql.Migrate(database.DB); err != nil {
			logger.Fatal(ctx, "Failed to migrate cart tables", "error", err)
		}
		if err := wishlistmysql.Migrate(database.DB); err != nil {
			logger.Fatal(ctx, "Failed to migrate wishlist tables", "error", err)
		}
		if err := ordermysql.Migrate(database.DB); err != nil {
			logger.Fatal(ctx, "Failed to migrate order tables", "error", err)
		}
		if err := catalogmysql.Seed(ctx, database.DB); err != nil {
			logger.Fatal(ctx, "Failed to seed catalog", "error", err)
		}
	}

	// 5. 初始化 Redis（可选，缺失时目录缓存与限流降级）
	var redisCache *cache.RedisCache
	redisCache, err = cache.New(cache.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		MaxPoolSize:  cfg.Redis.MaxPoolSize,
		ConnTimeout:  cfg.Redis.ConnTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		logger.Warn(ctx, "Redis unavailable, running without cache and rate limiting", "error", err)
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	// 6. 初始化 Kafka 生产者（可选，缺失时订单事件关闭）
	var eventPublisher orderdomain.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := mq.NewProducer(mq.KafkaConfig{
			Brokers:      cfg.Kafka.Brokers,
			MaxRetries:   cfg.Kafka.MaxRetries,
			RetryBackoff: cfg.Kafka.RetryBackoff,
		})
		if err != nil {
			logger.Warn(ctx, "Kafka unavailable, order events disabled", "error", err)
		} else {
			defer producer.Close()
			eventPublisher = ordermessaging.NewKafkaEventPublisher(producer, cfg.Kafka.OrderTopic)
		}
	}

	// 7. 初始化仓储
	catalogRepo := catalogmysql.NewCatalogRepository(database.DB)
	cartRepo := cartmysql.NewCartRepository(database.DB)
	wishlistRepo := wishlistmysql.NewWishlistRepository(database.DB)
	orderRepo := ordermysql.NewOrderRepository(database.DB)

	// 8. 初始化指标
	metricsInstance := metrics.New("api")
	if cfg.Metrics.Enabled {
		if err := metricsInstance.Register(); err != nil {
			logger.Fatal(ctx, "Failed to register metrics", "error", err)
		}
		if err := metrics.StartHTTPServer(cfg.Metrics.Port, cfg.Metrics.Path); err != nil {
			logger.Fatal(ctx, "Failed to start metrics HTTP server", "error", err)
		}
	}

	// 9. 初始化应用服务
	catalogService, err := catalogapp.NewCatalogQueryService(ctx, catalogRepo, redisCache,
		time.Duration(cfg.Store.CatalogCacheTTL)*time.Second)
	if err != nil {
		logger.Fatal(ctx, "Failed to load catalog", "error", err)
	}

	pricer, err := cartdomain.NewPricer(
		cfg.Store.FreeShippingThreshold,
		cfg.Store.FlatShippingRate,
		cfg.Store.TaxRate,
		cfg.Store.HeavyWeightThreshold,
		cfg.Store.HeavyWeightStep,
		cfg.Store.HeavyWeightSurcharge,
	)
	if err != nil {
		logger.Fatal(ctx, "Invalid store pricing config", "error", err)
	}

	cartService := cartapp.NewCartService(catalogService, cartRepo, pricer, metricsInstance)
	wishlistService := wishlistapp.NewWishlistService(catalogService, wishlistRepo)
	orderService := orderapp.NewOrderService(cartService, orderRepo, eventPublisher, metricsInstance)

	// 10. 创建 HTTP 服务器
	httpServer := createHTTPServer(cfg, redisCache, catalogService, cartService, wishlistService, orderService)

	// 11. 启动 HTTP 服务器
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		logger.Info(ctx, "Starting HTTP server", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal(ctx, "HTTP server error", "error", err)
		}
	}()

	// 12. 优雅关停
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info(ctx, "Shutting down Storefront")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "HTTP server shutdown error", "error", err)
	}

	logger.Info(ctx, "Storefront stopped")
}

// createHTTPServer 创建 HTTP 服务器
func createHTTPServer(
	cfg *config.Config,
	redisCache *cache.RedisCache,
	catalogService *catalogapp.CatalogQueryService,
	cartService *cartapp.CartService,
	wishlistService *wishlistapp.WishlistService,
	orderService *orderapp.OrderService,
) *http.Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// 添加中间件
	router.Use(middleware.GinLoggingMiddleware())
	router.Use(middleware.GinRecoveryMiddleware(cfg.IsProduction()))
	router.Use(middleware.GinCORSMiddleware(cfg.HTTP.AllowedOrigins))
	if cfg.RateLimit.Enabled && redisCache != nil {
		limiter := ratelimit.NewRedisRateLimiter(redisCache.GetClient())
		router.Use(middleware.RateLimitMiddleware(limiter, cfg.RateLimit))
	}

	// 注册路由
	cataloghttp.NewCatalogHandler(catalogService, cfg.IsProduction()).RegisterRoutes(router)
	carthttp.NewCartHandler(cartService).RegisterRoutes(router)
	wishlisthttp.NewWishlistHandler(wishlistService, cfg.IsProduction()).RegisterRoutes(router)
	orderhttp.NewOrderHandler(orderService, cfg.IsProduction()).RegisterRoutes(router)
	authhttp.NewAuthHandler().RegisterRoutes(router)

	registerHealth(router, cfg.ServiceName)

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeout) * time.Second,
	}
}

// registerHealth 注册健康检查接口
func registerHealth(router *gin.Engine, serviceName string) {
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"message":   serviceName + " is running",
			"timestamp": time.Now().Unix(),
		})
	})
}
