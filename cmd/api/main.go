package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appcart "github.com/xiebiao/bookmart/internal/application/cart"
	appproduct "github.com/xiebiao/bookmart/internal/application/product"
	appreading "github.com/xiebiao/bookmart/internal/application/reading"
	appreview "github.com/xiebiao/bookmart/internal/application/review"
	appuser "github.com/xiebiao/bookmart/internal/application/user"
	appwishlist "github.com/xiebiao/bookmart/internal/application/wishlist"
	"github.com/xiebiao/bookmart/internal/domain/cart"
	"github.com/xiebiao/bookmart/internal/domain/product"
	"github.com/xiebiao/bookmart/internal/domain/reading"
	"github.com/xiebiao/bookmart/internal/domain/review"
	"github.com/xiebiao/bookmart/internal/domain/user"
	"github.com/xiebiao/bookmart/internal/domain/wishlist"
	"github.com/xiebiao/bookmart/internal/infrastructure/config"
	"github.com/xiebiao/bookmart/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookmart/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookmart/internal/interface/http/handler"
	"github.com/xiebiao/bookmart/internal/interface/http/middleware"
	"github.com/xiebiao/bookmart/pkg/jwt"
	"github.com/xiebiao/bookmart/pkg/metrics"
	"github.com/xiebiao/bookmart/pkg/mq"
	"github.com/xiebiao/bookmart/pkg/response"
	"github.com/xiebiao/bookmart/pkg/tracing"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go提供等价的Wire注入器）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	fmt.Printf("✓ 配置加载成功\n")
	fmt.Printf("  - 服务端口: %d\n", cfg.Server.Port)
	fmt.Printf("  - 运行模式: %s\n", cfg.Server.Mode)
	fmt.Printf("  - 数据库: %s:%d/%s\n", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	fmt.Printf("  - Redis: %s\n", cfg.Redis.Addr())
	fmt.Printf("  - 上传目录: %s (对外路径 %s)\n", cfg.Upload.Dir, cfg.Upload.PublicPath)

	// 2. 初始化Prometheus指标
	metrics.InitMetrics()

	// 3. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 4. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 5. 初始化RabbitMQ发布者（可选，URL为空则关闭事件发布）
	var publisher *mq.Publisher
	if cfg.MQ.URL != "" {
		publisher, err = mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
		if err != nil {
			// 事件发布是旁路能力，连不上MQ不阻塞启动
			log.Printf("⚠️ RabbitMQ连接失败，事件发布已关闭: %v", err)
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	// 6. 初始化链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.Service, cfg.Tracing.Endpoint)
		if err != nil {
			log.Fatalf("初始化链路追踪失败: %v", err)
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("关闭链路追踪失败: %v", err)
			}
		}()
	}

	// 7. 依赖注入（手动组装）
	// Repository ← Service ← UseCase ← Handler

	// 基础设施层
	userRepo := mysql.NewUserRepository(db)
	productRepo := mysql.NewProductRepository(db)
	reviewRepo := mysql.NewReviewRepository(db)
	readingRepo := mysql.NewReadingRepository(db)
	wishlistRepo := mysql.NewWishlistRepository(db)
	cartRepo := mysql.NewCartRepository(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	userService := user.NewService(userRepo)
	productService := product.NewService(productRepo)
	reviewService := review.NewService(reviewRepo, productRepo)
	readingService := reading.NewService(readingRepo)
	wishlistService := wishlist.NewService(wishlistRepo, productRepo)
	cartService := cart.NewService(cartRepo, productRepo)

	// 应用层
	registerUseCase := appuser.NewRegisterUseCase(userService)
	loginUseCase := appuser.NewLoginUseCase(userService, jwtManager, sessionStore)
	logoutUseCase := appuser.NewLogoutUseCase(sessionStore, cfg.JWT.AccessTokenExpire)

	addProductUseCase := appproduct.NewAddProductUseCase(productService)
	editProductUseCase := appproduct.NewEditProductUseCase(productService)
	getProductUseCase := appproduct.NewGetProductUseCase(productService)
	listProductsUseCase := appproduct.NewListProductsUseCase(productService)
	deleteProductUseCase := appproduct.NewDeleteProductUseCase(productService)
	uploadPDFUseCase := appproduct.NewUploadPDFUseCase(
		productService,
		cfg.Upload.Dir,
		cfg.Upload.PublicPath,
		cfg.Upload.MaxPDFSize,
	)

	addReviewUseCase := appreview.NewAddReviewUseCase(reviewService, publisher)
	updateReviewUseCase := appreview.NewUpdateReviewUseCase(reviewService, publisher)
	deleteReviewUseCase := appreview.NewDeleteReviewUseCase(reviewService, publisher)
	listReviewsUseCase := appreview.NewListReviewsUseCase(reviewService)

	getContentUseCase := appreading.NewGetContentUseCase(productService)
	getProgressUseCase := appreading.NewGetProgressUseCase(readingService)
	updateProgressUseCase := appreading.NewUpdateProgressUseCase(readingService)
	markCompletedUseCase := appreading.NewMarkCompletedUseCase(readingService)

	manageWishlistUseCase := appwishlist.NewManageWishlistUseCase(wishlistService)
	manageCartUseCase := appcart.NewManageCartUseCase(cartService)

	// 接口层
	userHandler := handler.NewUserHandler(registerUseCase, loginUseCase, logoutUseCase)
	productHandler := handler.NewProductHandler(
		addProductUseCase,
		editProductUseCase,
		getProductUseCase,
		listProductsUseCase,
		deleteProductUseCase,
		uploadPDFUseCase,
	)
	reviewHandler := handler.NewReviewHandler(
		addReviewUseCase,
		updateReviewUseCase,
		deleteReviewUseCase,
		listReviewsUseCase,
	)
	readingHandler := handler.NewReadingHandler(
		getContentUseCase,
		getProgressUseCase,
		updateProgressUseCase,
		markCompletedUseCase,
	)
	wishlistHandler := handler.NewWishlistHandler(manageWishlistUseCase)
	cartHandler := handler.NewCartHandler(manageCartUseCase)
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 8. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.Metrics())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(cfg.Tracing.Service))
	}

	// 9. 注册路由
	registerRoutes(r, cfg,
		userHandler, productHandler, reviewHandler,
		readingHandler, wishlistHandler, cartHandler,
		authMiddleware,
	)

	// 10. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	fmt.Printf("\n🚀 服务启动成功！\n")
	fmt.Printf("   访问地址: http://localhost%s\n", addr)
	fmt.Printf("   健康检查: http://localhost%s/ping\n", addr)
	fmt.Printf("   API文档:  http://localhost%s/swagger/index.html\n", addr)
	fmt.Printf("   指标采集: http://localhost%s/metrics\n", addr)
	fmt.Printf("\n按Ctrl+C停止服务\n\n")

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	readingHandler *handler.ReadingHandler,
	wishlistHandler *handler.WishlistHandler,
	cartHandler *handler.CartHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 上传文件静态访问（PDF通过此路径对外提供下载）
	r.Static(cfg.Upload.PublicPath, cfg.Upload.Dir)

	// API路由组
	v1 := r.Group("/api/v1")
	{
		// 用户模块
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authMiddleware.RequireAuth(), userHandler.Logout)
		}

		// 商品模块（公开接口）
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.GET("/:id/reviews", reviewHandler.ListByProduct)
		}

		// 商品管理（管理员接口）
		admin := v1.Group("/admin/products")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			admin.POST("", productHandler.Add)
			admin.PUT("/:id", productHandler.Edit)
			admin.DELETE("/:id", productHandler.Delete)
			admin.POST("/upload-pdf", productHandler.UploadPDF)
		}

		// 评价模块（需要登录）
		reviews := v1.Group("/reviews")
		reviews.Use(authMiddleware.RequireAuth())
		{
			reviews.POST("", reviewHandler.Add)
			reviews.PUT("/:id", reviewHandler.Update)
			reviews.DELETE("/:id", reviewHandler.Delete)
		}

		// 在线阅读模块（需要登录）
		readings := v1.Group("/reading")
		readings.Use(authMiddleware.RequireAuth())
		{
			readings.GET("/:bookId/content", readingHandler.GetContent)
			readings.GET("/:bookId/progress", readingHandler.GetProgress)
			readings.POST("/:bookId/progress", readingHandler.UpdateProgress)
			readings.POST("/:bookId/complete", readingHandler.MarkCompleted)
		}

		// 心愿单模块（需要登录）
		wishlists := v1.Group("/wishlist")
		wishlists.Use(authMiddleware.RequireAuth())
		{
			wishlists.GET("", wishlistHandler.List)
			wishlists.POST("", wishlistHandler.Add)
			wishlists.DELETE("/:productId", wishlistHandler.Remove)
		}

		// 购物车模块（需要登录）
		carts := v1.Group("/cart")
		carts.Use(authMiddleware.RequireAuth())
		{
			carts.GET("", cartHandler.List)
			carts.POST("", cartHandler.Add)
			carts.PUT("/:productId", cartHandler.UpdateQuantity)
			carts.DELETE("/:productId", cartHandler.Remove)
		}
	}
}
