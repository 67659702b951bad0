//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 使用方式：
// Step 1: 修改本文件的Providers
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
//
// main.go中的手动组装与此文件等价，二选一即可。

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"

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
	"github.com/xiebiao/bookmart/pkg/mq"
)

// infrastructureSet 基础设施层依赖
var infrastructureSet = wire.NewSet(
	config.Load,
	mysql.NewDB,
	redis.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewProductRepository,
	mysql.NewReviewRepository,
	mysql.NewReadingRepository,
	mysql.NewWishlistRepository,
	mysql.NewCartRepository,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	user.NewService,
	product.NewService,
	review.NewService,
	reading.NewService,
	wishlist.NewService,
	cart.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	provideLogoutUseCase,
	appproduct.NewAddProductUseCase,
	appproduct.NewEditProductUseCase,
	appproduct.NewGetProductUseCase,
	appproduct.NewListProductsUseCase,
	appproduct.NewDeleteProductUseCase,
	provideUploadPDFUseCase,
	appreview.NewAddReviewUseCase,
	appreview.NewUpdateReviewUseCase,
	appreview.NewDeleteReviewUseCase,
	appreview.NewListReviewsUseCase,
	appreading.NewGetContentUseCase,
	appreading.NewGetProgressUseCase,
	appreading.NewUpdateProgressUseCase,
	appreading.NewMarkCompletedUseCase,
	appwishlist.NewManageWishlistUseCase,
	appcart.NewManageCartUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	providePublisher,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewUserHandler,
	handler.NewProductHandler,
	handler.NewReviewHandler,
	handler.NewReadingHandler,
	handler.NewWishlistHandler,
	handler.NewCartHandler,
)

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// providePublisher 从配置创建事件发布者
// URL为空时返回nil，各用例对nil发布者做了兼容（事件发布关闭）
func providePublisher(cfg *config.Config) (*mq.Publisher, error) {
	if cfg.MQ.URL == "" {
		return nil, nil
	}
	return mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, "topic")
}

// provideLogoutUseCase 登出用例需要从配置提取Token有效期
func provideLogoutUseCase(sessionStore *redis.SessionStore, cfg *config.Config) *appuser.LogoutUseCase {
	return appuser.NewLogoutUseCase(sessionStore, cfg.JWT.AccessTokenExpire)
}

// provideUploadPDFUseCase PDF上传用例需要从配置提取存储参数
func provideUploadPDFUseCase(productService product.Service, cfg *config.Config) *appproduct.UploadPDFUseCase {
	return appproduct.NewUploadPDFUseCase(
		productService,
		cfg.Upload.Dir,
		cfg.Upload.PublicPath,
		cfg.Upload.MaxPDFSize,
	)
}

// provideGinEngine 创建Gin引擎并注册全部路由
func provideGinEngine(
	cfg *config.Config,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	reviewHandler *handler.ReviewHandler,
	readingHandler *handler.ReadingHandler,
	wishlistHandler *handler.WishlistHandler,
	cartHandler *handler.CartHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.Metrics())
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing(cfg.Tracing.Service))
	}

	registerRoutes(r, cfg,
		userHandler, productHandler, reviewHandler,
		readingHandler, wishlistHandler, cartHandler,
		authMiddleware,
	)

	return r
}

// InitializeApp 初始化整个应用
// Wire会按依赖链自动调用所有构造函数，生成wire_gen.go
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)

	return nil, nil
}
