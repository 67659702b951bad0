package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookmart/internal/domain/product"
	"github.com/xiebiao/bookmart/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	// 1. 构建DSN连接字符串
	dsn := cfg.Database.DSN()

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	// 3. 连接数据库
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 6. 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 学习要点：
// 1. AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
// 2. 唯一索引(评价、阅读进度、心愿单、购物车)在这里建立，
//    对应的业务约束(一人一评等)依赖这些索引
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&ProductModel{},
		&ReviewModel{},
		&ReadingProgressModel{},
		&WishlistItemModel{},
		&CartItemModel{},
	)
}

// UserModel GORM用户模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/user/entity.go是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Nickname  string         `gorm:"size:50;not null;comment:昵称"`
	IsAdmin   bool           `gorm:"default:false;comment:管理员标记"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// ProductModel GORM商品模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. Rating是派生字段,只由评价聚合器通过UpdateRating写入
// 3. 内嵌章节内容序列化为JSON存储(电子书整体读写,不单独查询章节)
// 4. 复合索引优化列表查询(排序字段)
type ProductModel struct {
	ID          uint              `gorm:"primaryKey"`
	Title       string            `gorm:"index:idx_search;size:200;not null;comment:书名"`
	Author      string            `gorm:"index:idx_search;size:100;not null;comment:作者"`
	Description string            `gorm:"type:text;not null;comment:商品描述"`
	Category    string            `gorm:"index;size:50;not null;comment:分类"`
	Language    string            `gorm:"size:50;comment:语言"`
	Price       int64             `gorm:"index:idx_list;not null;comment:原价(分)"`
	SalePrice   int64             `gorm:"default:0;comment:促销价(分)"`
	ImageURL    string            `gorm:"size:500;comment:封面图片URL"`
	Stock       int               `gorm:"default:0;comment:库存数量"`
	Rating      float64           `gorm:"default:0;comment:平均评分(派生,1位小数)"`
	IsDigital   bool              `gorm:"default:false;comment:是否电子书"`
	PDFURL      string            `gorm:"size:500;comment:PDF文件URL"`
	Chapters    []product.Chapter `gorm:"serializer:json;type:json;comment:内嵌章节内容"`
	TotalPages  int               `gorm:"default:0;comment:总页数"`
	CreatedAt   time.Time         `gorm:"index:idx_list;comment:创建时间"`
	UpdatedAt   time.Time         `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt    `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (ProductModel) TableName() string {
	return "products"
}

// ReviewModel GORM评价模型
// 设计说明:
// 1. (user_id, product_id)唯一索引保证一人一评,
//    并发的重复提交在索引上分出胜负(失败方收到409)
// 2. 评分是1-5的整数,tinyint足够
type ReviewModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_product;not null;comment:评价者用户ID"`
	ProductID uint      `gorm:"uniqueIndex:idx_user_product;index;not null;comment:商品ID"`
	Rating    int       `gorm:"type:tinyint;not null;comment:评分(1-5)"`
	Comment   string    `gorm:"size:500;not null;comment:评价内容"`
	CreatedAt time.Time `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}

// ReadingProgressModel GORM阅读进度模型
// (user_id, book_id)唯一索引,每人每本书一条进度
type ReadingProgressModel struct {
	ID              uint      `gorm:"primaryKey"`
	UserID          uint      `gorm:"uniqueIndex:idx_user_book;not null;comment:读者用户ID"`
	BookID          uint      `gorm:"uniqueIndex:idx_user_book;not null;comment:书籍(商品)ID"`
	CurrentPage     int       `gorm:"default:1;comment:当前页码"`
	LastReadChapter int       `gorm:"default:1;comment:最近阅读章节号"`
	ReadingTime     int       `gorm:"default:0;comment:累计阅读时长(分钟)"`
	Completed       bool      `gorm:"default:false;comment:是否已读完"`
	CreatedAt       time.Time `gorm:"comment:创建时间"`
	UpdatedAt       time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ReadingProgressModel) TableName() string {
	return "reading_progress"
}

// WishlistItemModel GORM心愿单条目模型
// (user_id, product_id)唯一索引保证集合语义(无重复)
type WishlistItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_wish_user_product;index;not null;comment:用户ID"`
	ProductID uint      `gorm:"uniqueIndex:idx_wish_user_product;not null;comment:商品ID"`
	CreatedAt time.Time `gorm:"comment:加入时间"`
}

// TableName 指定表名
func (WishlistItemModel) TableName() string {
	return "wishlist_items"
}

// CartItemModel GORM购物车条目模型
// (user_id, product_id)唯一索引,数量在行内累加
type CartItemModel struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex:idx_cart_user_product;index;not null;comment:用户ID"`
	ProductID uint      `gorm:"uniqueIndex:idx_cart_user_product;not null;comment:商品ID"`
	Quantity  int       `gorm:"not null;comment:数量"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CartItemModel) TableName() string {
	return "cart_items"
}
