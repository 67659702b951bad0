package wishlist

import (
	"time"
)

// Item 心愿单条目实体
// DDD设计说明:
// 1. 每个(用户, 商品)一行,数据库唯一索引保证集合语义(无重复)
// 2. 列表按加入时间排序返回
// 3. 条目带商品快照字段(联表填充),避免前端二次请求
type Item struct {
	ID        uint
	UserID    uint // 所属用户ID
	ProductID uint // 商品ID
	AddedAt   time.Time

	// 商品快照(查询时联表填充,不持久化在心愿单表)
	Title     string
	Author    string
	Price     int64
	SalePrice int64
	ImageURL  string
}

// NewItem 创建心愿单条目
func NewItem(userID, productID uint) *Item {
	return &Item{
		UserID:    userID,
		ProductID: productID,
		AddedAt:   time.Now(),
	}
}
