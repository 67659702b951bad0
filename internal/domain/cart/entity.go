package cart

import (
	"time"
)

// Item 购物车条目实体
// DDD设计说明:
// 1. 每个(用户, 商品)一行,数量在行内累加
// 2. 数量上限是商品当前库存(加购时校验,不做预占)
type Item struct {
	ID        uint
	UserID    uint // 所属用户ID
	ProductID uint // 商品ID
	Quantity  int  // 数量(1..商品库存)
	CreatedAt time.Time
	UpdatedAt time.Time

	// 商品快照(查询时联表填充,不持久化在购物车表)
	Title     string
	Author    string
	Price     int64
	SalePrice int64
	ImageURL  string
	Stock     int
}

// NewItem 创建购物车条目
func NewItem(userID, productID uint, quantity int) *Item {
	now := time.Now()
	return &Item{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
