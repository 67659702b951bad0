package cart

import (
	"context"
)

// Repository 购物车仓储接口(依赖倒置原则)
type Repository interface {
	// FindItem 查找用户购物车中的某商品条目
	// 不存在时返回ErrItemNotFound
	FindItem(ctx context.Context, userID, productID uint) (*Item, error)

	// Save 保存条目(新建或更新数量)
	Save(ctx context.Context, item *Item) error

	// Remove 移除条目(不存在时no-op)
	Remove(ctx context.Context, userID, productID uint) error

	// ListByUser 查询用户购物车(带商品快照)
	// 用户尚无购物车时返回空列表
	ListByUser(ctx context.Context, userID uint) ([]*Item, error)
}
