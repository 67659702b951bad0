package wishlist

import (
	"context"
)

// Repository 心愿单仓储接口(依赖倒置原则)
// 设计说明:Add/Remove都是幂等操作,重复添加和删除不存在的条目均为no-op
type Repository interface {
	// Add 加入心愿单(已存在时no-op,靠唯一索引保证)
	Add(ctx context.Context, item *Item) error

	// Remove 从心愿单移除(不存在时no-op)
	Remove(ctx context.Context, userID, productID uint) error

	// ListByUser 查询用户心愿单(按加入时间排序,带商品快照)
	// 用户尚无心愿单时返回空列表
	ListByUser(ctx context.Context, userID uint) ([]*Item, error)
}
