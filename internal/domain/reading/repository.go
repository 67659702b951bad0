package reading

import (
	"context"
)

// Repository 阅读进度仓储接口(依赖倒置原则)
type Repository interface {
	// Create 创建阅读进度(唯一索引(user_id, book_id))
	Create(ctx context.Context, p *Progress) error

	// FindByUserAndBook 按(用户, 书)查找进度
	// 不存在时返回ErrProgressNotFound
	FindByUserAndBook(ctx context.Context, userID, bookID uint) (*Progress, error)

	// Update 更新阅读进度
	Update(ctx context.Context, p *Progress) error
}
