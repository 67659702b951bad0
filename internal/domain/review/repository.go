package review

import (
	"context"
)

// Repository 评价仓储接口(依赖倒置原则)
// 设计说明:
// 1. (user_id, product_id)唯一索引由数据库保证,Create遇到冲突时
//    由实现转换为ErrDuplicateReview(应用层校验有并发时间窗口,不可靠)
// 2. FindByIDAndUser把所有权检查下沉到查询条件,查不到统一返回
//    ErrReviewNotFound,天然避免存在性泄露
type Repository interface {
	// Create 创建评价(唯一索引冲突返回ErrDuplicateReview)
	Create(ctx context.Context, r *Review) error

	// FindByIDAndUser 按(ID, 用户)查找评价
	// 评价不存在或不属于该用户时都返回ErrReviewNotFound
	FindByIDAndUser(ctx context.Context, id, userID uint) (*Review, error)

	// Update 更新评价内容
	Update(ctx context.Context, r *Review) error

	// Delete 删除评价
	Delete(ctx context.Context, id uint) error

	// ListByProduct 分页查询商品的评价(按创建时间降序,最新在前)
	// 返回的评价带评价者昵称
	ListByProduct(ctx context.Context, productID uint, page, limit int) ([]*Review, int64, error)

	// FindRatingsByProduct 查询商品当前全部评分(评分重算用)
	FindRatingsByProduct(ctx context.Context, productID uint) ([]int, error)
}
