package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmart/internal/domain/review"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// reviewRepository 评价仓储实现(MySQL)
// 设计说明:
// 1. (user_id, product_id)唯一索引冲突 → ErrDuplicateReview(409)
// 2. FindByIDAndUser把所有权条件放进WHERE,查不到统一返回
//    ErrReviewNotFound,不区分"不存在"和"不是你的"
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// Create 创建评价
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		UserID:    rv.UserID,
		ProductID: rv.ProductID,
		Rating:    rv.Rating,
		Comment:   rv.Comment,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// 一人一评唯一索引冲突
		if isDuplicateError(err) {
			return review.ErrDuplicateReview
		}
		return apperrors.Wrap(err, "Failed to create review")
	}

	// 回填自增ID
	rv.ID = model.ID
	rv.CreatedAt = model.CreatedAt
	rv.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByIDAndUser 按(ID, 用户)查找评价
func (r *reviewRepository) FindByIDAndUser(ctx context.Context, id, userID uint) (*review.Review, error) {
	var model ReviewModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, review.ErrReviewNotFound
		}
		return nil, apperrors.Wrap(err, "Failed to find review")
	}

	return toReviewEntity(&model), nil
}

// Update 更新评价内容
func (r *reviewRepository) Update(ctx context.Context, rv *review.Review) error {
	result := r.db.WithContext(ctx).Model(&ReviewModel{}).
		Where("id = ?", rv.ID).
		Updates(map[string]interface{}{
			"rating":  rv.Rating,
			"comment": rv.Comment,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to update review")
	}

	return nil
}

// Delete 删除评价
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ReviewModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to delete review")
	}

	if result.RowsAffected == 0 {
		return review.ErrReviewNotFound
	}

	return nil
}

// reviewWithNickname 联表查询结果(评价 + 评价者昵称)
type reviewWithNickname struct {
	ReviewModel
	Nickname string
}

// ListByProduct 分页查询商品评价(最新在前,带评价者昵称)
func (r *reviewRepository) ListByProduct(ctx context.Context, productID uint, page, limit int) ([]*review.Review, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&ReviewModel{}).
		Where("product_id = ?", productID).
		Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "Failed to count reviews")
	}

	var rows []reviewWithNickname
	offset := (page - 1) * limit
	err := r.db.WithContext(ctx).Model(&ReviewModel{}).
		Select("reviews.*, users.nickname").
		Joins("LEFT JOIN users ON users.id = reviews.user_id").
		Where("reviews.product_id = ?", productID).
		Order("reviews.created_at DESC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "Failed to list reviews")
	}

	reviews := make([]*review.Review, len(rows))
	for i := range rows {
		rv := toReviewEntity(&rows[i].ReviewModel)
		rv.Nickname = rows[i].Nickname
		reviews[i] = rv
	}

	return reviews, total, nil
}

// FindRatingsByProduct 查询商品当前全部评分(评分重算用)
// 只取rating列,避免把全部评价内容读进内存
func (r *reviewRepository) FindRatingsByProduct(ctx context.Context, productID uint) ([]int, error) {
	var ratings []int
	err := r.db.WithContext(ctx).Model(&ReviewModel{}).
		Where("product_id = ?", productID).
		Pluck("rating", &ratings).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to load ratings")
	}

	return ratings, nil
}

// toReviewEntity GORM模型 → 领域实体
func toReviewEntity(model *ReviewModel) *review.Review {
	return &review.Review{
		ID:        model.ID,
		UserID:    model.UserID,
		ProductID: model.ProductID,
		Rating:    model.Rating,
		Comment:   model.Comment,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
