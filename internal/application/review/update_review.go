package review

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/review"
	"github.com/xiebiao/bookmart/pkg/mq"
)

// UpdateReviewUseCase 修改评价用例
// 所有权规则:只能修改自己的评价,非本人的评价返回404
type UpdateReviewUseCase struct {
	reviewService review.Service
	publisher     *mq.Publisher
}

// NewUpdateReviewUseCase 创建修改评价用例
func NewUpdateReviewUseCase(reviewService review.Service, publisher *mq.Publisher) *UpdateReviewUseCase {
	return &UpdateReviewUseCase{
		reviewService: reviewService,
		publisher:     publisher,
	}
}

// UpdateReviewRequest 修改评价请求DTO
type UpdateReviewRequest struct {
	ReviewID uint
	UserID   uint // 从JWT提取
	Rating   int
	Comment  string
}

// Execute 执行修改评价
func (uc *UpdateReviewUseCase) Execute(ctx context.Context, req UpdateReviewRequest) (*ReviewDetail, error) {
	r, err := uc.reviewService.UpdateReview(ctx, req.ReviewID, req.UserID, req.Rating, req.Comment)
	if err != nil {
		countRejected(err)
		return nil, err
	}

	publishEvent(uc.publisher, "review.updated", r)

	return toReviewDetail(r), nil
}

// DeleteReviewUseCase 删除评价用例
// 所有权规则与修改相同
type DeleteReviewUseCase struct {
	reviewService review.Service
	publisher     *mq.Publisher
}

// NewDeleteReviewUseCase 创建删除评价用例
func NewDeleteReviewUseCase(reviewService review.Service, publisher *mq.Publisher) *DeleteReviewUseCase {
	return &DeleteReviewUseCase{
		reviewService: reviewService,
		publisher:     publisher,
	}
}

// Execute 执行删除评价
func (uc *DeleteReviewUseCase) Execute(ctx context.Context, reviewID, userID uint) error {
	if err := uc.reviewService.DeleteReview(ctx, reviewID, userID); err != nil {
		countRejected(err)
		return err
	}

	publishEvent(uc.publisher, "review.deleted", &review.Review{ID: reviewID, UserID: userID})

	return nil
}
