package review

import (
	"context"
	"errors"
	"log"

	"github.com/xiebiao/bookmart/internal/domain/review"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
	"github.com/xiebiao/bookmart/pkg/metrics"
	"github.com/xiebiao/bookmart/pkg/mq"
)

// AddReviewUseCase 提交评价用例
// 设计说明:
// 1. 领域服务完成校验、落库、评分重算(同步)
// 2. 用例层补充可观测性(业务指标)和领域事件发布(fire-and-forget)
type AddReviewUseCase struct {
	reviewService review.Service
	publisher     *mq.Publisher // 可为nil(未配置MQ时事件发布关闭)
}

// NewAddReviewUseCase 创建提交评价用例
func NewAddReviewUseCase(reviewService review.Service, publisher *mq.Publisher) *AddReviewUseCase {
	return &AddReviewUseCase{
		reviewService: reviewService,
		publisher:     publisher,
	}
}

// AddReviewRequest 提交评价请求DTO
type AddReviewRequest struct {
	UserID    uint // 从JWT提取
	ProductID uint
	Rating    int
	Comment   string
}

// ReviewDetail 评价DTO(包内共享)
type ReviewDetail struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	ProductID uint   `json:"product_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Nickname  string `json:"nickname,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Execute 执行提交评价
func (uc *AddReviewUseCase) Execute(ctx context.Context, req AddReviewRequest) (*ReviewDetail, error) {
	r, err := uc.reviewService.AddReview(ctx, req.UserID, req.ProductID, req.Rating, req.Comment)
	if err != nil {
		countRejected(err)
		return nil, err
	}

	if metrics.ReviewsCreatedTotal != nil {
		metrics.IncCounter(metrics.ReviewsCreatedTotal)
	}

	publishEvent(uc.publisher, "review.created", r)

	return toReviewDetail(r), nil
}

// =========================================
// 辅助函数(包内共享)
// =========================================

func toReviewDetail(r *review.Review) *ReviewDetail {
	return &ReviewDetail{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		Nickname:  r.Nickname,
		CreatedAt: r.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt: r.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

// countRejected 按失败原因记录评价被拒指标
func countRejected(err error) {
	if metrics.ReviewsRejectedTotal == nil {
		return
	}

	reason := "other"
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperrors.ErrCodeInvalidParams:
			reason = "validation"
		case apperrors.ErrCodeDuplicateReview:
			reason = "duplicate"
		case apperrors.ErrCodeProductNotFound, apperrors.ErrCodeReviewNotFound:
			reason = "not_found"
		}
	}

	metrics.IncCounterVec(metrics.ReviewsRejectedTotal, map[string]string{"reason": reason})
}

// publishEvent 发布评价领域事件(fire-and-forget)
// 发布失败只记日志,不影响请求结果
func publishEvent(publisher *mq.Publisher, action string, r *review.Review) {
	if publisher == nil {
		return
	}

	event := mq.NewReviewEvent(r.ID, r.ProductID, r.UserID, float64(r.Rating), action)
	if err := publisher.Publish(action, event); err != nil {
		log.Printf("📤 评价事件发布失败 action=%s review_id=%d: %v", action, r.ID, err)
	}
}
