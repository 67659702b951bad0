package review

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/review"
)

// ListReviewsUseCase 商品评价列表查询用例(公开接口)
// 设计说明:分页响应携带完整的翻页标记(hasNextPage/hasPrevPage),
// 前端不需要自己比较currentPage和totalPages
type ListReviewsUseCase struct {
	reviewService review.Service
}

// NewListReviewsUseCase 创建评价列表查询用例
func NewListReviewsUseCase(reviewService review.Service) *ListReviewsUseCase {
	return &ListReviewsUseCase{reviewService: reviewService}
}

// ListReviewsRequest 评价列表请求DTO
type ListReviewsRequest struct {
	ProductID uint
	Page      int // 默认1
	Limit     int // 默认10
}

// ListReviewsResponse 评价列表响应DTO
type ListReviewsResponse struct {
	Reviews      []ReviewDetail `json:"reviews"`
	CurrentPage  int            `json:"currentPage"`
	TotalPages   int            `json:"totalPages"`
	TotalReviews int64          `json:"totalReviews"`
	HasNextPage  bool           `json:"hasNextPage"`
	HasPrevPage  bool           `json:"hasPrevPage"`
}

// Execute 执行评价列表查询
func (uc *ListReviewsUseCase) Execute(ctx context.Context, req ListReviewsRequest) (*ListReviewsResponse, error) {
	// 参数默认值(page默认1, limit默认10)
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 10
	}

	reviews, total, err := uc.reviewService.ListByProduct(ctx, req.ProductID, req.Page, req.Limit)
	if err != nil {
		return nil, err
	}

	list := make([]ReviewDetail, len(reviews))
	for i, r := range reviews {
		list[i] = *toReviewDetail(r)
	}

	totalPages := int(total) / req.Limit
	if int(total)%req.Limit != 0 {
		totalPages++
	}

	return &ListReviewsResponse{
		Reviews:      list,
		CurrentPage:  req.Page,
		TotalPages:   totalPages,
		TotalReviews: total,
		HasNextPage:  req.Page < totalPages,
		HasPrevPage:  req.Page > 1,
	}, nil
}
