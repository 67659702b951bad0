package review

import (
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// 评价领域错误定义
var (
	// ErrReviewNotFound 评价不存在
	// 注意:非本人的评价也返回此错误(404),不向其他用户暴露评价是否存在
	ErrReviewNotFound = apperrors.New(apperrors.ErrCodeReviewNotFound, "Review not found")

	// ErrDuplicateReview 重复评价(同一用户对同一商品只能评价一次)
	ErrDuplicateReview = apperrors.New(apperrors.ErrCodeDuplicateReview, "You have already reviewed this product")
)
