package product

import (
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// 商品领域错误定义
var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = apperrors.New(apperrors.ErrCodeProductNotFound, "Product not found")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "Price must not be negative")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "Stock must not be negative")

	// ErrMissingFields 必填字段缺失
	ErrMissingFields = apperrors.New(apperrors.ErrCodeInvalidParams, "Title, author, description and category are required")

	// ErrNoContent 商品没有内嵌章节内容(非电子书或未上传)
	ErrNoContent = apperrors.New(apperrors.ErrCodeNotFound, "Book content not available")
)
