package cart

import (
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrInsufficientStock 数量超过商品库存
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "Requested quantity exceeds available stock")

	// ErrInvalidQuantity 无效的数量
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "Quantity must be greater than 0")

	// ErrItemNotFound 购物车中没有该商品
	ErrItemNotFound = apperrors.New(apperrors.ErrCodeNotFound, "Item not found in cart")
)
