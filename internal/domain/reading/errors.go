package reading

import (
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// 阅读进度领域错误定义
var (
	// ErrProgressNotFound 阅读进度不存在
	ErrProgressNotFound = apperrors.New(apperrors.ErrCodeProgressNotFound, "Reading progress not found")

	// ErrInvalidPage 无效的页码
	ErrInvalidPage = apperrors.New(apperrors.ErrCodeInvalidParams, "Current page must be at least 1")

	// ErrInvalidReadingTime 无效的阅读时长
	ErrInvalidReadingTime = apperrors.New(apperrors.ErrCodeInvalidParams, "Reading time must not be negative")
)
