package review

import (
	"time"
	"unicode/utf8"
)

// Review 评价实体(聚合根)
// DDD设计说明:
// 1. 一个用户对一个商品最多一条评价(数据库唯一索引保证)
// 2. Rating是1-5的整数,Comment长度10-500字符
// 3. 评价的增删改都会触发所属商品平均评分的重算
type Review struct {
	ID        uint
	UserID    uint   // 评价者用户ID
	ProductID uint   // 被评价商品ID
	Rating    int    // 评分(1-5的整数)
	Comment   string // 评价内容(10-500字符)
	Nickname  string // 评价者昵称(列表查询时联表填充,不持久化在评价表)
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewReview 创建新评价(工厂方法)
// 参数需先通过ValidateInput校验
func NewReview(userID, productID uint, rating int, comment string) *Review {
	now := time.Now()
	return &Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOwnedBy 检查评价是否属于指定用户
func (r *Review) IsOwnedBy(userID uint) bool {
	return r.UserID == userID
}

// 校验错误文案(对外API契约的一部分,客户端按原文展示)
const (
	msgInvalidRating   = "Rating must be an integer between 1 and 5"
	msgCommentTooShort = "Comment must be at least 10 characters long"
	msgCommentTooLong  = "Comment must be less than 500 characters"
)

// ValidateInput 评价输入校验
// 返回所有违规项的文案列表(一次性全部返回,而不是遇到第一个就停)
// 校验通过时返回nil
func ValidateInput(rating int, comment string) []string {
	var errs []string

	if rating < 1 || rating > 5 {
		errs = append(errs, msgInvalidRating)
	}

	// 长度按字符数计算而非字节数(中文等多字节文本按字计)
	length := utf8.RuneCountInString(comment)
	if length < 10 {
		errs = append(errs, msgCommentTooShort)
	} else if length > 500 {
		errs = append(errs, msgCommentTooLong)
	}

	return errs
}
