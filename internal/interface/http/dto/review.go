package dto

// AddReviewRequest HTTP层提交评价请求
// 注意:rating/comment的业务校验(1-5整数、10-500字符)在领域层完成,
// 违规项以结构化文案列表返回;这里只做最宽松的绑定
type AddReviewRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// UpdateReviewRequest HTTP层修改评价请求
type UpdateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ListReviewsQuery 评价列表查询参数
type ListReviewsQuery struct {
	Page  int `form:"page"`  // 默认1
	Limit int `form:"limit"` // 默认10
}
