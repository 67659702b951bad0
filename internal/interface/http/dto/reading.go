package dto

// UpdateProgressRequest HTTP层更新阅读进度请求
// 全量覆盖语义:三个字段整体替换,客户端负责推导章节号、累计时长
type UpdateProgressRequest struct {
	CurrentPage     int `json:"currentPage" binding:"required,gte=1"`
	LastReadChapter int `json:"lastReadChapter" binding:"gte=0"`
	ReadingTime     int `json:"readingTime" binding:"gte=0"` // 累计分钟
}

// AddWishlistRequest HTTP层加入心愿单请求
type AddWishlistRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// AddCartRequest HTTP层加购请求
type AddCartRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gte=1"`
}

// UpdateCartQuantityRequest HTTP层购物车改量请求
type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,gte=1"`
}
