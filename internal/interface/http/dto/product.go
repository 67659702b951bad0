package dto

// AddProductRequest HTTP层新增商品请求(管理端)
type AddProductRequest struct {
	Title       string       `json:"title" binding:"required,max=200"`
	Author      string       `json:"author" binding:"required,max=100"`
	Description string       `json:"description" binding:"required"`
	Category    string       `json:"category" binding:"required,max=50"`
	Language    string       `json:"language" binding:"omitempty,max=50"`
	Price       int64        `json:"price" binding:"gte=0"`      // 分
	SalePrice   int64        `json:"sale_price" binding:"gte=0"` // 分
	ImageURL    string       `json:"image_url" binding:"omitempty,max=500"`
	Stock       int          `json:"stock" binding:"gte=0"`
	IsDigital   bool         `json:"is_digital"`
	PDFURL      string       `json:"pdf_url" binding:"omitempty,max=500"`
	Chapters    []ChapterDTO `json:"chapters"`
	TotalPages  int          `json:"total_pages" binding:"gte=0"`
}

// EditProductRequest HTTP层编辑商品请求(三态补丁)
// 字段全部是指针:JSON里缺席的字段解析后为nil(保留原值),
// 显式出现的字段覆盖原值——包括0和空字符串
type EditProductRequest struct {
	Title       *string       `json:"title" binding:"omitempty,max=200"`
	Author      *string       `json:"author" binding:"omitempty,max=100"`
	Description *string       `json:"description"`
	Category    *string       `json:"category" binding:"omitempty,max=50"`
	Language    *string       `json:"language" binding:"omitempty,max=50"`
	Price       *int64        `json:"price" binding:"omitempty,gte=0"`
	SalePrice   *int64        `json:"sale_price" binding:"omitempty,gte=0"`
	ImageURL    *string       `json:"image_url" binding:"omitempty,max=500"`
	Stock       *int          `json:"stock" binding:"omitempty,gte=0"`
	IsDigital   *bool         `json:"is_digital"`
	PDFURL      *string       `json:"pdf_url" binding:"omitempty,max=500"`
	Chapters    *[]ChapterDTO `json:"chapters"`
	TotalPages  *int          `json:"total_pages" binding:"omitempty,gte=0"`
}

// ChapterDTO 章节
type ChapterDTO struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	PageNumber int    `json:"pageNumber"`
}

// ListProductsQuery 商品列表查询参数
type ListProductsQuery struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Keyword  string `form:"keyword"`
	Category string `form:"category"`
	SortBy   string `form:"sort_by"` // price_asc | price_desc | rating_desc | created_at_desc
}
