package product

import (
	"time"
)

// Product 商品实体(聚合根)
// DDD设计说明:
// 1. Product是商品聚合的根实体,实体书和电子书共用同一模型(IsDigital区分)
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. Rating是派生字段,只由评价聚合器(review.Service)写入,管理端不可直接修改
// 4. 电子书可携带PDF地址和内嵌分页章节内容(阅读器使用)
type Product struct {
	ID          uint
	Title       string    // 书名
	Author      string    // 作者
	Description string    // 商品描述
	Category    string    // 分类
	Language    string    // 语言(可选)
	Price       int64     // 原价(单位:分,1元=100分)
	SalePrice   int64     // 促销价(分),0表示无促销
	ImageURL    string    // 封面图片URL
	Stock       int       // 库存数量
	Rating      float64   // 平均评分(派生,保留1位小数)
	IsDigital   bool      // 是否电子书
	PDFURL      string    // PDF文件URL(电子书)
	Chapters    []Chapter // 内嵌章节内容(电子书阅读器)
	TotalPages  int       // 总页数
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Chapter 内嵌章节(值对象)
// 阅读器按PageNumber定位章节,内容随商品文档整体读写
type Chapter struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	PageNumber int    `json:"pageNumber"`
}

// NewProduct 创建新商品(工厂方法)
// 参数已由Service完成业务校验
func NewProduct(title, author, description, category, language string, price, salePrice int64, imageURL string, stock int, isDigital bool, pdfURL string, chapters []Chapter, totalPages int) *Product {
	now := time.Now()
	return &Product{
		Title:       title,
		Author:      author,
		Description: description,
		Category:    category,
		Language:    language,
		Price:       price,
		SalePrice:   salePrice,
		ImageURL:    imageURL,
		Stock:       stock,
		IsDigital:   isDigital,
		PDFURL:      pdfURL,
		Chapters:    chapters,
		TotalPages:  totalPages,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Patch 商品更新补丁(三态可选字段)
// 设计说明:
// 1. 指针为nil表示"未提供,保留原值";非nil表示"设置为该值"(包括零值)
// 2. 区分"未提供"与"显式清零",避免把价格改为0或清空描述时被静默忽略
type Patch struct {
	Title       *string
	Author      *string
	Description *string
	Category    *string
	Language    *string
	Price       *int64
	SalePrice   *int64
	ImageURL    *string
	Stock       *int
	IsDigital   *bool
	PDFURL      *string
	Chapters    *[]Chapter
	TotalPages  *int
}

// Apply 将补丁应用到商品实体
// 注意:Rating不在补丁中,评分只由评价聚合器维护
func (p *Product) Apply(patch Patch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Author != nil {
		p.Author = *patch.Author
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Language != nil {
		p.Language = *patch.Language
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.SalePrice != nil {
		p.SalePrice = *patch.SalePrice
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.IsDigital != nil {
		p.IsDigital = *patch.IsDigital
	}
	if patch.PDFURL != nil {
		p.PDFURL = *patch.PDFURL
	}
	if patch.Chapters != nil {
		p.Chapters = *patch.Chapters
	}
	if patch.TotalPages != nil {
		p.TotalPages = *patch.TotalPages
	}
	p.UpdatedAt = time.Now()
}

// EffectivePrice 当前生效价格(有促销价时取促销价)
func (p *Product) EffectivePrice() int64 {
	if p.SalePrice > 0 && p.SalePrice < p.Price {
		return p.SalePrice
	}
	return p.Price
}

// HasContent 是否携带可阅读的内嵌章节内容
func (p *Product) HasContent() bool {
	return len(p.Chapters) > 0
}
