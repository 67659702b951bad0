package product

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/product"
)

// AddProductUseCase 新增商品用例(管理端)
type AddProductUseCase struct {
	productService product.Service
}

// NewAddProductUseCase 创建新增商品用例
func NewAddProductUseCase(productService product.Service) *AddProductUseCase {
	return &AddProductUseCase{productService: productService}
}

// AddProductRequest 新增商品请求DTO
type AddProductRequest struct {
	Title       string
	Author      string
	Description string
	Category    string
	Language    string
	Price       int64 // 分
	SalePrice   int64 // 分
	ImageURL    string
	Stock       int
	IsDigital   bool
	PDFURL      string
	Chapters    []ChapterDTO
	TotalPages  int
}

// ChapterDTO 章节DTO
type ChapterDTO struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	PageNumber int    `json:"pageNumber"`
}

// ProductDetail 商品详情DTO(包内共享)
type ProductDetail struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Author      string       `json:"author"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Language    string       `json:"language,omitempty"`
	Price       int64        `json:"price"`      // 分
	SalePrice   int64        `json:"sale_price"` // 分
	ImageURL    string       `json:"image_url"`
	Stock       int          `json:"stock"`
	Rating      float64      `json:"rating"`
	IsDigital   bool         `json:"is_digital"`
	PDFURL      string       `json:"pdf_url,omitempty"`
	TotalPages  int          `json:"total_pages,omitempty"`
	Chapters    []ChapterDTO `json:"chapters,omitempty"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
}

// Execute 执行新增商品
func (uc *AddProductUseCase) Execute(ctx context.Context, req AddProductRequest) (*ProductDetail, error) {
	p := product.NewProduct(
		req.Title, req.Author, req.Description, req.Category, req.Language,
		req.Price, req.SalePrice, req.ImageURL, req.Stock,
		req.IsDigital, req.PDFURL, toChapters(req.Chapters), req.TotalPages,
	)

	created, err := uc.productService.AddProduct(ctx, p)
	if err != nil {
		return nil, err
	}

	return toProductDetail(created), nil
}

// =========================================
// 辅助函数:DTO转换(包内共享)
// =========================================

func toChapters(dtos []ChapterDTO) []product.Chapter {
	if dtos == nil {
		return nil
	}
	chapters := make([]product.Chapter, len(dtos))
	for i, c := range dtos {
		chapters[i] = product.Chapter{
			Title:      c.Title,
			Content:    c.Content,
			PageNumber: c.PageNumber,
		}
	}
	return chapters
}

func toChapterDTOs(chapters []product.Chapter) []ChapterDTO {
	if chapters == nil {
		return nil
	}
	dtos := make([]ChapterDTO, len(chapters))
	for i, c := range chapters {
		dtos[i] = ChapterDTO{
			Title:      c.Title,
			Content:    c.Content,
			PageNumber: c.PageNumber,
		}
	}
	return dtos
}

func toProductDetail(p *product.Product) *ProductDetail {
	return &ProductDetail{
		ID:          p.ID,
		Title:       p.Title,
		Author:      p.Author,
		Description: p.Description,
		Category:    p.Category,
		Language:    p.Language,
		Price:       p.Price,
		SalePrice:   p.SalePrice,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		Rating:      p.Rating,
		IsDigital:   p.IsDigital,
		PDFURL:      p.PDFURL,
		TotalPages:  p.TotalPages,
		Chapters:    toChapterDTOs(p.Chapters),
		CreatedAt:   p.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
