package reading

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/product"
)

// GetContentUseCase 获取电子书内嵌章节内容用例(阅读器)
type GetContentUseCase struct {
	productService product.Service
}

// NewGetContentUseCase 创建内容查询用例
func NewGetContentUseCase(productService product.Service) *GetContentUseCase {
	return &GetContentUseCase{productService: productService}
}

// ChapterDTO 章节DTO
type ChapterDTO struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	PageNumber int    `json:"pageNumber"`
}

// GetContentResponse 内容查询响应DTO
type GetContentResponse struct {
	BookID     uint         `json:"book_id"`
	Chapters   []ChapterDTO `json:"chapters"`
	TotalPages int          `json:"totalPages"`
}

// Execute 执行内容查询
// 商品不存在返回404;商品没有章节内容也返回404(非电子书)
func (uc *GetContentUseCase) Execute(ctx context.Context, bookID uint) (*GetContentResponse, error) {
	chapters, totalPages, err := uc.productService.GetContent(ctx, bookID)
	if err != nil {
		return nil, err
	}

	dtos := make([]ChapterDTO, len(chapters))
	for i, c := range chapters {
		dtos[i] = ChapterDTO{
			Title:      c.Title,
			Content:    c.Content,
			PageNumber: c.PageNumber,
		}
	}

	return &GetContentResponse{
		BookID:     bookID,
		Chapters:   dtos,
		TotalPages: totalPages,
	}, nil
}
