package product

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/product"
)

// EditProductUseCase 编辑商品用例(管理端,三态补丁语义)
// 设计说明:
// 1. 请求DTO的字段全部是指针:nil表示"未提供,保留原值",
//    非nil表示"设置为该值"——包括0和空字符串
// 2. 区分"未提供"与"显式清零",把价格改成0或清空促销价不会被静默忽略
type EditProductUseCase struct {
	productService product.Service
}

// NewEditProductUseCase 创建编辑商品用例
func NewEditProductUseCase(productService product.Service) *EditProductUseCase {
	return &EditProductUseCase{productService: productService}
}

// EditProductRequest 编辑商品请求DTO(三态可选字段)
type EditProductRequest struct {
	ID          uint
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
	Chapters    *[]ChapterDTO
	TotalPages  *int
}

// Execute 执行编辑商品
func (uc *EditProductUseCase) Execute(ctx context.Context, req EditProductRequest) (*ProductDetail, error) {
	patch := product.Patch{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Category:    req.Category,
		Language:    req.Language,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsDigital:   req.IsDigital,
		PDFURL:      req.PDFURL,
		TotalPages:  req.TotalPages,
	}

	if req.Chapters != nil {
		chapters := toChapters(*req.Chapters)
		patch.Chapters = &chapters
	}

	updated, err := uc.productService.EditProduct(ctx, req.ID, patch)
	if err != nil {
		return nil, err
	}

	return toProductDetail(updated), nil
}
