package product

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/product"
)

// GetProductUseCase 商品详情查询用例(公开接口)
type GetProductUseCase struct {
	productService product.Service
}

// NewGetProductUseCase 创建详情查询用例
func NewGetProductUseCase(productService product.Service) *GetProductUseCase {
	return &GetProductUseCase{productService: productService}
}

// Execute 执行详情查询
// 商品不存在时返回ErrProductNotFound(404)
func (uc *GetProductUseCase) Execute(ctx context.Context, id uint) (*ProductDetail, error) {
	p, err := uc.productService.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := toProductDetail(p)
	// 详情接口不返回章节正文(阅读器走专门的content接口)
	detail.Chapters = nil

	return detail, nil
}

// DeleteProductUseCase 删除商品用例(管理端,软删除)
type DeleteProductUseCase struct {
	productService product.Service
}

// NewDeleteProductUseCase 创建删除商品用例
func NewDeleteProductUseCase(productService product.Service) *DeleteProductUseCase {
	return &DeleteProductUseCase{productService: productService}
}

// Execute 执行删除商品
func (uc *DeleteProductUseCase) Execute(ctx context.Context, id uint) error {
	return uc.productService.DeleteProduct(ctx, id)
}
