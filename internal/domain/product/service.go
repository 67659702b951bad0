package product

import (
	"context"
	"strings"
)

// Service 商品领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验(必填字段、价格/库存范围)
// 2. Rating字段不经过本服务修改,由评价聚合器单独维护
type Service interface {
	// AddProduct 新增商品(管理端)
	// 业务规则:
	// - 标题/作者/描述/分类必填
	// - 价格、促销价必须>=0
	// - 库存必须>=0
	AddProduct(ctx context.Context, p *Product) (*Product, error)

	// GetProduct 根据ID获取商品详情
	GetProduct(ctx context.Context, id uint) (*Product, error)

	// EditProduct 更新商品(管理端,三态补丁语义)
	// 未提供的字段保留原值,显式提供的字段(包括零值)覆盖原值
	EditProduct(ctx context.Context, id uint, patch Patch) (*Product, error)

	// DeleteProduct 删除商品(管理端,软删除)
	DeleteProduct(ctx context.Context, id uint) error

	// ListProducts 分页查询商品列表(公开接口)
	ListProducts(ctx context.Context, params ListParams) ([]*Product, int64, error)

	// GetContent 获取电子书内嵌章节内容(阅读器)
	// 商品不存在返回ErrProductNotFound,没有章节内容返回ErrNoContent
	GetContent(ctx context.Context, id uint) ([]Chapter, int, error)

	// AttachPDF 上传成功后把PDF地址挂到商品上
	AttachPDF(ctx context.Context, id uint, pdfURL string) (*Product, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建商品领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// AddProduct 新增商品
func (s *service) AddProduct(ctx context.Context, p *Product) (*Product, error) {
	// 1. 必填字段校验
	if strings.TrimSpace(p.Title) == "" ||
		strings.TrimSpace(p.Author) == "" ||
		strings.TrimSpace(p.Description) == "" ||
		strings.TrimSpace(p.Category) == "" {
		return nil, ErrMissingFields
	}

	// 2. 价格校验(允许0,免费电子书)
	if p.Price < 0 || p.SalePrice < 0 {
		return nil, ErrInvalidPrice
	}

	// 3. 库存校验
	if p.Stock < 0 {
		return nil, ErrInvalidStock
	}

	// 4. 新商品评分固定为0(尚无评价)
	p.Rating = 0

	// 5. 持久化
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// GetProduct 根据ID获取商品
func (s *service) GetProduct(ctx context.Context, id uint) (*Product, error) {
	return s.repo.FindByID(ctx, id)
}

// EditProduct 更新商品(三态补丁)
func (s *service) EditProduct(ctx context.Context, id uint, patch Patch) (*Product, error) {
	// 1. 补丁字段校验(只校验显式提供的字段)
	if patch.Price != nil && *patch.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if patch.SalePrice != nil && *patch.SalePrice < 0 {
		return nil, ErrInvalidPrice
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return nil, ErrInvalidStock
	}

	// 2. 查询商品(不存在返回404)
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3. 应用补丁
	p.Apply(patch)

	// 4. 应用后的必填字段不能被清空
	if strings.TrimSpace(p.Title) == "" ||
		strings.TrimSpace(p.Author) == "" ||
		strings.TrimSpace(p.Description) == "" ||
		strings.TrimSpace(p.Category) == "" {
		return nil, ErrMissingFields
	}

	// 5. 持久化
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// DeleteProduct 删除商品
func (s *service) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ListProducts 分页查询商品列表
func (s *service) ListProducts(ctx context.Context, params ListParams) ([]*Product, int64, error) {
	return s.repo.List(ctx, params)
}

// GetContent 获取电子书章节内容
func (s *service) GetContent(ctx context.Context, id uint) ([]Chapter, int, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	if !p.HasContent() {
		return nil, 0, ErrNoContent
	}

	return p.Chapters, p.TotalPages, nil
}

// AttachPDF 挂载PDF地址
func (s *service) AttachPDF(ctx context.Context, id uint, pdfURL string) (*Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.PDFURL = pdfURL
	p.IsDigital = true
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
