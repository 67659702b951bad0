package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmart/internal/domain/product"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// productRepository 商品仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/product/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 软删除由GORM的DeletedAt自动处理(查询自动过滤已删除行)
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) product.Repository {
	return &productRepository{db: db}
}

// Create 创建商品
func (r *productRepository) Create(ctx context.Context, p *product.Product) error {
	model := toProductModel(p)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "Failed to create product")
	}

	// 回填自增ID
	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByID 根据ID查找商品
func (r *productRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	var model ProductModel
	err := r.db.WithContext(ctx).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "Failed to find product")
	}

	return toProductEntity(&model), nil
}

// Update 更新商品(全量保存)
func (r *productRepository) Update(ctx context.Context, p *product.Product) error {
	model := toProductModel(p)
	model.ID = p.ID
	model.Rating = p.Rating
	model.CreatedAt = p.CreatedAt

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return apperrors.Wrap(err, "Failed to update product")
	}

	p.UpdatedAt = model.UpdatedAt
	return nil
}

// UpdateRating 只更新评分字段(评价聚合器专用)
// 单条UPDATE语句,不触碰商品的其他字段
func (r *productRepository) UpdateRating(ctx context.Context, id uint, rating float64) error {
	result := r.db.WithContext(ctx).Model(&ProductModel{}).
		Where("id = ?", id).
		Update("rating", rating)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to update product rating")
	}

	if result.RowsAffected == 0 {
		// 商品可能被并发删除,或评分未变化;再查一次确定原因
		var model ProductModel
		if err := r.db.WithContext(ctx).Select("id").First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return product.ErrProductNotFound
			}
			return apperrors.Wrap(err, "Failed to find product")
		}
	}

	return nil
}

// Delete 删除商品(软删除)
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&ProductModel{}, id)

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to delete product")
	}

	if result.RowsAffected == 0 {
		return product.ErrProductNotFound
	}

	return nil
}

// List 分页查询商品列表
func (r *productRepository) List(ctx context.Context, params product.ListParams) ([]*product.Product, int64, error) {
	var models []ProductModel
	var total int64

	query := r.db.WithContext(ctx).Model(&ProductModel{})

	// 关键词搜索(搜索标题、作者)
	if params.Keyword != "" {
		keyword := "%" + params.Keyword + "%"
		query = query.Where("title LIKE ? OR author LIKE ?", keyword, keyword)
	}

	// 分类过滤
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	// 查询总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "Failed to count products")
	}

	// 排序
	switch params.SortBy {
	case "price_asc":
		query = query.Order("price ASC")
	case "price_desc":
		query = query.Order("price DESC")
	case "rating_desc":
		query = query.Order("rating DESC")
	case "created_at_desc":
		query = query.Order("created_at DESC")
	default:
		query = query.Order("created_at DESC") // 默认按创建时间降序
	}

	// 分页
	offset := (params.Page - 1) * params.PageSize
	query = query.Limit(params.PageSize).Offset(offset)

	if err := query.Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "Failed to list products")
	}

	// 转换为领域实体
	products := make([]*product.Product, len(models))
	for i := range models {
		products[i] = toProductEntity(&models[i])
	}

	return products, total, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toProductModel 领域实体 → GORM模型(不含ID/Rating,由调用方按需回填)
func toProductModel(p *product.Product) *ProductModel {
	return &ProductModel{
		Title:       p.Title,
		Author:      p.Author,
		Description: p.Description,
		Category:    p.Category,
		Language:    p.Language,
		Price:       p.Price,
		SalePrice:   p.SalePrice,
		ImageURL:    p.ImageURL,
		Stock:       p.Stock,
		IsDigital:   p.IsDigital,
		PDFURL:      p.PDFURL,
		Chapters:    p.Chapters,
		TotalPages:  p.TotalPages,
	}
}

// toProductEntity GORM模型 → 领域实体
func toProductEntity(model *ProductModel) *product.Product {
	return &product.Product{
		ID:          model.ID,
		Title:       model.Title,
		Author:      model.Author,
		Description: model.Description,
		Category:    model.Category,
		Language:    model.Language,
		Price:       model.Price,
		SalePrice:   model.SalePrice,
		ImageURL:    model.ImageURL,
		Stock:       model.Stock,
		Rating:      model.Rating,
		IsDigital:   model.IsDigital,
		PDFURL:      model.PDFURL,
		Chapters:    model.Chapters,
		TotalPages:  model.TotalPages,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
