package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmart/internal/domain/cart"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// cartRepository 购物车仓储实现(MySQL)
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(db *gorm.DB) cart.Repository {
	return &cartRepository{db: db}
}

// FindItem 查找用户购物车中的某商品条目
func (r *cartRepository) FindItem(ctx context.Context, userID, productID uint) (*cart.Item, error) {
	var model CartItemModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrItemNotFound
		}
		return nil, apperrors.Wrap(err, "Failed to find cart item")
	}

	return toCartItemEntity(&model), nil
}

// Save 保存条目(新建或更新数量)
func (r *cartRepository) Save(ctx context.Context, item *cart.Item) error {
	if item.ID == 0 {
		model := &CartItemModel{
			UserID:    item.UserID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
			return apperrors.Wrap(err, "Failed to create cart item")
		}
		item.ID = model.ID
		item.CreatedAt = model.CreatedAt
		item.UpdatedAt = model.UpdatedAt
		return nil
	}

	result := r.db.WithContext(ctx).Model(&CartItemModel{}).
		Where("id = ?", item.ID).
		Update("quantity", item.Quantity)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to update cart item")
	}

	return nil
}

// Remove 移除条目(不存在时no-op)
func (r *cartRepository) Remove(ctx context.Context, userID, productID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&CartItemModel{})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to remove cart item")
	}

	return nil
}

// cartItemRow 联表查询结果(条目 + 商品快照)
type cartItemRow struct {
	CartItemModel
	Title     string
	Author    string
	Price     int64
	SalePrice int64
	ImageURL  string
	Stock     int
}

// ListByUser 查询用户购物车(带商品快照)
func (r *cartRepository) ListByUser(ctx context.Context, userID uint) ([]*cart.Item, error) {
	var rows []cartItemRow
	err := r.db.WithContext(ctx).Model(&CartItemModel{}).
		Select("cart_items.*, products.title, products.author, products.price, products.sale_price, products.image_url, products.stock").
		Joins("JOIN products ON products.id = cart_items.product_id AND products.deleted_at IS NULL").
		Where("cart_items.user_id = ?", userID).
		Order("cart_items.created_at ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to list cart")
	}

	items := make([]*cart.Item, len(rows))
	for i := range rows {
		item := toCartItemEntity(&rows[i].CartItemModel)
		item.Title = rows[i].Title
		item.Author = rows[i].Author
		item.Price = rows[i].Price
		item.SalePrice = rows[i].SalePrice
		item.ImageURL = rows[i].ImageURL
		item.Stock = rows[i].Stock
		items[i] = item
	}

	return items, nil
}

// toCartItemEntity GORM模型 → 领域实体
func toCartItemEntity(model *CartItemModel) *cart.Item {
	return &cart.Item{
		ID:        model.ID,
		UserID:    model.UserID,
		ProductID: model.ProductID,
		Quantity:  model.Quantity,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
