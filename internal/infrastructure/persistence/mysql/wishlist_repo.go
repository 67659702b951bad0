package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmart/internal/domain/wishlist"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// wishlistRepository 心愿单仓储实现(MySQL)
// 设计说明:幂等语义在这一层落地——重复加入被唯一索引拦下后静默吸收,
// 删除不存在的条目RowsAffected=0也不报错
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository 创建心愿单仓储
func NewWishlistRepository(db *gorm.DB) wishlist.Repository {
	return &wishlistRepository{db: db}
}

// Add 加入心愿单(已存在时no-op)
func (r *wishlistRepository) Add(ctx context.Context, item *wishlist.Item) error {
	model := &WishlistItemModel{
		UserID:    item.UserID,
		ProductID: item.ProductID,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		// 已在心愿单中,幂等no-op
		if isDuplicateError(err) {
			return nil
		}
		return apperrors.Wrap(err, "Failed to add to wishlist")
	}

	item.ID = model.ID
	item.AddedAt = model.CreatedAt

	return nil
}

// Remove 从心愿单移除(不存在时no-op)
func (r *wishlistRepository) Remove(ctx context.Context, userID, productID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&WishlistItemModel{})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to remove from wishlist")
	}

	// RowsAffected=0说明本来就不在心愿单里,no-op
	return nil
}

// wishlistItemRow 联表查询结果(条目 + 商品快照)
type wishlistItemRow struct {
	WishlistItemModel
	Title     string
	Author    string
	Price     int64
	SalePrice int64
	ImageURL  string
}

// ListByUser 查询用户心愿单(按加入时间排序,带商品快照)
func (r *wishlistRepository) ListByUser(ctx context.Context, userID uint) ([]*wishlist.Item, error) {
	var rows []wishlistItemRow
	err := r.db.WithContext(ctx).Model(&WishlistItemModel{}).
		Select("wishlist_items.*, products.title, products.author, products.price, products.sale_price, products.image_url").
		Joins("JOIN products ON products.id = wishlist_items.product_id AND products.deleted_at IS NULL").
		Where("wishlist_items.user_id = ?", userID).
		Order("wishlist_items.created_at ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to list wishlist")
	}

	items := make([]*wishlist.Item, len(rows))
	for i := range rows {
		items[i] = &wishlist.Item{
			ID:        rows[i].ID,
			UserID:    rows[i].UserID,
			ProductID: rows[i].ProductID,
			AddedAt:   rows[i].CreatedAt,
			Title:     rows[i].Title,
			Author:    rows[i].Author,
			Price:     rows[i].Price,
			SalePrice: rows[i].SalePrice,
			ImageURL:  rows[i].ImageURL,
		}
	}

	return items, nil
}
