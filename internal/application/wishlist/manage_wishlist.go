package wishlist

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/wishlist"
)

// ManageWishlistUseCase 心愿单管理用例
// 设计说明:三个操作共享同一份DTO转换,合并为一个用例结构
// (加入/移除都返回变更后的完整列表,前端直接替换本地状态)
type ManageWishlistUseCase struct {
	wishlistService wishlist.Service
}

// NewManageWishlistUseCase 创建心愿单管理用例
func NewManageWishlistUseCase(wishlistService wishlist.Service) *ManageWishlistUseCase {
	return &ManageWishlistUseCase{wishlistService: wishlistService}
}

// WishlistItem 心愿单条目DTO
type WishlistItem struct {
	ProductID uint   `json:"product_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Price     int64  `json:"price"`      // 分
	SalePrice int64  `json:"sale_price"` // 分
	ImageURL  string `json:"image_url"`
	AddedAt   string `json:"added_at"`
}

// WishlistResponse 心愿单响应DTO
type WishlistResponse struct {
	Items []WishlistItem `json:"items"`
	Count int            `json:"count"`
}

// Add 加入心愿单(幂等:重复加入返回不变的列表)
func (uc *ManageWishlistUseCase) Add(ctx context.Context, userID, productID uint) (*WishlistResponse, error) {
	items, err := uc.wishlistService.Add(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	return toWishlistResponse(items), nil
}

// Remove 从心愿单移除(不存在时no-op)
func (uc *ManageWishlistUseCase) Remove(ctx context.Context, userID, productID uint) (*WishlistResponse, error) {
	items, err := uc.wishlistService.Remove(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	return toWishlistResponse(items), nil
}

// List 查询当前心愿单
func (uc *ManageWishlistUseCase) List(ctx context.Context, userID uint) (*WishlistResponse, error) {
	items, err := uc.wishlistService.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toWishlistResponse(items), nil
}

// toWishlistResponse 领域实体 → DTO
func toWishlistResponse(items []*wishlist.Item) *WishlistResponse {
	list := make([]WishlistItem, len(items))
	for i, item := range items {
		list[i] = WishlistItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Author:    item.Author,
			Price:     item.Price,
			SalePrice: item.SalePrice,
			ImageURL:  item.ImageURL,
			AddedAt:   item.AddedAt.Format("2006-01-02 15:04:05"),
		}
	}

	return &WishlistResponse{
		Items: list,
		Count: len(list),
	}
}
