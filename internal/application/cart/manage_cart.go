package cart

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/cart"
)

// ManageCartUseCase 购物车管理用例
// 设计说明:加购/改量/移除都返回变更后的完整购物车,
// 数量上限(商品库存)的校验在领域服务中
type ManageCartUseCase struct {
	cartService cart.Service
}

// NewManageCartUseCase 创建购物车管理用例
func NewManageCartUseCase(cartService cart.Service) *ManageCartUseCase {
	return &ManageCartUseCase{cartService: cartService}
}

// CartItem 购物车条目DTO
type CartItem struct {
	ProductID uint   `json:"product_id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Price     int64  `json:"price"`      // 分
	SalePrice int64  `json:"sale_price"` // 分
	ImageURL  string `json:"image_url"`
	Quantity  int    `json:"quantity"`
	Stock     int    `json:"stock"` // 当前库存(前端用来限制加购按钮)
	Subtotal  int64  `json:"subtotal"`
}

// CartResponse 购物车响应DTO
type CartResponse struct {
	Items []CartItem `json:"items"`
	Count int        `json:"count"`
	Total int64      `json:"total"` // 分
}

// Add 加购(已有条目累加数量,超库存拒绝)
func (uc *ManageCartUseCase) Add(ctx context.Context, userID, productID uint, quantity int) (*CartResponse, error) {
	items, err := uc.cartService.Add(ctx, userID, productID, quantity)
	if err != nil {
		return nil, err
	}
	return toCartResponse(items), nil
}

// UpdateQuantity 设置数量(仍受库存上限约束)
func (uc *ManageCartUseCase) UpdateQuantity(ctx context.Context, userID, productID uint, quantity int) (*CartResponse, error) {
	items, err := uc.cartService.UpdateQuantity(ctx, userID, productID, quantity)
	if err != nil {
		return nil, err
	}
	return toCartResponse(items), nil
}

// Remove 移除条目(不存在时no-op)
func (uc *ManageCartUseCase) Remove(ctx context.Context, userID, productID uint) (*CartResponse, error) {
	items, err := uc.cartService.Remove(ctx, userID, productID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(items), nil
}

// List 查询当前购物车
func (uc *ManageCartUseCase) List(ctx context.Context, userID uint) (*CartResponse, error) {
	items, err := uc.cartService.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(items), nil
}

// toCartResponse 领域实体 → DTO
// 小计/总计使用生效价格(有促销价时取促销价)
func toCartResponse(items []*cart.Item) *CartResponse {
	list := make([]CartItem, len(items))
	var total int64
	for i, item := range items {
		price := item.Price
		if item.SalePrice > 0 && item.SalePrice < item.Price {
			price = item.SalePrice
		}
		subtotal := price * int64(item.Quantity)
		total += subtotal

		list[i] = CartItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Author:    item.Author,
			Price:     item.Price,
			SalePrice: item.SalePrice,
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
			Stock:     item.Stock,
			Subtotal:  subtotal,
		}
	}

	return &CartResponse{
		Items: list,
		Count: len(list),
		Total: total,
	}
}
