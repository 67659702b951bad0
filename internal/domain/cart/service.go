package cart

import (
	"context"
	"errors"

	"github.com/xiebiao/bookmart/internal/domain/product"
)

// Service 购物车领域服务接口
// 设计说明:
// 1. 加购对已有条目累加数量,累加后的总量不能超过商品当前库存
// 2. 超过库存时整个操作被拒绝,购物车保持不变(不截断到库存上限)
// 3. 库存只在加购/改量时校验,不做库存预占
type Service interface {
	// Add 加购(已有条目累加数量)
	// 累加后数量超过库存返回ErrInsufficientStock,购物车不变
	Add(ctx context.Context, userID, productID uint, quantity int) ([]*Item, error)

	// UpdateQuantity 直接设置某商品数量(仍受库存上限约束)
	// 购物车中没有该商品返回ErrItemNotFound
	UpdateQuantity(ctx context.Context, userID, productID uint, quantity int) ([]*Item, error)

	// Remove 移除条目(不存在时no-op),返回变更后的列表
	Remove(ctx context.Context, userID, productID uint) ([]*Item, error)

	// List 查询当前购物车(可能为空列表)
	List(ctx context.Context, userID uint) ([]*Item, error)
}

// service 领域服务实现
type service struct {
	repo        Repository
	productRepo product.Repository
}

// NewService 创建购物车领域服务
func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// Add 加购
func (s *service) Add(ctx context.Context, userID, productID uint, quantity int) ([]*Item, error) {
	// 1. 数量校验
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	// 2. 商品存在性校验 + 读取当前库存
	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// 3. 计算累加后的数量
	newQuantity := quantity
	item, err := s.repo.FindItem(ctx, userID, productID)
	switch {
	case err == nil:
		newQuantity = item.Quantity + quantity
	case errors.Is(err, ErrItemNotFound):
		item = NewItem(userID, productID, quantity)
	default:
		return nil, err
	}

	// 4. 库存上限校验(超出则拒绝,购物车不变)
	if newQuantity > p.Stock {
		return nil, ErrInsufficientStock
	}

	// 5. 保存
	item.Quantity = newQuantity
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}

	return s.repo.ListByUser(ctx, userID)
}

// UpdateQuantity 设置数量
func (s *service) UpdateQuantity(ctx context.Context, userID, productID uint, quantity int) ([]*Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	p, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if quantity > p.Stock {
		return nil, ErrInsufficientStock
	}

	item, err := s.repo.FindItem(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	item.Quantity = quantity
	if err := s.repo.Save(ctx, item); err != nil {
		return nil, err
	}

	return s.repo.ListByUser(ctx, userID)
}

// Remove 移除条目
func (s *service) Remove(ctx context.Context, userID, productID uint) ([]*Item, error) {
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}

	return s.repo.ListByUser(ctx, userID)
}

// List 查询购物车
func (s *service) List(ctx context.Context, userID uint) ([]*Item, error) {
	return s.repo.ListByUser(ctx, userID)
}
