package wishlist

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/product"
)

// Service 心愿单领域服务接口
// 设计说明:纯集合语义——加入是幂等的(重复加入不报错不重复),
// 移除不存在的条目是no-op.每个变更操作都返回变更后的完整列表
type Service interface {
	// Add 加入心愿单(幂等),返回变更后的列表
	// 商品不存在返回404
	Add(ctx context.Context, userID, productID uint) ([]*Item, error)

	// Remove 从心愿单移除(不存在时no-op),返回变更后的列表
	Remove(ctx context.Context, userID, productID uint) ([]*Item, error)

	// List 查询当前心愿单(可能为空列表)
	List(ctx context.Context, userID uint) ([]*Item, error)
}

// service 领域服务实现
type service struct {
	repo        Repository
	productRepo product.Repository
}

// NewService 创建心愿单领域服务
func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// Add 加入心愿单
func (s *service) Add(ctx context.Context, userID, productID uint) ([]*Item, error) {
	// 1. 商品存在性校验
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	// 2. 加入(重复加入由Repository静默吸收)
	if err := s.repo.Add(ctx, NewItem(userID, productID)); err != nil {
		return nil, err
	}

	// 3. 返回变更后的列表
	return s.repo.ListByUser(ctx, userID)
}

// Remove 从心愿单移除
func (s *service) Remove(ctx context.Context, userID, productID uint) ([]*Item, error) {
	// 移除不存在的条目是no-op,不报错
	if err := s.repo.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}

	return s.repo.ListByUser(ctx, userID)
}

// List 查询心愿单
func (s *service) List(ctx context.Context, userID uint) ([]*Item, error) {
	return s.repo.ListByUser(ctx, userID)
}
