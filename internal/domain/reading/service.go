package reading

import (
	"context"
	"errors"
)

// Service 阅读进度领域服务接口
// 设计说明:
// 1. GetOrCreate懒创建进度记录;Update在记录不存在时也会创建
// 2. MarkCompleted要求记录已存在,不存在返回404
//    (与Update的自动创建不一致,这是沿用已有客户端契约的刻意决定,
//    客户端总是先打开阅读器(触发GetOrCreate)再标记读完)
type Service interface {
	// GetOrCreate 获取阅读进度,不存在时创建默认进度
	GetOrCreate(ctx context.Context, userID, bookID uint) (*Progress, error)

	// Update 全量覆盖进度的三个可写字段(currentPage, lastReadChapter, readingTime)
	// 记录不存在时先创建再覆盖
	Update(ctx context.Context, userID, bookID uint, currentPage, lastReadChapter, readingTime int) (*Progress, error)

	// MarkCompleted 标记读完
	// 进度记录不存在时返回ErrProgressNotFound
	MarkCompleted(ctx context.Context, userID, bookID uint) (*Progress, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建阅读进度领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// GetOrCreate 获取或创建阅读进度
func (s *service) GetOrCreate(ctx context.Context, userID, bookID uint) (*Progress, error) {
	// 1. 查找已有进度
	p, err := s.repo.FindByUserAndBook(ctx, userID, bookID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrProgressNotFound) {
		return nil, err
	}

	// 2. 不存在,创建默认进度
	// 并发的两次首次访问会在唯一索引上竞争,失败方重新读取胜者创建的记录
	p = NewProgress(userID, bookID)
	if err := s.repo.Create(ctx, p); err != nil {
		if existing, findErr := s.repo.FindByUserAndBook(ctx, userID, bookID); findErr == nil {
			return existing, nil
		}
		return nil, err
	}

	return p, nil
}

// Update 全量覆盖阅读进度
func (s *service) Update(ctx context.Context, userID, bookID uint, currentPage, lastReadChapter, readingTime int) (*Progress, error) {
	// 1. 参数校验
	if currentPage < 1 {
		return nil, ErrInvalidPage
	}
	if readingTime < 0 {
		return nil, ErrInvalidReadingTime
	}

	// 2. 获取或创建进度记录
	p, err := s.GetOrCreate(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	// 3. 全量覆盖三个可写字段(不是增量累加)
	p.Overwrite(currentPage, lastReadChapter, readingTime)

	// 4. 持久化
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// MarkCompleted 标记读完
func (s *service) MarkCompleted(ctx context.Context, userID, bookID uint) (*Progress, error) {
	// 记录必须已存在(此路径不懒创建)
	p, err := s.repo.FindByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	p.MarkCompleted()
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
