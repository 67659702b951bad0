package review

import (
	"context"
	"log"
	"math"
	"strings"
	"time"

	"github.com/xiebiao/bookmart/internal/domain/product"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
	"github.com/xiebiao/bookmart/pkg/metrics"
)

// Service 评价领域服务接口(评价聚合器)
// 设计说明:
// 1. 评价的每次增删改都同步重算所属商品的平均评分
// 2. 评价写入与评分重算不在同一事务:两步之间崩溃会留下陈旧评分,
//    下次该商品评价变更时自愈.不回滚,不重试
// 3. 两个并发的重算可能交错(读-算-写竞争),评分短暂反映旧的评价集,
//    是可接受的不一致窗口,不是正确性问题
type Service interface {
	// AddReview 提交评价
	// 业务规则:
	// - rating必须是1-5的整数,comment长度10-500(校验失败返回全部违规文案)
	// - 商品必须存在(404)
	// - 同一用户对同一商品只能评价一次(重复返回409)
	AddReview(ctx context.Context, userID, productID uint, rating int, comment string) (*Review, error)

	// UpdateReview 修改自己的评价
	// 按(reviewID, userID)查找,非本人的评价返回ErrReviewNotFound(404)
	UpdateReview(ctx context.Context, reviewID, userID uint, rating int, comment string) (*Review, error)

	// DeleteReview 删除自己的评价
	// 所有权规则与UpdateReview相同
	DeleteReview(ctx context.Context, reviewID, userID uint) error

	// ListByProduct 分页查询商品评价(公开接口,最新在前)
	// 商品不存在返回ErrProductNotFound(404)
	ListByProduct(ctx context.Context, productID uint, page, limit int) ([]*Review, int64, error)
}

// service 领域服务实现
type service struct {
	repo        Repository
	productRepo product.Repository
}

// NewService 创建评价领域服务
// 依赖商品仓储:校验商品存在性、回写派生评分
func NewService(repo Repository, productRepo product.Repository) Service {
	return &service{repo: repo, productRepo: productRepo}
}

// AddReview 提交评价
func (s *service) AddReview(ctx context.Context, userID, productID uint, rating int, comment string) (*Review, error) {
	// 1. 输入校验(所有违规项一次性返回)
	comment = strings.TrimSpace(comment)
	if errs := ValidateInput(rating, comment); errs != nil {
		return nil, apperrors.NewValidation(errs)
	}

	// 2. 商品存在性校验
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	// 3. 创建评价(唯一索引冲突由Repository转换为ErrDuplicateReview)
	// 注意:不在这里先查再插,并发的两次提交会在唯一索引上分出胜负,
	// 失败方收到409而不是破坏数据
	r := NewReview(userID, productID, rating, comment)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	// 4. 同步重算商品评分(评价已落库,重算失败不回滚)
	if err := s.recomputeRating(ctx, productID); err != nil {
		return nil, err
	}

	return r, nil
}

// UpdateReview 修改评价
func (s *service) UpdateReview(ctx context.Context, reviewID, userID uint, rating int, comment string) (*Review, error) {
	// 1. 输入校验
	comment = strings.TrimSpace(comment)
	if errs := ValidateInput(rating, comment); errs != nil {
		return nil, apperrors.NewValidation(errs)
	}

	// 2. 按(ID, 用户)查找(所有权下沉到查询条件)
	r, err := s.repo.FindByIDAndUser(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	// 3. 更新内容
	r.Rating = rating
	r.Comment = comment
	r.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	// 4. 同步重算商品评分
	if err := s.recomputeRating(ctx, r.ProductID); err != nil {
		return nil, err
	}

	return r, nil
}

// DeleteReview 删除评价
func (s *service) DeleteReview(ctx context.Context, reviewID, userID uint) error {
	// 1. 按(ID, 用户)查找
	r, err := s.repo.FindByIDAndUser(ctx, reviewID, userID)
	if err != nil {
		return err
	}

	// 2. 删除
	if err := s.repo.Delete(ctx, r.ID); err != nil {
		return err
	}

	// 3. 同步重算商品评分(删完最后一条时评分归0)
	return s.recomputeRating(ctx, r.ProductID)
}

// ListByProduct 分页查询商品评价
func (s *service) ListByProduct(ctx context.Context, productID uint, page, limit int) ([]*Review, int64, error) {
	// 1. 商品存在性校验(不存在的商品返回404而不是空列表)
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return nil, 0, err
	}

	// 2. 参数默认值(page默认1, limit默认10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return s.repo.ListByProduct(ctx, productID, page, limit)
}

// =========================================
// 评分聚合器
// =========================================

// recomputeRating 重算商品平均评分
// 算法:读取该商品当前全部评分 → 算术平均 → 四舍五入保留1位小数
// (无评价时为0) → 回写商品的rating字段(单行原子写)
func (s *service) recomputeRating(ctx context.Context, productID uint) error {
	start := time.Now()

	err := s.doRecompute(ctx, productID)

	if metrics.RatingRecomputeDuration != nil {
		metrics.ObserveHistogram(metrics.RatingRecomputeDuration, time.Since(start).Seconds())
	}

	if err != nil {
		// 评价已落库,评分陈旧,下次变更时自愈
		log.Printf("❌ 商品评分重算失败 product_id=%d: %v", productID, err)
		if metrics.RatingRecomputeFailedTotal != nil {
			metrics.IncCounter(metrics.RatingRecomputeFailedTotal)
		}
		return apperrors.Wrap(err, "Internal server error")
	}

	return nil
}

func (s *service) doRecompute(ctx context.Context, productID uint) error {
	ratings, err := s.repo.FindRatingsByProduct(ctx, productID)
	if err != nil {
		return err
	}

	rating := 0.0
	if len(ratings) > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r
		}
		mean := float64(sum) / float64(len(ratings))
		rating = math.Round(mean*10) / 10
	}

	return s.productRepo.UpdateRating(ctx, productID, rating)
}
