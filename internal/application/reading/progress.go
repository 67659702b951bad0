package reading

import (
	"context"

	"github.com/xiebiao/bookmart/internal/domain/reading"
	"github.com/xiebiao/bookmart/pkg/metrics"
)

// GetProgressUseCase 获取阅读进度用例(get-or-create)
// 首次访问时创建默认进度{currentPage:1, lastReadChapter:1, readingTime:0, completed:false}
type GetProgressUseCase struct {
	readingService reading.Service
}

// NewGetProgressUseCase 创建获取进度用例
func NewGetProgressUseCase(readingService reading.Service) *GetProgressUseCase {
	return &GetProgressUseCase{readingService: readingService}
}

// ProgressDetail 阅读进度DTO(包内共享)
type ProgressDetail struct {
	BookID          uint   `json:"book_id"`
	CurrentPage     int    `json:"currentPage"`
	LastReadChapter int    `json:"lastReadChapter"`
	ReadingTime     int    `json:"readingTime"` // 累计分钟
	Completed       bool   `json:"completed"`
	UpdatedAt       string `json:"updated_at"`
}

// Execute 执行获取进度
func (uc *GetProgressUseCase) Execute(ctx context.Context, userID, bookID uint) (*ProgressDetail, error) {
	p, err := uc.readingService.GetOrCreate(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	return toProgressDetail(p), nil
}

// UpdateProgressUseCase 更新阅读进度用例
// 全量覆盖语义:三个字段整体替换,客户端负责推导章节号和累计时长
type UpdateProgressUseCase struct {
	readingService reading.Service
}

// NewUpdateProgressUseCase 创建更新进度用例
func NewUpdateProgressUseCase(readingService reading.Service) *UpdateProgressUseCase {
	return &UpdateProgressUseCase{readingService: readingService}
}

// UpdateProgressRequest 更新进度请求DTO
type UpdateProgressRequest struct {
	UserID          uint
	BookID          uint
	CurrentPage     int
	LastReadChapter int
	ReadingTime     int
}

// Execute 执行更新进度
func (uc *UpdateProgressUseCase) Execute(ctx context.Context, req UpdateProgressRequest) (*ProgressDetail, error) {
	p, err := uc.readingService.Update(ctx, req.UserID, req.BookID,
		req.CurrentPage, req.LastReadChapter, req.ReadingTime)
	if err != nil {
		return nil, err
	}

	if metrics.ProgressUpdatesTotal != nil {
		metrics.IncCounter(metrics.ProgressUpdatesTotal)
	}

	return toProgressDetail(p), nil
}

// MarkCompletedUseCase 标记读完用例
// 进度记录不存在时返回404(此路径不懒创建)
type MarkCompletedUseCase struct {
	readingService reading.Service
}

// NewMarkCompletedUseCase 创建标记读完用例
func NewMarkCompletedUseCase(readingService reading.Service) *MarkCompletedUseCase {
	return &MarkCompletedUseCase{readingService: readingService}
}

// Execute 执行标记读完
func (uc *MarkCompletedUseCase) Execute(ctx context.Context, userID, bookID uint) (*ProgressDetail, error) {
	p, err := uc.readingService.MarkCompleted(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}

	if metrics.BooksCompletedTotal != nil {
		metrics.IncCounter(metrics.BooksCompletedTotal)
	}

	return toProgressDetail(p), nil
}

// toProgressDetail 领域实体 → DTO
func toProgressDetail(p *reading.Progress) *ProgressDetail {
	return &ProgressDetail{
		BookID:          p.BookID,
		CurrentPage:     p.CurrentPage,
		LastReadChapter: p.LastReadChapter,
		ReadingTime:     p.ReadingTime,
		Completed:       p.Completed,
		UpdatedAt:       p.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
