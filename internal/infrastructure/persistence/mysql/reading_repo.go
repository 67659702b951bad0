package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookmart/internal/domain/reading"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// readingRepository 阅读进度仓储实现(MySQL)
type readingRepository struct {
	db *gorm.DB
}

// NewReadingRepository 创建阅读进度仓储
func NewReadingRepository(db *gorm.DB) reading.Repository {
	return &readingRepository{db: db}
}

// Create 创建阅读进度
// (user_id, book_id)唯一索引冲突时返回原始错误,
// 由Service在懒创建竞争时重新读取胜者创建的记录
func (r *readingRepository) Create(ctx context.Context, p *reading.Progress) error {
	model := &ReadingProgressModel{
		UserID:          p.UserID,
		BookID:          p.BookID,
		CurrentPage:     p.CurrentPage,
		LastReadChapter: p.LastReadChapter,
		ReadingTime:     p.ReadingTime,
		Completed:       p.Completed,
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.Wrap(err, "Reading progress already exists")
		}
		return apperrors.Wrap(err, "Failed to create reading progress")
	}

	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt

	return nil
}

// FindByUserAndBook 按(用户, 书)查找进度
func (r *readingRepository) FindByUserAndBook(ctx context.Context, userID, bookID uint) (*reading.Progress, error) {
	var model ReadingProgressModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&model).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, reading.ErrProgressNotFound
		}
		return nil, apperrors.Wrap(err, "Failed to find reading progress")
	}

	return toProgressEntity(&model), nil
}

// Update 更新阅读进度
func (r *readingRepository) Update(ctx context.Context, p *reading.Progress) error {
	result := r.db.WithContext(ctx).Model(&ReadingProgressModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"current_page":      p.CurrentPage,
			"last_read_chapter": p.LastReadChapter,
			"reading_time":      p.ReadingTime,
			"completed":         p.Completed,
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to update reading progress")
	}

	return nil
}

// toProgressEntity GORM模型 → 领域实体
func toProgressEntity(model *ReadingProgressModel) *reading.Progress {
	return &reading.Progress{
		ID:              model.ID,
		UserID:          model.UserID,
		BookID:          model.BookID,
		CurrentPage:     model.CurrentPage,
		LastReadChapter: model.LastReadChapter,
		ReadingTime:     model.ReadingTime,
		Completed:       model.Completed,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}
