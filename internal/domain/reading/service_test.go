package reading

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReadingRepo 内存阅读进度仓储
type fakeReadingRepo struct {
	nextID      uint
	records     map[[2]uint]*Progress // key: (userID, bookID)
	createErr   error                 // Create注入错误
	findMisses  int                   // 前N次查找强制返回NotFound(模拟并发窗口)
	createCalls int
}

func newFakeReadingRepo() *fakeReadingRepo {
	return &fakeReadingRepo{nextID: 1, records: make(map[[2]uint]*Progress)}
}

func (f *fakeReadingRepo) Create(_ context.Context, p *Progress) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	key := [2]uint{p.UserID, p.BookID}
	if _, ok := f.records[key]; ok {
		return errors.New("Duplicate entry for key 'idx_user_book'")
	}
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.records[key] = &cp
	return nil
}

func (f *fakeReadingRepo) FindByUserAndBook(_ context.Context, userID, bookID uint) (*Progress, error) {
	if f.findMisses > 0 {
		f.findMisses--
		return nil, ErrProgressNotFound
	}
	p, ok := f.records[[2]uint{userID, bookID}]
	if !ok {
		return nil, ErrProgressNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeReadingRepo) Update(_ context.Context, p *Progress) error {
	key := [2]uint{p.UserID, p.BookID}
	if _, ok := f.records[key]; !ok {
		return ErrProgressNotFound
	}
	cp := *p
	f.records[key] = &cp
	return nil
}

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("首次访问创建默认进度", func(t *testing.T) {
		repo := newFakeReadingRepo()
		svc := NewService(repo)

		p, err := svc.GetOrCreate(ctx, 10, 1)
		require.NoError(t, err)

		assert.Equal(t, 1, p.CurrentPage)
		assert.Equal(t, 1, p.LastReadChapter)
		assert.Equal(t, 0, p.ReadingTime)
		assert.False(t, p.Completed)
		assert.Equal(t, 1, repo.createCalls)
	})

	t.Run("再次访问返回已有进度而不覆盖", func(t *testing.T) {
		repo := newFakeReadingRepo()
		svc := NewService(repo)

		_, err := svc.Update(ctx, 10, 1, 42, 3, 120)
		require.NoError(t, err)

		p, err := svc.GetOrCreate(ctx, 10, 1)
		require.NoError(t, err)
		assert.Equal(t, 42, p.CurrentPage)
		assert.Equal(t, 3, p.LastReadChapter)
		assert.Equal(t, 120, p.ReadingTime)
	})

	t.Run("不同的(用户,书)各自独立", func(t *testing.T) {
		repo := newFakeReadingRepo()
		svc := NewService(repo)

		_, err := svc.Update(ctx, 10, 1, 42, 3, 120)
		require.NoError(t, err)

		p, err := svc.GetOrCreate(ctx, 10, 2)
		require.NoError(t, err)
		assert.Equal(t, 1, p.CurrentPage)

		p, err = svc.GetOrCreate(ctx, 11, 1)
		require.NoError(t, err)
		assert.Equal(t, 1, p.CurrentPage)
	})

	t.Run("并发创建冲突时读取胜者的记录", func(t *testing.T) {
		repo := newFakeReadingRepo()
		svc := NewService(repo)

		// 模拟并发窗口:首次查找未命中,随后Create撞上唯一索引
		// (并发请求已抢先创建),服务应回读胜者的记录而不是报错
		winner := NewProgress(10, 1)
		winner.ID = 99
		winner.CurrentPage = 7
		repo.records[[2]uint{10, 1}] = winner
		repo.findMisses = 1
		repo.createErr = errors.New("Duplicate entry for key 'idx_user_book'")

		p, err := svc.GetOrCreate(ctx, 10, 1)
		require.NoError(t, err)
		assert.Equal(t, uint(99), p.ID)
		assert.Equal(t, 7, p.CurrentPage)
	})
}

func TestUpdateProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("全量覆盖而非增量累加", func(t *testing.T) {
		repo := newFakeReadingRepo()
		svc := NewService(repo)

		_, err := svc.Update(ctx, 10, 1, 50, 5, 100)
		require.NoError(t, err)

		// 第二次上报的值整体替换,readingTime不做加法
		p, err := svc.Update(ctx, 10, 1, 30, 2, 40)
		require.NoError(t, err)
		assert.Equal(t, 30, p.CurrentPage)
		assert.Equal(t, 2, p.LastReadChapter)
		assert.Equal(t, 40, p.ReadingTime)
	})

	t.Run("无进度记录时先创建再覆盖", func(t *testing.T) {
		repo := newFakeReadingRepo()
		svc := NewService(repo)

		p, err := svc.Update(ctx, 10, 1, 12, 2, 30)
		require.NoError(t, err)
		assert.Equal(t, 12, p.CurrentPage)
		assert.Equal(t, 1, repo.createCalls)
	})

	t.Run("覆盖不影响completed标记", func(t *testing.T) {
		repo := newFakeReadingRepo()
		svc := NewService(repo)

		_, err := svc.Update(ctx, 10, 1, 100, 10, 300)
		require.NoError(t, err)
		_, err = svc.MarkCompleted(ctx, 10, 1)
		require.NoError(t, err)

		// 读完后继续翻页(重读),completed保持true
		p, err := svc.Update(ctx, 10, 1, 5, 1, 310)
		require.NoError(t, err)
		assert.True(t, p.Completed)
	})

	t.Run("页码小于1被拒绝", func(t *testing.T) {
		repo := newFakeReadingRepo()
		svc := NewService(repo)

		_, err := svc.Update(ctx, 10, 1, 0, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidPage)

		_, err = svc.Update(ctx, 10, 1, -3, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidPage)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("负的阅读时长被拒绝", func(t *testing.T) {
		repo := newFakeReadingRepo()
		svc := NewService(repo)

		_, err := svc.Update(ctx, 10, 1, 1, 1, -1)
		assert.ErrorIs(t, err, ErrInvalidReadingTime)
	})
}

func TestMarkCompleted(t *testing.T) {
	ctx := context.Background()

	t.Run("已有进度记录时标记成功", func(t *testing.T) {
		repo := newFakeReadingRepo()
		svc := NewService(repo)

		_, err := svc.GetOrCreate(ctx, 10, 1)
		require.NoError(t, err)

		p, err := svc.MarkCompleted(ctx, 10, 1)
		require.NoError(t, err)
		assert.True(t, p.Completed)
	})

	t.Run("无进度记录时返回404且不创建", func(t *testing.T) {
		repo := newFakeReadingRepo()
		svc := NewService(repo)

		_, err := svc.MarkCompleted(ctx, 10, 1)
		assert.ErrorIs(t, err, ErrProgressNotFound)
		assert.Zero(t, repo.createCalls)
	})

	t.Run("重复标记是幂等的", func(t *testing.T) {
		repo := newFakeReadingRepo()
		svc := NewService(repo)

		_, err := svc.GetOrCreate(ctx, 10, 1)
		require.NoError(t, err)

		_, err = svc.MarkCompleted(ctx, 10, 1)
		require.NoError(t, err)
		p, err := svc.MarkCompleted(ctx, 10, 1)
		require.NoError(t, err)
		assert.True(t, p.Completed)
	})
}
