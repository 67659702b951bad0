package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmart/internal/domain/product"
)

// fakeWishlistRepo 内存心愿单仓储(幂等语义与MySQL实现一致)
type fakeWishlistRepo struct {
	nextID uint
	items  map[[2]uint]*Item // key: (userID, productID)
}

func newFakeWishlistRepo() *fakeWishlistRepo {
	return &fakeWishlistRepo{nextID: 1, items: make(map[[2]uint]*Item)}
}

func (f *fakeWishlistRepo) Add(_ context.Context, item *Item) error {
	key := [2]uint{item.UserID, item.ProductID}
	if _, ok := f.items[key]; ok {
		return nil // 重复加入静默吸收
	}
	item.ID = f.nextID
	f.nextID++
	cp := *item
	f.items[key] = &cp
	return nil
}

func (f *fakeWishlistRepo) Remove(_ context.Context, userID, productID uint) error {
	delete(f.items, [2]uint{userID, productID})
	return nil
}

func (f *fakeWishlistRepo) ListByUser(_ context.Context, userID uint) ([]*Item, error) {
	items := make([]*Item, 0)
	for _, item := range f.items {
		if item.UserID == userID {
			cp := *item
			items = append(items, &cp)
		}
	}
	return items, nil
}

// fakeProductRepo 内存商品仓储(心愿单服务只用FindByID)
type fakeProductRepo struct {
	products map[uint]*product.Product
}

func newFakeProductRepo(ids ...uint) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[uint]*product.Product)}
	for _, id := range ids {
		f.products[id] = &product.Product{ID: id, Title: "测试商品"}
	}
	return f
}

func (f *fakeProductRepo) Create(_ context.Context, _ *product.Product) error { return nil }

func (f *fakeProductRepo) FindByID(_ context.Context, id uint) (*product.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	return p, nil
}

func (f *fakeProductRepo) Update(_ context.Context, _ *product.Product) error      { return nil }
func (f *fakeProductRepo) UpdateRating(_ context.Context, _ uint, _ float64) error { return nil }
func (f *fakeProductRepo) Delete(_ context.Context, _ uint) error                  { return nil }
func (f *fakeProductRepo) List(_ context.Context, _ product.ListParams) ([]*product.Product, int64, error) {
	return nil, 0, nil
}

func TestWishlistAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("加入后返回当前列表", func(t *testing.T) {
		svc := NewService(newFakeWishlistRepo(), newFakeProductRepo(1))

		items, err := svc.Add(ctx, 10, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, uint(1), items[0].ProductID)
	})

	t.Run("重复加入是幂等的", func(t *testing.T) {
		svc := NewService(newFakeWishlistRepo(), newFakeProductRepo(1))

		_, err := svc.Add(ctx, 10, 1)
		require.NoError(t, err)

		items, err := svc.Add(ctx, 10, 1)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("商品不存在返回404", func(t *testing.T) {
		svc := NewService(newFakeWishlistRepo(), newFakeProductRepo())

		_, err := svc.Add(ctx, 10, 99)
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})

	t.Run("不同用户的心愿单互不干扰", func(t *testing.T) {
		svc := NewService(newFakeWishlistRepo(), newFakeProductRepo(1))

		_, err := svc.Add(ctx, 10, 1)
		require.NoError(t, err)

		items, err := svc.List(ctx, 11)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestWishlistRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("移除后返回剩余列表", func(t *testing.T) {
		svc := NewService(newFakeWishlistRepo(), newFakeProductRepo(1, 2))

		_, err := svc.Add(ctx, 10, 1)
		require.NoError(t, err)
		_, err = svc.Add(ctx, 10, 2)
		require.NoError(t, err)

		items, err := svc.Remove(ctx, 10, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, uint(2), items[0].ProductID)
	})

	t.Run("移除不存在的条目是no-op", func(t *testing.T) {
		svc := NewService(newFakeWishlistRepo(), newFakeProductRepo(1))

		items, err := svc.Remove(ctx, 10, 99)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("移除后可以再次加入", func(t *testing.T) {
		svc := NewService(newFakeWishlistRepo(), newFakeProductRepo(1))

		_, err := svc.Add(ctx, 10, 1)
		require.NoError(t, err)
		_, err = svc.Remove(ctx, 10, 1)
		require.NoError(t, err)

		items, err := svc.Add(ctx, 10, 1)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestWishlistList(t *testing.T) {
	ctx := context.Background()

	t.Run("空心愿单返回空列表而非nil语义错误", func(t *testing.T) {
		svc := NewService(newFakeWishlistRepo(), newFakeProductRepo())

		items, err := svc.List(ctx, 10)
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})
}
