package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProductRepo 内存商品仓储
type fakeProductRepo struct {
	nextID   uint
	products map[uint]*Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{nextID: 1, products: make(map[uint]*Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, p *Product) error {
	p.ID = f.nextID
	f.nextID++
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uint) (*Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return ErrProductNotFound
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) UpdateRating(_ context.Context, id uint, rating float64) error {
	p, ok := f.products[id]
	if !ok {
		return ErrProductNotFound
	}
	p.Rating = rating
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.products[id]; !ok {
		return ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _ ListParams) ([]*Product, int64, error) {
	var all []*Product
	for _, p := range f.products {
		cp := *p
		all = append(all, &cp)
	}
	return all, int64(len(all)), nil
}

func validProduct() *Product {
	return NewProduct(
		"Go语言实战", "威廉·肯尼迪", "深入浅出讲解Go语言", "编程",
		"zh-CN", 7900, 0, "https://img.example.com/go.jpg",
		100, false, "", nil, 0,
	)
}

func TestAddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("正常新增", func(t *testing.T) {
		svc := NewService(newFakeProductRepo())

		p, err := svc.AddProduct(ctx, validProduct())
		require.NoError(t, err)
		assert.NotZero(t, p.ID)
	})

	t.Run("新商品评分固定为0", func(t *testing.T) {
		svc := NewService(newFakeProductRepo())

		p := validProduct()
		p.Rating = 4.9 // 客户端试图注入评分
		created, err := svc.AddProduct(ctx, p)
		require.NoError(t, err)
		assert.Zero(t, created.Rating)
	})

	t.Run("必填字段缺失被拒绝", func(t *testing.T) {
		svc := NewService(newFakeProductRepo())

		for _, mutate := range []func(*Product){
			func(p *Product) { p.Title = "" },
			func(p *Product) { p.Author = "   " }, // 纯空白同样算缺失
			func(p *Product) { p.Description = "" },
			func(p *Product) { p.Category = "" },
		} {
			p := validProduct()
			mutate(p)
			_, err := svc.AddProduct(ctx, p)
			assert.ErrorIs(t, err, ErrMissingFields)
		}
	})

	t.Run("language是可选字段", func(t *testing.T) {
		svc := NewService(newFakeProductRepo())

		p := validProduct()
		p.Language = ""
		_, err := svc.AddProduct(ctx, p)
		assert.NoError(t, err)
	})

	t.Run("负价格被拒绝但0价格允许", func(t *testing.T) {
		svc := NewService(newFakeProductRepo())

		p := validProduct()
		p.Price = -1
		_, err := svc.AddProduct(ctx, p)
		assert.ErrorIs(t, err, ErrInvalidPrice)

		p = validProduct()
		p.Price = 0 // 免费电子书
		_, err = svc.AddProduct(ctx, p)
		assert.NoError(t, err)
	})

	t.Run("负库存被拒绝", func(t *testing.T) {
		svc := NewService(newFakeProductRepo())

		p := validProduct()
		p.Stock = -1
		_, err := svc.AddProduct(ctx, p)
		assert.ErrorIs(t, err, ErrInvalidStock)
	})
}

func TestEditProduct(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (Service, uint) {
		svc := NewService(newFakeProductRepo())
		p, err := svc.AddProduct(ctx, validProduct())
		require.NoError(t, err)
		return svc, p.ID
	}

	strPtr := func(s string) *string { return &s }
	int64Ptr := func(v int64) *int64 { return &v }
	intPtr := func(v int) *int { return &v }

	t.Run("未提供的字段保留原值", func(t *testing.T) {
		svc, id := setup(t)

		p, err := svc.EditProduct(ctx, id, Patch{Title: strPtr("新书名")})
		require.NoError(t, err)
		assert.Equal(t, "新书名", p.Title)
		assert.Equal(t, "威廉·肯尼迪", p.Author)
		assert.Equal(t, int64(7900), p.Price)
	})

	t.Run("显式提供的零值会覆盖原值", func(t *testing.T) {
		svc, id := setup(t)

		// 把库存显式清零:与"未提供stock"必须可区分
		p, err := svc.EditProduct(ctx, id, Patch{Stock: intPtr(0)})
		require.NoError(t, err)
		assert.Zero(t, p.Stock)

		// 把促销价显式清零(取消促销)
		p, err = svc.EditProduct(ctx, id, Patch{SalePrice: int64Ptr(0)})
		require.NoError(t, err)
		assert.Zero(t, p.SalePrice)
	})

	t.Run("空补丁是合法的no-op", func(t *testing.T) {
		svc, id := setup(t)

		p, err := svc.EditProduct(ctx, id, Patch{})
		require.NoError(t, err)
		assert.Equal(t, "Go语言实战", p.Title)
	})

	t.Run("必填字段不允许被清空", func(t *testing.T) {
		svc, id := setup(t)

		_, err := svc.EditProduct(ctx, id, Patch{Title: strPtr("")})
		assert.ErrorIs(t, err, ErrMissingFields)

		// 清空失败后原值保留
		p, err := svc.GetProduct(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Go语言实战", p.Title)
	})

	t.Run("language允许被清空", func(t *testing.T) {
		svc, id := setup(t)

		p, err := svc.EditProduct(ctx, id, Patch{Language: strPtr("")})
		require.NoError(t, err)
		assert.Empty(t, p.Language)
	})

	t.Run("补丁中的负价格被拒绝", func(t *testing.T) {
		svc, id := setup(t)

		_, err := svc.EditProduct(ctx, id, Patch{Price: int64Ptr(-100)})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("不存在的商品返回404", func(t *testing.T) {
		svc, _ := setup(t)

		_, err := svc.EditProduct(ctx, 9999, Patch{Title: strPtr("x")})
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestEffectivePrice(t *testing.T) {
	t.Run("有促销价时取促销价", func(t *testing.T) {
		p := &Product{Price: 7900, SalePrice: 5900}
		assert.Equal(t, int64(5900), p.EffectivePrice())
	})

	t.Run("促销价为0表示无促销", func(t *testing.T) {
		p := &Product{Price: 7900, SalePrice: 0}
		assert.Equal(t, int64(7900), p.EffectivePrice())
	})

	t.Run("促销价高于原价时不生效", func(t *testing.T) {
		p := &Product{Price: 7900, SalePrice: 8900}
		assert.Equal(t, int64(7900), p.EffectivePrice())
	})
}

func TestGetContent(t *testing.T) {
	ctx := context.Background()

	t.Run("有章节内容时返回章节和总页数", func(t *testing.T) {
		repo := newFakeProductRepo()
		svc := NewService(repo)

		p := validProduct()
		p.IsDigital = true
		p.Chapters = []Chapter{
			{Title: "第一章", Content: "...", PageNumber: 1},
			{Title: "第二章", Content: "...", PageNumber: 20},
		}
		p.TotalPages = 300
		created, err := svc.AddProduct(ctx, p)
		require.NoError(t, err)

		chapters, totalPages, err := svc.GetContent(ctx, created.ID)
		require.NoError(t, err)
		assert.Len(t, chapters, 2)
		assert.Equal(t, 300, totalPages)
	})

	t.Run("无章节内容返回ErrNoContent", func(t *testing.T) {
		svc := NewService(newFakeProductRepo())

		created, err := svc.AddProduct(ctx, validProduct())
		require.NoError(t, err)

		_, _, err = svc.GetContent(ctx, created.ID)
		assert.ErrorIs(t, err, ErrNoContent)
	})

	t.Run("商品不存在返回404", func(t *testing.T) {
		svc := NewService(newFakeProductRepo())

		_, _, err := svc.GetContent(ctx, 9999)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestAttachPDF(t *testing.T) {
	ctx := context.Background()

	t.Run("挂载PDF后商品变为电子书", func(t *testing.T) {
		svc := NewService(newFakeProductRepo())

		created, err := svc.AddProduct(ctx, validProduct())
		require.NoError(t, err)
		assert.False(t, created.IsDigital)

		p, err := svc.AttachPDF(ctx, created.ID, "/uploads/pdfs/1700000000000-book.pdf")
		require.NoError(t, err)
		assert.True(t, p.IsDigital)
		assert.Equal(t, "/uploads/pdfs/1700000000000-book.pdf", p.PDFURL)
	})

	t.Run("商品不存在返回404", func(t *testing.T) {
		svc := NewService(newFakeProductRepo())

		_, err := svc.AttachPDF(ctx, 9999, "/uploads/pdfs/x.pdf")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
