package product

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmart/internal/domain/product"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
)

// fakeProductService 只记录AttachPDF调用的假领域服务
type fakeProductService struct {
	product.Service
	attachedID  uint
	attachedURL string
	attachErr   error
}

func (f *fakeProductService) AttachPDF(_ context.Context, id uint, pdfURL string) (*product.Product, error) {
	if f.attachErr != nil {
		return nil, f.attachErr
	}
	f.attachedID = id
	f.attachedURL = pdfURL
	return &product.Product{ID: id, PDFURL: pdfURL, IsDigital: true}, nil
}

func TestUploadPDF(t *testing.T) {
	ctx := context.Background()
	const maxSize = 10 << 20

	newUseCase := func(t *testing.T) (*UploadPDFUseCase, *fakeProductService, string) {
		dir := t.TempDir()
		svc := &fakeProductService{}
		uc := NewUploadPDFUseCase(svc, dir, "/uploads", maxSize)
		return uc, svc, dir
	}

	t.Run("正常上传并落盘", func(t *testing.T) {
		uc, _, dir := newUseCase(t)

		content := "%PDF-1.7 fake pdf body"
		resp, err := uc.Execute(ctx, UploadPDFRequest{
			Filename:    "go-book.pdf",
			Size:        int64(len(content)),
			ContentType: "application/pdf",
			File:        strings.NewReader(content),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(len(content)), resp.Size)
		assert.True(t, strings.HasPrefix(resp.PDFURL, "/uploads/pdfs/"))
		assert.True(t, strings.HasSuffix(resp.PDFURL, "-go-book.pdf"))

		// 文件确实写到了本地磁盘
		data, err := os.ReadFile(filepath.Join(dir, "pdfs", resp.Filename))
		require.NoError(t, err)
		assert.Equal(t, content, string(data))
	})

	t.Run("非PDF的Content-Type被拒绝", func(t *testing.T) {
		uc, _, _ := newUseCase(t)

		_, err := uc.Execute(ctx, UploadPDFRequest{
			Filename:    "book.pdf",
			Size:        10,
			ContentType: "image/png",
			File:        strings.NewReader("fake"),
		})
		require.Error(t, err)

		appErr := apperrors.GetAppError(err)
		assert.Equal(t, 400, appErr.HTTPStatus())
		assert.Equal(t, "Only PDF files are allowed", appErr.Message)
	})

	t.Run("扩展名不是pdf被拒绝", func(t *testing.T) {
		uc, _, _ := newUseCase(t)

		_, err := uc.Execute(ctx, UploadPDFRequest{
			Filename:    "book.exe",
			Size:        10,
			ContentType: "application/pdf",
			File:        strings.NewReader("fake"),
		})
		require.Error(t, err)
		assert.Equal(t, "Only PDF files are allowed", apperrors.GetAppError(err).Message)
	})

	t.Run("声明大小超上限被拒绝", func(t *testing.T) {
		uc, _, _ := newUseCase(t)

		_, err := uc.Execute(ctx, UploadPDFRequest{
			Filename:    "book.pdf",
			Size:        maxSize + 1,
			ContentType: "application/pdf",
			File:        strings.NewReader("fake"),
		})
		require.Error(t, err)
		assert.Equal(t, "PDF file size must not exceed 10MB", apperrors.GetAppError(err).Message)
	})

	t.Run("实际内容超上限同样被拒绝并清理文件", func(t *testing.T) {
		dir := t.TempDir()
		uc := NewUploadPDFUseCase(&fakeProductService{}, dir, "/uploads", 16)

		// 声明大小合规但实际内容超过上限
		_, err := uc.Execute(ctx, UploadPDFRequest{
			Filename:    "book.pdf",
			Size:        10,
			ContentType: "application/pdf",
			File:        strings.NewReader(strings.Repeat("x", 64)),
		})
		require.Error(t, err)

		// 半截文件不能留在磁盘上
		entries, err := os.ReadDir(filepath.Join(dir, "pdfs"))
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("带product_id时挂载到商品", func(t *testing.T) {
		uc, svc, _ := newUseCase(t)

		resp, err := uc.Execute(ctx, UploadPDFRequest{
			Filename:    "book.pdf",
			Size:        4,
			ContentType: "application/pdf",
			File:        strings.NewReader("fake"),
			ProductID:   7,
		})
		require.NoError(t, err)
		assert.Equal(t, uint(7), svc.attachedID)
		assert.Equal(t, resp.PDFURL, svc.attachedURL)
	})

	t.Run("挂载失败时错误透传", func(t *testing.T) {
		dir := t.TempDir()
		svc := &fakeProductService{attachErr: product.ErrProductNotFound}
		uc := NewUploadPDFUseCase(svc, dir, "/uploads", maxSize)

		_, err := uc.Execute(ctx, UploadPDFRequest{
			Filename:    "book.pdf",
			Size:        4,
			ContentType: "application/pdf",
			File:        strings.NewReader("fake"),
			ProductID:   999,
		})
		assert.ErrorIs(t, err, product.ErrProductNotFound)
	})

	t.Run("文件名中的路径成分被剥离", func(t *testing.T) {
		uc, _, _ := newUseCase(t)

		resp, err := uc.Execute(ctx, UploadPDFRequest{
			Filename:    "../../etc/my book.pdf",
			Size:        4,
			ContentType: "application/pdf",
			File:        strings.NewReader("fake"),
		})
		require.NoError(t, err)
		assert.NotContains(t, resp.Filename, "/")
		assert.NotContains(t, resp.Filename, " ")
		assert.True(t, strings.HasSuffix(resp.Filename, "-my_book.pdf"))
	})
}
