package product

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xiebiao/bookmart/internal/domain/product"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
	"github.com/xiebiao/bookmart/pkg/metrics"
)

// UploadPDFUseCase PDF上传用例(管理端)
// 设计说明:
// 1. 只接受application/pdf,大小上限由配置决定(默认10MB)
// 2. 文件落在本地磁盘的公开静态目录(uploads/pdfs/),
//    文件名加毫秒时间戳前缀防止覆盖
// 3. 商品记录只保存URL;提供product_id时顺便挂到商品上
type UploadPDFUseCase struct {
	productService product.Service
	dir            string // 本地存储根目录
	publicPath     string // 对外静态路径前缀
	maxSize        int64  // 大小上限(字节)
}

// NewUploadPDFUseCase 创建PDF上传用例
func NewUploadPDFUseCase(productService product.Service, dir, publicPath string, maxSize int64) *UploadPDFUseCase {
	return &UploadPDFUseCase{
		productService: productService,
		dir:            dir,
		publicPath:     publicPath,
		maxSize:        maxSize,
	}
}

// UploadPDFRequest PDF上传请求DTO
type UploadPDFRequest struct {
	Filename    string    // 原始文件名
	Size        int64     // 文件大小(字节)
	ContentType string    // 客户端声明的Content-Type
	File        io.Reader // 文件内容
	ProductID   uint      // 可选:上传后挂载到该商品
}

// UploadPDFResponse PDF上传响应DTO
type UploadPDFResponse struct {
	PDFURL   string `json:"pdf_url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
}

// Execute 执行PDF上传
func (uc *UploadPDFUseCase) Execute(ctx context.Context, req UploadPDFRequest) (*UploadPDFResponse, error) {
	// 1. 类型校验(Content-Type和扩展名都检查)
	if req.ContentType != "application/pdf" ||
		!strings.EqualFold(filepath.Ext(req.Filename), ".pdf") {
		uc.countUpload("rejected_type")
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "Only PDF files are allowed")
	}

	// 2. 大小校验
	if req.Size > uc.maxSize {
		uc.countUpload("rejected_size")
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams,
			fmt.Sprintf("PDF file size must not exceed %dMB", uc.maxSize>>20))
	}

	// 3. 生成存储文件名(毫秒时间戳前缀防覆盖,basename去掉路径成分)
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFilename(req.Filename))
	pdfDir := filepath.Join(uc.dir, "pdfs")
	if err := os.MkdirAll(pdfDir, 0o755); err != nil {
		uc.countUpload("error")
		return nil, apperrors.Wrap(err, "Failed to prepare upload directory")
	}

	// 4. 落盘(LimitReader二次兜底,防止声明大小与实际不符)
	dst, err := os.Create(filepath.Join(pdfDir, name))
	if err != nil {
		uc.countUpload("error")
		return nil, apperrors.Wrap(err, "Failed to save PDF file")
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(req.File, uc.maxSize+1))
	if err != nil {
		uc.countUpload("error")
		return nil, apperrors.Wrap(err, "Failed to save PDF file")
	}
	if written > uc.maxSize {
		os.Remove(dst.Name())
		uc.countUpload("rejected_size")
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams,
			fmt.Sprintf("PDF file size must not exceed %dMB", uc.maxSize>>20))
	}

	pdfURL := uc.publicPath + "/pdfs/" + name

	// 5. 可选:挂载到商品
	if req.ProductID > 0 {
		if _, err := uc.productService.AttachPDF(ctx, req.ProductID, pdfURL); err != nil {
			uc.countUpload("error")
			return nil, err
		}
	}

	uc.countUpload("success")
	if metrics.PDFUploadBytes != nil {
		metrics.ObserveHistogram(metrics.PDFUploadBytes, float64(written))
	}

	return &UploadPDFResponse{
		PDFURL:   pdfURL,
		Filename: name,
		Size:     written,
	}, nil
}

func (uc *UploadPDFUseCase) countUpload(result string) {
	if metrics.PDFUploadsTotal != nil {
		metrics.IncCounterVec(metrics.PDFUploadsTotal, map[string]string{"result": result})
	}
}

// sanitizeFilename 清理文件名(去掉路径成分和空格)
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
