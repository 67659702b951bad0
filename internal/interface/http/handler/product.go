package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appproduct "github.com/xiebiao/bookmart/internal/application/product"
	"github.com/xiebiao/bookmart/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
	"github.com/xiebiao/bookmart/pkg/response"
)

// ProductHandler 商品HTTP处理器
// 公开接口(列表/详情) + 管理端接口(增删改、PDF上传)
type ProductHandler struct {
	addUseCase    *appproduct.AddProductUseCase
	editUseCase   *appproduct.EditProductUseCase
	getUseCase    *appproduct.GetProductUseCase
	listUseCase   *appproduct.ListProductsUseCase
	deleteUseCase *appproduct.DeleteProductUseCase
	uploadUseCase *appproduct.UploadPDFUseCase
}

// NewProductHandler 创建商品处理器
func NewProductHandler(
	addUseCase *appproduct.AddProductUseCase,
	editUseCase *appproduct.EditProductUseCase,
	getUseCase *appproduct.GetProductUseCase,
	listUseCase *appproduct.ListProductsUseCase,
	deleteUseCase *appproduct.DeleteProductUseCase,
	uploadUseCase *appproduct.UploadPDFUseCase,
) *ProductHandler {
	return &ProductHandler{
		addUseCase:    addUseCase,
		editUseCase:   editUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		uploadUseCase: uploadUseCase,
	}
}

// List 商品列表
// @Summary      商品列表
// @Description  分页查询商品，支持关键词搜索、分类过滤、排序
// @Tags         商品
// @Produce      json
// @Param        page query int false "页码(默认1)"
// @Param        page_size query int false "每页数量(默认20,最大100)"
// @Param        keyword query string false "搜索关键词(标题/作者)"
// @Param        category query string false "分类"
// @Param        sort_by query string false "排序(price_asc/price_desc/rating_desc/created_at_desc)"
// @Success      200 {object} response.Response
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var query dto.ListProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appproduct.ListProductsRequest{
		Page:     query.Page,
		PageSize: query.PageSize,
		Keyword:  query.Keyword,
		Category: query.Category,
		SortBy:   query.SortBy,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Get 商品详情
// @Summary      商品详情
// @Tags         商品
// @Produce      json
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Add 新增商品(管理端)
// @Summary      新增商品
// @Tags         商品管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddProductRequest true "商品信息"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response "参数错误"
// @Failure      403 {object} response.Response "非管理员"
// @Router       /api/v1/admin/products [post]
func (h *ProductHandler) Add(c *gin.Context) {
	var req dto.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "Malformed request body: "+err.Error())
		return
	}

	result, err := h.addUseCase.Execute(c.Request.Context(), appproduct.AddProductRequest{
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Category:    req.Category,
		Language:    req.Language,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsDigital:   req.IsDigital,
		PDFURL:      req.PDFURL,
		Chapters:    toAppChapters(req.Chapters),
		TotalPages:  req.TotalPages,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Edit 编辑商品(管理端,三态补丁)
// @Summary      编辑商品
// @Description  PATCH语义：JSON里缺席的字段保留原值，显式出现的字段(含零值)覆盖原值
// @Tags         商品管理
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Param        request body dto.EditProductRequest true "补丁字段"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/admin/products/{id} [put]
func (h *ProductHandler) Edit(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.EditProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "Malformed request body: "+err.Error())
		return
	}

	appReq := appproduct.EditProductRequest{
		ID:          id,
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Category:    req.Category,
		Language:    req.Language,
		Price:       req.Price,
		SalePrice:   req.SalePrice,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		IsDigital:   req.IsDigital,
		PDFURL:      req.PDFURL,
		TotalPages:  req.TotalPages,
	}
	if req.Chapters != nil {
		chapters := toAppChapters(*req.Chapters)
		appReq.Chapters = &chapters
	}

	result, err := h.editUseCase.Execute(c.Request.Context(), appReq)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除商品(管理端,软删除)
// @Summary      删除商品
// @Tags         商品管理
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "Product deleted")
}

// UploadPDF PDF上传(管理端)
// @Summary      上传PDF
// @Description  multipart表单，字段名pdf，只接受application/pdf，大小上限10MB
// @Tags         商品管理
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        pdf formData file true "PDF文件"
// @Param        product_id formData int false "上传后挂载到该商品"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response "非PDF或超过大小上限"
// @Router       /api/v1/admin/products/upload-pdf [post]
func (h *ProductHandler) UploadPDF(c *gin.Context) {
	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "PDF file is required (form field 'pdf')")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, apperrors.Wrap(err, "Failed to read uploaded file"))
		return
	}
	defer file.Close()

	var productID uint
	if v := c.PostForm("product_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			response.ErrorWithCode(c, apperrors.ErrCodeBindError, "Invalid product_id")
			return
		}
		productID = uint(id)
	}

	result, err := h.uploadUseCase.Execute(c.Request.Context(), appproduct.UploadPDFRequest{
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
		File:        file,
		ProductID:   productID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// =========================================
// 辅助函数
// =========================================

// parseIDParam 解析路径中的数字ID参数,非法时直接写400响应
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "Invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// toAppChapters HTTP层章节DTO → 应用层章节DTO
func toAppChapters(chapters []dto.ChapterDTO) []appproduct.ChapterDTO {
	if chapters == nil {
		return nil
	}
	out := make([]appproduct.ChapterDTO, len(chapters))
	for i, ch := range chapters {
		out[i] = appproduct.ChapterDTO{
			Title:      ch.Title,
			Content:    ch.Content,
			PageNumber: ch.PageNumber,
		}
	}
	return out
}
