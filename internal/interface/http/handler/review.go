package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/bookmart/internal/application/review"
	"github.com/xiebiao/bookmart/internal/interface/http/dto"
	"github.com/xiebiao/bookmart/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
	"github.com/xiebiao/bookmart/pkg/response"
)

// ReviewHandler 评价HTTP处理器
type ReviewHandler struct {
	addUseCase    *appreview.AddReviewUseCase
	updateUseCase *appreview.UpdateReviewUseCase
	deleteUseCase *appreview.DeleteReviewUseCase
	listUseCase   *appreview.ListReviewsUseCase
}

// NewReviewHandler 创建评价处理器
func NewReviewHandler(
	addUseCase *appreview.AddReviewUseCase,
	updateUseCase *appreview.UpdateReviewUseCase,
	deleteUseCase *appreview.DeleteReviewUseCase,
	listUseCase *appreview.ListReviewsUseCase,
) *ReviewHandler {
	return &ReviewHandler{
		addUseCase:    addUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		listUseCase:   listUseCase,
	}
}

// Add 提交评价
// @Summary      提交评价
// @Description  评分1-5整数，内容10-500字符；一人一评，重复提交返回409
// @Tags         评价
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddReviewRequest true "评价内容"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response "校验失败(errors列表)"
// @Failure      404 {object} response.Response "商品不存在"
// @Failure      409 {object} response.Response "已评价过该商品"
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Add(c *gin.Context) {
	var req dto.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "Malformed request body: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.addUseCase.Execute(c.Request.Context(), appreview.AddReviewRequest{
		UserID:    userID,
		ProductID: req.ProductID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// Update 修改自己的评价
// @Summary      修改评价
// @Description  只能修改自己的评价；非本人的评价返回404
// @Tags         评价
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评价ID"
// @Param        request body dto.UpdateReviewRequest true "评价内容"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "校验失败"
// @Failure      404 {object} response.Response "评价不存在"
// @Router       /api/v1/reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "Malformed request body: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.updateUseCase.Execute(c.Request.Context(), appreview.UpdateReviewRequest{
		ReviewID: reviewID,
		UserID:   userID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Delete 删除自己的评价
// @Summary      删除评价
// @Tags         评价
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "评价ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "评价不存在"
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	userID := middleware.MustGetUserID(c)

	if err := h.deleteUseCase.Execute(c.Request.Context(), reviewID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithMessage(c, "Review deleted")
}

// ListByProduct 商品评价列表
// @Summary      商品评价列表
// @Description  分页查询，最新在前，默认page=1 limit=10
// @Tags         评价
// @Produce      json
// @Param        id path int true "商品ID"
// @Param        page query int false "页码"
// @Param        limit query int false "每页数量"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/products/{id}/reviews [get]
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var query dto.ListReviewsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.listUseCase.Execute(c.Request.Context(), appreview.ListReviewsRequest{
		ProductID: productID,
		Page:      query.Page,
		Limit:     query.Limit,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
