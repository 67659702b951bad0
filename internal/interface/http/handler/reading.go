package handler

import (
	"github.com/gin-gonic/gin"

	appreading "github.com/xiebiao/bookmart/internal/application/reading"
	"github.com/xiebiao/bookmart/internal/interface/http/dto"
	"github.com/xiebiao/bookmart/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
	"github.com/xiebiao/bookmart/pkg/response"
)

// ReadingHandler 在线阅读HTTP处理器
type ReadingHandler struct {
	contentUseCase     *appreading.GetContentUseCase
	getProgressUseCase *appreading.GetProgressUseCase
	updateUseCase      *appreading.UpdateProgressUseCase
	completeUseCase    *appreading.MarkCompletedUseCase
}

// NewReadingHandler 创建阅读处理器
func NewReadingHandler(
	contentUseCase *appreading.GetContentUseCase,
	getProgressUseCase *appreading.GetProgressUseCase,
	updateUseCase *appreading.UpdateProgressUseCase,
	completeUseCase *appreading.MarkCompletedUseCase,
) *ReadingHandler {
	return &ReadingHandler{
		contentUseCase:     contentUseCase,
		getProgressUseCase: getProgressUseCase,
		updateUseCase:      updateUseCase,
		completeUseCase:    completeUseCase,
	}
}

// GetContent 获取书籍章节内容
// @Summary      获取书籍内容
// @Description  返回全部章节与总页数；非电子书或无内容返回404
// @Tags         阅读
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "书籍ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "书籍不存在或暂无可阅读内容"
// @Router       /api/v1/reading/{bookId}/content [get]
func (h *ReadingHandler) GetContent(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	result, err := h.contentUseCase.Execute(c.Request.Context(), bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetProgress 查询阅读进度
// @Summary      查询阅读进度
// @Description  首次查询自动创建默认进度(第1页/第1章/0分钟/未读完)
// @Tags         阅读
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "书籍ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/reading/{bookId}/progress [get]
func (h *ReadingHandler) GetProgress(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.getProgressUseCase.Execute(c.Request.Context(), userID, bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateProgress 上报阅读进度
// @Summary      上报阅读进度
// @Description  整体覆盖当前进度；无进度记录时自动创建后覆盖
// @Tags         阅读
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "书籍ID"
// @Param        request body dto.UpdateProgressRequest true "进度数据"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "进度参数非法"
// @Router       /api/v1/reading/{bookId}/progress [post]
func (h *ReadingHandler) UpdateProgress(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "Malformed request body: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.updateUseCase.Execute(c.Request.Context(), appreading.UpdateProgressRequest{
		UserID:          userID,
		BookID:          bookID,
		CurrentPage:     req.CurrentPage,
		LastReadChapter: req.LastReadChapter,
		ReadingTime:     req.ReadingTime,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// MarkCompleted 标记读完
// @Summary      标记读完
// @Description  要求已存在进度记录，否则返回404
// @Tags         阅读
// @Produce      json
// @Security     BearerAuth
// @Param        bookId path int true "书籍ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "进度记录不存在"
// @Router       /api/v1/reading/{bookId}/complete [post]
func (h *ReadingHandler) MarkCompleted(c *gin.Context) {
	bookID, ok := parseIDParam(c, "bookId")
	if !ok {
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.completeUseCase.Execute(c.Request.Context(), userID, bookID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
