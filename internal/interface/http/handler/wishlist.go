package handler

import (
	"github.com/gin-gonic/gin"

	appwishlist "github.com/xiebiao/bookmart/internal/application/wishlist"
	"github.com/xiebiao/bookmart/internal/interface/http/dto"
	"github.com/xiebiao/bookmart/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
	"github.com/xiebiao/bookmart/pkg/response"
)

// WishlistHandler 心愿单HTTP处理器
type WishlistHandler struct {
	manageUseCase *appwishlist.ManageWishlistUseCase
}

// NewWishlistHandler 创建心愿单处理器
func NewWishlistHandler(manageUseCase *appwishlist.ManageWishlistUseCase) *WishlistHandler {
	return &WishlistHandler{manageUseCase: manageUseCase}
}

// List 查询心愿单
// @Summary      查询心愿单
// @Tags         心愿单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/wishlist [get]
func (h *WishlistHandler) List(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	result, err := h.manageUseCase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Add 加入心愿单
// @Summary      加入心愿单
// @Description  幂等操作，重复加入不报错，返回当前心愿单
// @Tags         心愿单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddWishlistRequest true "商品ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/wishlist [post]
func (h *WishlistHandler) Add(c *gin.Context) {
	var req dto.AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "Malformed request body: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.manageUseCase.Add(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Remove 移出心愿单
// @Summary      移出心愿单
// @Description  幂等操作，移除不存在的条目不报错，返回当前心愿单
// @Tags         心愿单
// @Produce      json
// @Security     BearerAuth
// @Param        productId path int true "商品ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/wishlist/{productId} [delete]
func (h *WishlistHandler) Remove(c *gin.Context) {
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.manageUseCase.Remove(c.Request.Context(), userID, productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
