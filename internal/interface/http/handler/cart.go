package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/bookmart/internal/application/cart"
	"github.com/xiebiao/bookmart/internal/interface/http/dto"
	"github.com/xiebiao/bookmart/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookmart/pkg/errors"
	"github.com/xiebiao/bookmart/pkg/response"
)

// CartHandler 购物车HTTP处理器
type CartHandler struct {
	manageUseCase *appcart.ManageCartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(manageUseCase *appcart.ManageCartUseCase) *CartHandler {
	return &CartHandler{manageUseCase: manageUseCase}
}

// List 查询购物车
// @Summary      查询购物车
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Router       /api/v1/cart [get]
func (h *CartHandler) List(c *gin.Context) {
	userID := middleware.MustGetUserID(c)

	result, err := h.manageUseCase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Add 加入购物车
// @Summary      加入购物车
// @Description  已在购物车中则数量累加；累加后超出库存返回400
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.AddCartRequest true "商品与数量"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "数量超出库存"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "Malformed request body: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.manageUseCase.Add(c.Request.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// UpdateQuantity 修改购物车数量
// @Summary      修改购物车数量
// @Description  直接设置为目标数量，超出库存返回400
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        productId path int true "商品ID"
// @Param        request body dto.UpdateCartQuantityRequest true "目标数量"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "数量超出库存"
// @Failure      404 {object} response.Response "购物车中无此商品"
// @Router       /api/v1/cart/{productId} [put]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	var req dto.UpdateCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeBindError, "Malformed request body: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.manageUseCase.UpdateQuantity(c.Request.Context(), userID, productID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Remove 移出购物车
// @Summary      移出购物车
// @Description  幂等操作，移除不存在的条目不报错
// @Tags         购物车
// @Produce      json
// @Security     BearerAuth
// @Param        productId path int true "商品ID"
// @Success      200 {object} response.Response
// @Router       /api/v1/cart/{productId} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
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
