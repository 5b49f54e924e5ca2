package admin

import (
	"github.com/bellu-mart/internal/http/handlers/shared"
	"github.com/bellu-mart/internal/http/response"
	"github.com/bellu-mart/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var input service.ProductCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product, err := h.productSvc.Create(input)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Created(c, product)
}

// UpdateProduct 更新商品，只覆写提供的字段
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	var input service.ProductUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product, err := h.productSvc.Update(id, input)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// UpdateProductStock 覆写商品库存
func (h *Handler) UpdateProductStock(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	var input struct {
		Stock int `json:"stock"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	product, err := h.productSvc.UpdateStock(id, input.Stock)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	if err := h.productSvc.Delete(id); err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
