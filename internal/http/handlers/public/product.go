package public

import (
	"strings"

	"github.com/bellu-mart/internal/http/handlers/shared"
	"github.com/bellu-mart/internal/http/response"
	"github.com/bellu-mart/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListProducts 商品列表，支持分类、关键字与在售过滤
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.ProductListFilter{
		Page:        page,
		PageSize:    pageSize,
		Category:    strings.TrimSpace(c.Query("category")),
		Search:      strings.TrimSpace(c.Query("search")),
		InStockOnly: c.Query("in_stock") == "true",
	}

	products, total, err := h.productSvc.List(filter)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Page(c, products, total, page, pageSize)
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	product, err := h.productSvc.Get(id)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, product)
}

// ListCategories 商品分类列表
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.productSvc.Categories()
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, categories)
}
