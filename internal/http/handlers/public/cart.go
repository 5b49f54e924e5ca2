package public

import (
	"github.com/bellu-mart/internal/http/handlers/shared"
	"github.com/bellu-mart/internal/http/response"
	"github.com/bellu-mart/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCart 获取会话购物车
func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.cartSvc.GetCart(c.Param("session_id"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// AddCartItem 加购
func (h *Handler) AddCartItem(c *gin.Context) {
	var input service.CartAddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	cart, err := h.cartSvc.AddItem(input)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// UpdateCartItem 覆写条目数量，数量小于等于 0 移除条目
func (h *Handler) UpdateCartItem(c *gin.Context) {
	productID, ok := shared.ParseUintParam(c, "product_id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	cart, err := h.cartSvc.UpdateQuantity(c.Param("session_id"), productID, input.Quantity)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// ClearCart 清空会话购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID := c.Param("session_id")
	if err := h.cartSvc.ClearCart(sessionID); err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	cart, err := h.cartSvc.GetCart(sessionID)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, cart)
}

// RemoveCartItem 移除条目
func (h *Handler) RemoveCartItem(c *gin.Context) {
	productID, ok := shared.ParseUintParam(c, "product_id")
	if !ok {
		response.BadRequest(c, "invalid product id")
		return
	}
	cart, err := h.cartSvc.RemoveItem(c.Param("session_id"), productID)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, cart)
}
