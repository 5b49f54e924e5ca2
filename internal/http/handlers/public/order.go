package public

import (
	"github.com/bellu-mart/internal/http/handlers/shared"
	"github.com/bellu-mart/internal/http/response"
	"github.com/bellu-mart/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateOrder 下单
func (h *Handler) CreateOrder(c *gin.Context) {
	var input service.OrderCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if input.IdempotencyKey == "" {
		input.IdempotencyKey = c.GetHeader("Idempotency-Key")
	}

	order, err := h.orderSvc.Create(c.Request.Context(), input)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Created(c, order)
}

// ListOrders 获取会话历史订单（新到旧）
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orderSvc.ListBySession(c.Param("id"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, orders)
}
