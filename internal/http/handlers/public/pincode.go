package public

import (
	"github.com/bellu-mart/internal/http/handlers/shared"
	"github.com/bellu-mart/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CheckPincode 检查邮编是否可配送
func (h *Handler) CheckPincode(c *gin.Context) {
	var input struct {
		Pincode string `json:"pincode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	result, err := h.pincodeSvc.Check(input.Pincode)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, result)
}
