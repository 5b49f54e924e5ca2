package admin

import (
	"github.com/bellu-mart/internal/http/handlers/shared"
	"github.com/bellu-mart/internal/http/response"
	"github.com/bellu-mart/internal/service"

	"github.com/gin-gonic/gin"
)

// ListConfig 全部配置项
func (h *Handler) ListConfig(c *gin.Context) {
	entries, err := h.configSvc.List()
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, entries)
}

// GetConfig 单个配置项
func (h *Handler) GetConfig(c *gin.Context) {
	entry, err := h.configSvc.Get(c.Param("key"))
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, entry)
}

// SetConfig 写入配置项，存在则覆盖
func (h *Handler) SetConfig(c *gin.Context) {
	var input service.ConfigSetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	entry, err := h.configSvc.Set(input)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, entry)
}
