package admin

import (
	"strings"
	"time"

	"github.com/bellu-mart/internal/http/handlers/shared"
	"github.com/bellu-mart/internal/http/response"
	"github.com/bellu-mart/internal/repository"

	"github.com/gin-gonic/gin"
)

// parseOrderTime 解析时间过滤参数，兼容 RFC3339 与纯日期两种写法
func parseOrderTime(raw string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ListOrders 管理端订单列表，支持状态、会话、单日与时间范围过滤
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := shared.ParsePagination(c)
	filter := repository.OrderListFilter{
		Page:      page,
		PageSize:  pageSize,
		SessionID: strings.TrimSpace(c.Query("session_id")),
		Status:    strings.TrimSpace(c.Query("status")),
	}
	if raw := strings.TrimSpace(c.Query("date")); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "invalid date")
			return
		}
		// 单日过滤展开为当日 00:00 起、不含次日 00:00 的闭区间
		end := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.CreatedFrom = &day
		filter.CreatedTo = &end
	}
	if raw := strings.TrimSpace(c.Query("created_from")); raw != "" {
		t, ok := parseOrderTime(raw)
		if !ok {
			response.BadRequest(c, "invalid created_from")
			return
		}
		filter.CreatedFrom = &t
	}
	if raw := strings.TrimSpace(c.Query("created_to")); raw != "" {
		t, ok := parseOrderTime(raw)
		if !ok {
			response.BadRequest(c, "invalid created_to")
			return
		}
		filter.CreatedTo = &t
	}

	orders, total, err := h.orderSvc.ListAdmin(filter)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Page(c, orders, total, page, pageSize)
}

// UpdateOrderStatus 覆写订单状态
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := shared.ParseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "invalid order id")
		return
	}
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	order, err := h.orderSvc.UpdateStatus(id, input.Status)
	if err != nil {
		shared.HandleServiceError(c, err)
		return
	}
	response.Success(c, order)
}
