package shared

import (
	"errors"

	"github.com/bellu-mart/internal/http/response"
	"github.com/bellu-mart/internal/logger"
	"github.com/bellu-mart/internal/service"

	"github.com/gin-gonic/gin"
)

// HandleServiceError 把服务层错误映射为统一响应
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrConfigNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidSessionID),
		errors.Is(err, service.ErrInvalidOrderStatus),
		errors.Is(err, service.ErrInvalidOrderInput),
		errors.Is(err, service.ErrInvalidConfigValue),
		errors.Is(err, service.ErrInvalidPincode),
		errors.Is(err, service.ErrInvalidProductInput),
		errors.Is(err, service.ErrCartEmpty):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrStatusNotAllowed),
		errors.Is(err, service.ErrOrderTotalMismatch),
		errors.Is(err, service.ErrDuplicateOrder):
		response.Conflict(c, err.Error())
	default:
		logger.Errorw("request_failed",
			"path", c.FullPath(),
			"method", c.Request.Method,
			"error", err,
		)
		response.InternalError(c, "internal server error")
	}
}
