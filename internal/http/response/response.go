package response

import (
	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
type Response struct {
	StatusCode int         `json:"status_code"` // 业务状态码（与 HTTP 状态码同值）
	Msg        string      `json:"msg"`         // 提示信息
	Data       interface{} `json:"data"`        // 数据
}

// JSON 输出响应，HTTP 状态码与业务码保持一致
func JSON(c *gin.Context, code int, msg string, data interface{}) {
	c.JSON(code, Response{
		StatusCode: code,
		Msg:        msg,
		Data:       data,
	})
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	JSON(c, CodeOK, "success", data)
}

// Created 创建成功响应
func Created(c *gin.Context, data interface{}) {
	JSON(c, CodeCreated, "created", data)
}

// BadRequest 参数错误响应
func BadRequest(c *gin.Context, msg string) {
	JSON(c, CodeBadRequest, msg, nil)
}

// NotFound 资源不存在响应
func NotFound(c *gin.Context, msg string) {
	JSON(c, CodeNotFound, msg, nil)
}

// Conflict 冲突响应
func Conflict(c *gin.Context, msg string) {
	JSON(c, CodeConflict, msg, nil)
}

// TooManyRequests 限流响应
func TooManyRequests(c *gin.Context, msg string) {
	JSON(c, CodeTooManyRequests, msg, nil)
}

// InternalError 服务器错误响应
func InternalError(c *gin.Context, msg string) {
	JSON(c, CodeInternalError, msg, nil)
}

// PageData 分页响应数据
type PageData struct {
	List     interface{} `json:"list"`
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
}

// Page 分页成功响应
func Page(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	Success(c, PageData{
		List:     list,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
