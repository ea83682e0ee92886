package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/jenishs/library/pkg/errors"
	"github.com/jenishs/library/pkg/logger"
)

// ErrorBody 错误响应结构
// 设计说明：
// 1. Code是业务错误码（非HTTP状态码），方便客户端判断错误类型
// 2. Error是用户友好的提示信息
// 3. 成功响应不使用信封，直接返回实体JSON（前端按REST语义消费）
type ErrorBody struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// JSON 成功响应，按HTTP语义返回指定状态码与实体数据
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// OK 200响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201响应（资源创建成功）
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204响应（删除成功，无响应体）
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := issueUseCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	// 提取AppError
	appErr := apperrors.GetAppError(err)

	// 记录详细错误到日志（包含内部错误）
	if appErr.Err != nil {
		logger.L().Error("request failed",
			zap.Int("code", appErr.Code),
			zap.String("path", c.Request.URL.Path),
			zap.Error(appErr.Err),
		)
	}

	// 返回用户友好的错误信息
	c.JSON(appErr.HTTPStatus(), ErrorBody{
		Code:  appErr.Code,
		Error: appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}
