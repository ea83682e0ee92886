package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jenishs/library/pkg/logger"
)

// Logger 请求日志中间件
//
// 设计说明:
// 1. 记录每个请求的基本信息(方法、路径、耗时、状态码)
// 2. 生成唯一的请求ID并回写X-Request-ID响应头,便于排查问题
// 3. 结构化输出走zap,便于日志采集与检索
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 生成请求ID
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		start := time.Now()

		c.Next()

		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		logger.L().Info("request", fields...)

		// 慢请求单独告警
		if latency > 3*time.Second {
			logger.L().Warn("slow request",
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.Duration("latency", latency),
			)
		}
	}
}
