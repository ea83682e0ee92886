package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jenishs/library/internal/infrastructure/config"
)

// CORS 跨域资源共享中间件
//
// 设计说明:
// 1. 前端开发服务器(8080/8081/3000/5173)与本服务不同源,浏览器要求CORS头
// 2. Origin必须命中配置的白名单,不使用"*"
// 3. 预检请求(OPTIONS)直接以204短路,并放行配置的全部方法与头部
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// 非跨域请求(无Origin头)直接放行
		if origin == "" {
			c.Next()
			return
		}

		// 浏览器对同源的POST/PUT/DELETE也会带Origin头(比如本服务自己的
		// Swagger UI发起的请求),同源不属于CORS范畴,直接放行
		if origin == requestOrigin(c) {
			c.Next()
			return
		}

		// 检查Origin是否在允许列表中
		allowed := false
		for _, allowOrigin := range cfg.AllowOrigins {
			if allowOrigin == "*" || allowOrigin == origin {
				c.Header("Access-Control-Allow-Origin", allowOrigin)
				allowed = true
				break
			}
		}

		if !allowed {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		c.Header("Access-Control-Allow-Methods", allowMethods)
		c.Header("Access-Control-Allow-Headers", allowHeaders)

		// 是否允许携带认证信息(Cookie、Authorization header)
		if cfg.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		// 预检请求缓存时间,减少OPTIONS往返
		if cfg.MaxAge > 0 {
			c.Header("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		// 预检请求(OPTIONS)短路返回
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// requestOrigin 请求自身的源(scheme://host)
func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
