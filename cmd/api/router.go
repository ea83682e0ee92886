package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jenishs/library/docs" // swag生成的OpenAPI文档
	"github.com/jenishs/library/internal/infrastructure/config"
	"github.com/jenishs/library/internal/interface/http/handler"
	"github.com/jenishs/library/internal/interface/http/middleware"
)

// provideGinEngine 创建并配置Gin引擎
// 路由表与HTTP语义:
//
//	GET    /books                     200 图书数组
//	POST   /books                     201 | 400(缺必填字段)
//	PUT    /books/:id                 200 | 404
//	DELETE /books/:id                 204 | 404 | 400(存在借阅记录)
//	GET    /members                   200 会员数组
//	POST   /members                   201 | 400
//	PUT    /members/:id               200 | 404
//	DELETE /members/:id               204 | 404 | 400(存在借阅记录)
//	GET    /transactions              200 借阅记录数组(含联表展示字段)
//	POST   /transactions/issue        201 | 400(无可借副本) | 404(图书不存在)
//	PUT    /transactions/:id/return   200 | 404 | 400(已归还)
//	GET    /stats                     200 统计面板
func provideGinEngine(
	cfg *config.Config,
	bookHandler *handler.BookHandler,
	memberHandler *handler.MemberHandler,
	transactionHandler *handler.TransactionHandler,
	statsHandler *handler.StatsHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.CORS))

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标端点
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档
	// 访问 http://localhost:8000/swagger/index.html 查看API文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 图书模块
	books := r.Group("/books")
	{
		books.GET("", bookHandler.ListBooks)
		books.POST("", bookHandler.AddBook)
		books.PUT("/:id", bookHandler.UpdateBook)
		books.DELETE("/:id", bookHandler.DeleteBook)
	}

	// 会员模块
	members := r.Group("/members")
	{
		members.GET("", memberHandler.ListMembers)
		members.POST("", memberHandler.RegisterMember)
		members.PUT("/:id", memberHandler.UpdateMember)
		members.DELETE("/:id", memberHandler.DeleteMember)
	}

	// 借阅模块
	transactions := r.Group("/transactions")
	{
		transactions.GET("", transactionHandler.ListTransactions)
		transactions.POST("/issue", transactionHandler.IssueBook)
		transactions.PUT("/:id/return", transactionHandler.ReturnBook)
	}

	// 统计面板
	r.GET("/stats", statsHandler.GetStats)

	return r
}
