package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/jenishs/library/internal/infrastructure/config"
	"github.com/jenishs/library/pkg/logger"
	"github.com/jenishs/library/pkg/metrics"
)

// @title           Library Management API
// @version         1.0
// @description     图书馆管理服务:图书、会员、借阅记录与统计面板
// @BasePath        /

// main 主程序入口
// 启动顺序:配置 → 日志 → 指标 → Wire依赖注入 → HTTP Server
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志(在任何业务组件之前)
	if err := logger.Init(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	}); err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()

	// 3. 注册Prometheus指标
	metrics.InitMetrics()

	// 4. Wire依赖注入(创建DB连接、仓储、用例、处理器与Gin引擎)
	engine, err := InitializeApp(cfg)
	if err != nil {
		logger.L().Fatal("初始化应用失败", zap.Error(err))
	}

	// 5. 启动HTTP Server(带超时配置与优雅停机)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.L().Info("服务启动",
			zap.Int("port", cfg.Server.Port),
			zap.String("mode", cfg.Server.Mode),
			zap.String("database", fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal("启动服务失败", zap.Error(err))
		}
	}()

	// 等待停机信号
	<-ctx.Done()
	logger.L().Info("收到停机信号,开始优雅停机")

	// 给在途请求最多10秒完成
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.L().Error("优雅停机失败", zap.Error(err))
	}

	logger.L().Info("服务已退出")
}
