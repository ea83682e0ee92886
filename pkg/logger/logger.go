// Package logger 基于zap的结构化日志封装
//
// 设计说明：
// 1. 统一通过logger.L()获取全局Logger，避免各包自建日志器
// 2. 配置项（级别、格式、输出位置）来自config.yaml的log段
// 3. format=console用于本地开发（带颜色），format=json用于生产（便于采集）
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options 日志配置
// 与config.LogConfig字段一一对应，pkg层不反向依赖internal
type Options struct {
	Level        string // debug | info | warn | error
	Format       string // console | json
	Output       string // stdout | stderr | /path/to/file
	EnableCaller bool   // 是否记录调用位置
}

// global 全局Logger
// 默认是Nop，Init之前的调用不会panic（便于单元测试）
var global = zap.NewNop()

// L 获取全局Logger
func L() *zap.Logger {
	return global
}

// Init 初始化全局Logger
// 必须在main中尽早调用一次
func Init(opts Options) error {
	level, err := zapcore.ParseLevel(opts.Level)
	if err != nil {
		return fmt.Errorf("无效的日志级别 %q: %w", opts.Level, err)
	}

	// 编码器：console带颜色便于肉眼阅读，json便于日志采集
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	var encoder zapcore.Encoder
	if opts.Format == "console" {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encCfg)
	}

	// 输出位置
	var sink zapcore.WriteSyncer
	switch opts.Output {
	case "", "stdout":
		sink = zapcore.AddSync(os.Stdout)
	case "stderr":
		sink = zapcore.AddSync(os.Stderr)
	default:
		f, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("打开日志文件失败: %w", err)
		}
		sink = zapcore.AddSync(f)
	}

	core := zapcore.NewCore(encoder, sink, level)

	zapOpts := []zap.Option{}
	if opts.EnableCaller {
		zapOpts = append(zapOpts, zap.AddCaller())
	}

	global = zap.New(core, zapOpts...)
	return nil
}

// Sync 刷新缓冲区（进程退出前调用）
func Sync() {
	_ = global.Sync()
}
