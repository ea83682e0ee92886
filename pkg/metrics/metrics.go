// Package metrics 提供基于Prometheus的指标收集
//
// 指标分两类：
//   - HTTP指标：请求总数、耗时分布、并发处理数（由中间件自动记录）
//   - 业务指标：借出/归还总数、逾期归还数、累计罚金（由用例层记录）
//
// 使用方式：
//
//	func main() {
//	    metrics.InitMetrics()
//	    r.GET("/metrics", gin.WrapH(promhttp.Handler()))
//	}
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// initialized 防止重复注册（promauto重复注册会panic）
var initialized bool

// HTTP请求指标
var (
	HTTPRequestsTotal      *prometheus.CounterVec
	HTTPRequestDuration    *prometheus.HistogramVec
	HTTPRequestsInProgress prometheus.Gauge
)

// 借阅业务指标
var (
	BooksIssuedTotal    prometheus.Counter
	BooksReturnedTotal  prometheus.Counter
	OverdueReturnsTotal prometheus.Counter
	FinesAssessedTotal  prometheus.Counter
)

// InitMetrics 初始化所有Prometheus指标
// 必须在程序启动时调用一次，用于注册所有指标到全局Registry
func InitMetrics() {
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"}, // 标签：方法、路径、状态码
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP请求耗时（秒）",
			// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 借阅业务指标
	BooksIssuedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_issued_total",
			Help: "图书借出总数",
		},
	)

	BooksReturnedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "books_returned_total",
			Help: "图书归还总数",
		},
	)

	OverdueReturnsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "overdue_returns_total",
			Help: "逾期归还总数",
		},
	)

	FinesAssessedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fines_assessed_total",
			Help: "累计罚金金额（元）",
		},
	)
}

// IncCounter 递增Counter（便捷函数，nil安全，便于未初始化时的单元测试）
func IncCounter(counter prometheus.Counter) {
	if counter != nil {
		counter.Inc()
	}
}

// AddCounter 按量递增Counter（用于金额类指标）
func AddCounter(counter prometheus.Counter, value float64) {
	if counter != nil {
		counter.Add(value)
	}
}
