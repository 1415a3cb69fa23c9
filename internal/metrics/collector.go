package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "nextleg"

// =============================================================================
// 📊 指标收集器
// =============================================================================

// Collector 记录 API 调用指标
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	responseSize    *prometheus.HistogramVec

	logger *zap.Logger
}

// NewCollector 创建指标收集器并注册到 reg。
// reg 为 nil 时使用 prometheus.DefaultRegisterer。同一 registry 上重复创建
// 会复用已注册的向量，多个客户端可共享一个 registry。
func NewCollector(namespace string, reg prometheus.Registerer, logger *zap.Logger) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Collector{
		logger: logger.With(zap.String("component", "metrics")),
	}

	c.requestsTotal = register(reg, c.logger, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of API requests",
		},
		[]string{"operation", "method", "status"},
	))

	c.requestDuration = register(reg, c.logger, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "API request duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60, 300},
		},
		[]string{"operation"},
	))

	c.responseSize = register(reg, c.logger, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "response_size_bytes",
			Help:      "API response size in bytes",
			Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
		},
		[]string{"operation"},
	))

	return c
}

// register 注册 collector；已注册时返回既有实例
func register[T prometheus.Collector](reg prometheus.Registerer, logger *zap.Logger, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				logger.Debug("reusing registered metric")
				return existing
			}
		}
		// 与 promauto 行为一致：其他注册错误视为编程错误
		panic(err)
	}
	return c
}

// =============================================================================
// 📈 记录方法
// =============================================================================

// RecordRequest 记录一次 API 调用。status 为 0 表示未收到响应。
func (c *Collector) RecordRequest(operation, method string, status int, duration time.Duration, responseSize int64) {
	c.requestsTotal.WithLabelValues(operation, method, StatusClass(status)).Inc()
	c.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if status != 0 {
		c.responseSize.WithLabelValues(operation).Observe(float64(responseSize))
	}
}

// =============================================================================
// 🔧 辅助函数
// =============================================================================

// StatusClass 将 HTTP 状态码归类为 2xx/3xx/4xx/5xx，0 记为 error
func StatusClass(code int) string {
	switch {
	case code == 0:
		return "error"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}
