// =============================================================================
// 📦 nextleg 默认配置
// =============================================================================
// 提供所有配置项的合理默认值
// =============================================================================
package config

// 服务默认地址
const (
	DefaultBaseURL         = "https://api.thenextleg.io/v2"
	DefaultUpscaleBaseURL  = "https://api.thenextleg.io"
	DefaultLoadBalancerURL = "https://api.thenextleg.io/loadBalancer"
)

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		API:       DefaultAPIConfig(),
		Log:       DefaultLogConfig(),
		Telemetry: DefaultTelemetryConfig(),
		Metrics:   DefaultMetricsConfig(),
	}
}

// DefaultAPIConfig 返回默认 API 配置。Token 没有默认值。
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		BaseURL:         DefaultBaseURL,
		UpscaleBaseURL:  DefaultUpscaleBaseURL,
		LoadBalancerURL: DefaultLoadBalancerURL,
		UserAgent:       "nextleg-go",
	}
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:            "info",
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		EnableCaller:     false,
		EnableStacktrace: false,
	}
}

// DefaultTelemetryConfig 返回默认遥测配置
func DefaultTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		Enabled:      false,
		OTLPEndpoint: "localhost:4317",
		ServiceName:  "nextleg",
		SampleRate:   0.1,
	}
}

// DefaultMetricsConfig 返回默认指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{Enabled: false}
}
