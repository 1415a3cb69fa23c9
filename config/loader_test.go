// 配置加载器与默认配置测试。
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- 默认配置测试 ---

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// 验证 API 默认值
	assert.Empty(t, cfg.API.Token)
	assert.Equal(t, "https://api.thenextleg.io/v2", cfg.API.BaseURL)
	assert.Equal(t, "https://api.thenextleg.io", cfg.API.UpscaleBaseURL)
	assert.Equal(t, "https://api.thenextleg.io/loadBalancer", cfg.API.LoadBalancerURL)
	assert.False(t, cfg.API.Balanced)
	assert.Zero(t, cfg.API.Timeout)

	// 验证 Log 默认值
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	// 验证 Telemetry / Metrics 默认值
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "nextleg", cfg.Telemetry.ServiceName)
	assert.False(t, cfg.Metrics.Enabled)
}

// --- Loader 测试 ---

func TestLoader_LoadDefaults(t *testing.T) {
	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
}

func TestLoader_LoadFromYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
api:
  token: "yaml-token"
  base_url: "https://staging.example.com/v2"
  balanced: true
  timeout: 90s

log:
  level: debug
  format: json
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o600))

	cfg, err := NewLoader().WithConfigPath(configPath).Load()
	require.NoError(t, err)

	assert.Equal(t, "yaml-token", cfg.API.Token)
	assert.Equal(t, "https://staging.example.com/v2", cfg.API.BaseURL)
	assert.True(t, cfg.API.Balanced)
	assert.Equal(t, 90*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	// 未指定的字段保留默认值
	assert.Equal(t, DefaultLoadBalancerURL, cfg.API.LoadBalancerURL)
}

func TestLoader_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := NewLoader().WithConfigPath(filepath.Join(t.TempDir(), "absent.yaml")).Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.API.BaseURL)
}

func TestLoader_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("api: [unclosed"), 0o600))

	_, err := NewLoader().WithConfigPath(configPath).Load()
	assert.Error(t, err)
}

func TestLoader_EnvOverridesYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("api:\n  token: from-file\n"), 0o600))

	t.Setenv("NEXTLEG_API_TOKEN", "from-env")
	t.Setenv("NEXTLEG_API_TIMEOUT", "2m")
	t.Setenv("NEXTLEG_LOG_OUTPUT_PATHS", "stderr, /tmp/nextleg.log")
	t.Setenv("NEXTLEG_TELEMETRY_SAMPLE_RATE", "0.5")
	t.Setenv("NEXTLEG_METRICS_ENABLED", "true")

	cfg, err := NewLoader().WithConfigPath(configPath).Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.API.Token)
	assert.Equal(t, 2*time.Minute, cfg.API.Timeout)
	assert.Equal(t, []string{"stderr", "/tmp/nextleg.log"}, cfg.Log.OutputPaths)
	assert.Equal(t, 0.5, cfg.Telemetry.SampleRate)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoader_CustomEnvPrefix(t *testing.T) {
	t.Setenv("MJ_API_TOKEN", "custom")

	cfg, err := NewLoader().WithEnvPrefix("MJ").Load()
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.API.Token)
}

func TestLoader_InvalidEnvValue(t *testing.T) {
	t.Setenv("NEXTLEG_API_TIMEOUT", "soon")

	_, err := NewLoader().Load()
	assert.Error(t, err)
}

func TestLoader_WithValidator(t *testing.T) {
	_, err := NewLoader().WithValidator((*Config).Validate).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api token is required")

	t.Setenv("NEXTLEG_API_TOKEN", "tok")
	cfg, err := NewLoader().WithValidator((*Config).Validate).Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", cfg.API.Token)
}

// --- 验证测试 ---

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"blank token", func(c *Config) { c.API.Token = "  " }, "api token is required"},
		{"relative base url", func(c *Config) { c.API.BaseURL = "/v2" }, "base_url"},
		{"bad scheme", func(c *Config) { c.API.LoadBalancerURL = "ftp://h/lb" }, "load_balancer_url"},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }, "timeout"},
		{"sample rate", func(c *Config) { c.Telemetry.SampleRate = 2 }, "sample_rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.API.Token = "tok"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMustLoad_Panics(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("api: [unclosed"), 0o600))

	assert.Panics(t, func() { MustLoad(configPath) })
}
