// =============================================================================
// 🧪 测试辅助函数
// =============================================================================
// 上下文与请求体解码辅助
//
// 使用方法:
//
//	ctx := testutil.TestContext(t)
//	body := testutil.DecodeBody[types.DescribeRequest](t, req.Body)
// =============================================================================

package testutil

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

// =============================================================================
// 🎯 上下文辅助
// =============================================================================

// TestContext 返回带 30s 超时的测试上下文，测试结束时取消
func TestContext(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// CancelledContext 返回已取消的上下文
func CancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

// =============================================================================
// 📦 请求体辅助
// =============================================================================

// DecodeBody 将记录下来的请求体解码为 T，失败时终止测试。
// 需要逐字节比较线上格式时直接比较 string(body)。
func DecodeBody[T any](t testing.TB, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("decode request body %q: %v", body, err)
	}
	return v
}
