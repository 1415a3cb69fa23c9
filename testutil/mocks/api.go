// MockAPI 的 TheNextLeg API 测试模拟实现。
//
// 基于 httptest.Server，记录每次请求，支持按路径配置响应与错误注入。
package mocks

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// --- MockAPI 结构 ---

// RecordedRequest 记录单次请求
type RecordedRequest struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Reply 单个路径的响应配置
type Reply struct {
	Status int
	Body   string
}

// MockAPI 是 TheNextLeg API 的模拟服务器
type MockAPI struct {
	mu sync.Mutex

	server   *httptest.Server
	replies  map[string]Reply
	fallback Reply
	requests []RecordedRequest
}

// --- 构造函数和 Builder 方法 ---

// NewMockAPI 启动模拟服务器，测试结束时自动关闭。
// 未配置的路径返回 200 和一个成功的 MessageResponse。
func NewMockAPI(t testing.TB) *MockAPI {
	t.Helper()
	m := &MockAPI{
		replies: make(map[string]Reply),
		fallback: Reply{
			Status: http.StatusOK,
			Body:   `{"success":true,"messageId":"mock-message","createdAt":"2023-05-01T10:00:00.000Z"}`,
		},
	}
	m.server = httptest.NewServer(http.HandlerFunc(m.handle))
	t.Cleanup(m.server.Close)
	return m
}

// WithReply 为 path 设置固定 JSON 响应
func (m *MockAPI) WithReply(path string, status int, body string) *MockAPI {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies[path] = Reply{Status: status, Body: body}
	return m
}

// WithFallback 设置未配置路径的响应
func (m *MockAPI) WithFallback(status int, body string) *MockAPI {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = Reply{Status: status, Body: body}
	return m
}

// --- 访问方法 ---

// URL 返回服务器根地址
func (m *MockAPI) URL() string {
	return m.server.URL
}

// Requests 返回已记录请求的副本
func (m *MockAPI) Requests() []RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]RecordedRequest, len(m.requests))
	copy(out, m.requests)
	return out
}

// LastRequest 返回最后一次请求；没有请求时 ok 为 false
func (m *MockAPI) LastRequest() (RecordedRequest, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return RecordedRequest{}, false
	}
	return m.requests[len(m.requests)-1], true
}

// CallCount 返回请求次数
func (m *MockAPI) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Reset 清空请求记录
func (m *MockAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = nil
}

func (m *MockAPI) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	m.mu.Lock()
	m.requests = append(m.requests, RecordedRequest{
		Method:   r.Method,
		Path:     r.URL.Path,
		RawQuery: r.URL.RawQuery,
		Header:   r.Header.Clone(),
		Body:     body,
	})
	reply, ok := m.replies[r.URL.Path]
	if !ok {
		reply = m.lookupPrefix(r.URL.Path)
	}
	m.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(reply.Status)
	_, _ = io.WriteString(w, reply.Body)
}

// lookupPrefix 匹配以 "/" 结尾的前缀路径，例如 "/v2/message/"
func (m *MockAPI) lookupPrefix(path string) Reply {
	best := ""
	for p := range m.replies {
		if strings.HasSuffix(p, "/") && strings.HasPrefix(path, p) && len(p) > len(best) {
			best = p
		}
	}
	if best == "" {
		return m.fallback
	}
	return m.replies[best]
}
