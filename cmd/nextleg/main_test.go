package main

import (
	"bytes"
	"flag"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BaSui01/nextleg/testutil"
	"github.com/BaSui01/nextleg/testutil/fixtures"
	"github.com/BaSui01/nextleg/testutil/mocks"
	"github.com/BaSui01/nextleg/types"
)

func setupAPI(t *testing.T) *mocks.MockAPI {
	t.Helper()
	api := mocks.NewMockAPI(t)
	t.Setenv("NEXTLEG_API_TOKEN", "cli-token")
	t.Setenv("NEXTLEG_API_BASE_URL", api.URL()+"/v2")
	t.Setenv("NEXTLEG_API_UPSCALE_BASE_URL", api.URL())
	t.Setenv("NEXTLEG_API_LOAD_BALANCER_URL", api.URL()+"/lb")
	t.Setenv("NEXTLEG_LOG_LEVEL", "error")
	return api
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_NoArgs(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "paint")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Unknown command: paint")
}

func TestRun_VersionAndHelp(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "nextleg dev")

	code, stdout, _ = runCLI(t, "help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "upscale-url")
}

func TestRun_Listings(t *testing.T) {
	code, stdout, _ := runCLI(t, "buttons")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "🪄 Make Variations\n")

	code, stdout, _ = runCLI(t, "commands")
	assert.Equal(t, 0, code)
	assert.Equal(t, "relax\nfast\nprivate\nstealth\n", stdout)

	code, stdout, _ = runCLI(t, "settings", "list")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Remix mode\n")
}

func TestRun_Imagine(t *testing.T) {
	api := setupAPI(t)
	api.WithReply("/v2/imagine", http.StatusOK, fixtures.MessageResponseJSON("m-1"))

	code, stdout, stderr := runCLI(t, "imagine", "A", "cat", "--ref", "job-1", "playing piano")
	require.Equal(t, 0, code, stderr)

	resp := testutil.DecodeBody[types.MessageResponse](t, []byte(stdout))
	assert.Equal(t, "m-1", resp.MessageID)

	req, ok := api.LastRequest()
	require.True(t, ok)
	assert.Equal(t, `{"msg":"A cat playing piano","ref":"job-1","webhookOverride":""}`, string(req.Body))
	assert.Equal(t, "Bearer cli-token", req.Header.Get("Authorization"))
}

func TestRun_AutoRef(t *testing.T) {
	api := setupAPI(t)

	code, _, stderr := runCLI(t, "describe", "https://x/a.png", "--auto-ref")
	require.Equal(t, 0, code, stderr)

	req, _ := api.LastRequest()
	body := testutil.DecodeBody[types.DescribeRequest](t, req.Body)
	assert.Len(t, body.Ref, 36)
}

func TestRun_ProgressWithKind(t *testing.T) {
	api := setupAPI(t)
	api.WithReply("/v2/message/", http.StatusOK,
		fixtures.ProgressJSON(types.Progress{Percent: 100}, fixtures.ImagineResult("r", "https://cdn/i.png")))

	code, stdout, stderr := runCLI(t, "progress", "m-1", "--expire", "5", "--kind", "imagine")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `"kind": "imagine"`)
	assert.Contains(t, stdout, `"imageUrl": "https://cdn/i.png"`)

	req, _ := api.LastRequest()
	assert.Equal(t, "/v2/message/m-1", req.Path)
	assert.Equal(t, "expireMins=5", req.RawQuery)

	code, _, stderr = runCLI(t, "progress", "m-1", "--kind", "upscale")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown kind")
}

func TestRun_Balanced(t *testing.T) {
	api := setupAPI(t)

	code, _, stderr := runCLI(t, "button", "--balanced", "U1", "bm-1", "--load-balance-id", "lb-9")
	require.Equal(t, 0, code, stderr)
	req, _ := api.LastRequest()
	assert.Equal(t, "/lb/button", req.Path)
	assert.Contains(t, string(req.Body), `"loadBalanceId":"lb-9"`)

	code, _, stderr = runCLI(t, "seed", "--balanced", "m-1")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "not available on the load balancer")
}

func TestRun_UpscaleURL(t *testing.T) {
	api := setupAPI(t)
	api.WithReply("/upscale-img-url", http.StatusOK, `{"url":"https://cdn/u.png?a=1&b=2"}`)

	code, stdout, stderr := runCLI(t, "upscale-url", "U1", "abc123")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, `"url": "https://cdn/u.png?a=1&b=2"`)

	req, _ := api.LastRequest()
	assert.Equal(t, "buttonMessageId=abc123&button=U1", req.RawQuery)
}

func TestRun_Settings(t *testing.T) {
	api := setupAPI(t)

	code, _, stderr := runCLI(t, "settings", "set", "High", "quality", "(2x", "cost)")
	require.Equal(t, 0, code, stderr)
	req, _ := api.LastRequest()
	assert.Equal(t, `{"settingsToggle":"High quality (2x cost)","ref":"","webhookOverride":""}`, string(req.Body))

	code, _, _ = runCLI(t, "settings", "get")
	require.Equal(t, 0, code)
	req, _ = api.LastRequest()
	assert.Equal(t, http.MethodGet, req.Method)

	code, _, stderr = runCLI(t, "settings", "toggle")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage: nextleg settings")
}

func TestRun_APIErrorPrintsBody(t *testing.T) {
	api := setupAPI(t)
	api.WithFallback(http.StatusUnauthorized, fixtures.ErrorJSON("invalid token"))

	code, stdout, stderr := runCLI(t, "info")
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "UNAUTHORIZED")
	assert.Contains(t, stderr, "invalid token")
}

func TestRun_MissingToken(t *testing.T) {
	t.Setenv("NEXTLEG_API_TOKEN", "")

	code, _, stderr := runCLI(t, "info")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "api token is required")
}

func TestRun_MissingArgs(t *testing.T) {
	setupAPI(t)

	code, _, stderr := runCLI(t, "img2img", "https://x/a.png")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "Usage: nextleg img2img")
}

func TestRun_Metrics(t *testing.T) {
	setupAPI(t)
	t.Setenv("NEXTLEG_METRICS_ENABLED", "true")

	code, _, stderr := runCLI(t, "info")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, `nextleg_requests_total{method="GET",operation="getInfo",status="2xx"} 1`)
}

func TestParseInterspersed(t *testing.T) {
	var f cliFlags
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f.register(fs)

	args, err := parseInterspersed(fs, []string{"a", "--expire", "3", "b", "--", "--ref", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "--ref", "c"}, args)
	assert.Equal(t, 3, f.expire)
	assert.Empty(t, f.ref)

	_, err = parseInterspersed(fs, []string{"--no-such-flag"})
	assert.Error(t, err)
}
