// =============================================================================
// nextleg HTTP transport
// =============================================================================
// One JSON round trip per call: fixed header pair, HTML-unescaped body,
// status mapping onto types.Error. No retries, no client-side validation.
// =============================================================================

package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/BaSui01/nextleg/internal/metrics"
	"github.com/BaSui01/nextleg/types"
)

const instrumentationName = "github.com/BaSui01/nextleg"

// maxErrorBody bounds how much of a non-2xx body is kept on the error.
const maxErrorBody = 1 << 20

// Config holds the collaborators of a Transport.
type Config struct {
	Credentials types.Credentials

	// HTTPClient defaults to NewHTTPClient(0).
	HTTPClient *http.Client

	// Logger defaults to zap.NewNop().
	Logger *zap.Logger

	// Metrics is optional.
	Metrics *metrics.Collector

	// TracerProvider defaults to the global otel provider.
	TracerProvider trace.TracerProvider

	// MeterProvider defaults to the global otel provider.
	MeterProvider metric.MeterProvider

	// UserAgent is sent when non-empty.
	UserAgent string
}

// Transport issues API calls. It holds no per-call state and is safe for
// concurrent use.
type Transport struct {
	creds     types.Credentials
	client    *http.Client
	logger    *zap.Logger
	metrics   *metrics.Collector
	otelm     *metrics.Instruments
	tracer    trace.Tracer
	userAgent string
}

// New creates a Transport from cfg.
func New(cfg Config) *Transport {
	client := cfg.HTTPClient
	if client == nil {
		client = NewHTTPClient(0)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	mp := cfg.MeterProvider
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	logger = logger.With(zap.String("component", "transport"))

	instruments, err := metrics.NewInstruments(mp, instrumentationName)
	if err != nil {
		logger.Warn("otel instruments unavailable", zap.Error(err))
	}

	return &Transport{
		creds:     cfg.Credentials,
		client:    client,
		logger:    logger,
		metrics:   cfg.Metrics,
		otelm:     instruments,
		tracer:    tp.Tracer(instrumentationName),
		userAgent: cfg.UserAgent,
	}
}

// Call describes one round trip.
type Call struct {
	// Operation names the client method, used in logs, spans and metrics.
	Operation string
	Method    string
	URL       string
	// Body is JSON-encoded when non-nil.
	Body any
}

// Do performs call and decodes a 2xx body into out.
func (t *Transport) Do(ctx context.Context, call Call, out any) error {
	ctx, span := t.tracer.Start(ctx, "nextleg."+call.Operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("nextleg.operation", call.Operation),
			attribute.String("http.request.method", call.Method),
			attribute.String("url.path", urlPath(call.URL)),
		))
	defer span.End()

	start := time.Now()
	status, size, err := t.do(ctx, call, out)
	duration := time.Since(start)

	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if t.metrics != nil {
		t.metrics.RecordRequest(call.Operation, call.Method, status, duration, size)
	}
	if t.otelm != nil {
		t.otelm.RecordRequest(ctx, call.Operation, call.Method, status, duration, size)
	}

	fields := []zap.Field{
		zap.String("operation", call.Operation),
		zap.String("method", call.Method),
		zap.String("path", urlPath(call.URL)),
		zap.Int("status", status),
		zap.Duration("duration", duration),
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.logger.Warn("api call failed", append(fields, zap.Error(err))...)
		return err
	}
	t.logger.Debug("api call", fields...)
	return nil
}

func (t *Transport) do(ctx context.Context, call Call, out any) (status int, size int64, err error) {
	var body io.Reader
	if call.Body != nil {
		payload, err := Encode(call.Body)
		if err != nil {
			return 0, 0, types.NewError(types.ErrEncode, "failed to encode request").
				WithCause(err).WithOperation(call.Operation)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, call.URL, body)
	if err != nil {
		return 0, 0, types.NewError(types.ErrInvalidRequest, "failed to create request").
			WithCause(err).WithOperation(call.Operation)
	}
	t.buildHeaders(req)

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, 0, types.NewError(types.ErrNetwork, "request failed").
			WithCause(err).WithOperation(call.Operation)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, int64(len(data)),
			types.NewAPIError(resp.StatusCode, string(bytes.TrimSpace(data))).WithOperation(call.Operation)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, int64(len(data)), types.NewError(types.ErrNetwork, "failed to read response").
			WithCause(err).WithOperation(call.Operation)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, int64(len(data)), types.NewError(types.ErrDecode, "failed to decode response").
				WithCause(err).WithOperation(call.Operation).WithBody(string(data))
		}
	}
	return resp.StatusCode, int64(len(data)), nil
}

// buildHeaders applies the fixed header pair to every request, GET included.
func (t *Transport) buildHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", t.creds.AuthorizationHeader())
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
}

// Encode marshals v without HTML escaping, so "<", ">" and "&" in prompts and
// URLs reach the server literally.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode %T: %w", v, err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func urlPath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Path
}
