package client

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/BaSui01/nextleg/internal/metrics"
	"github.com/BaSui01/nextleg/internal/transport"
	"github.com/BaSui01/nextleg/types"
)

// Option configures a Direct or Balanced client.
type Option func(*options)

type options struct {
	baseURL         string
	upscaleBaseURL  string
	loadBalancerURL string
	httpClient      *http.Client
	timeout         time.Duration
	logger          *zap.Logger
	registerer      prometheus.Registerer
	tracerProvider  trace.TracerProvider
	meterProvider   metric.MeterProvider
	userAgent       string
}

func defaultOptions() options {
	return options{
		baseURL:         DefaultBaseURL,
		upscaleBaseURL:  DefaultUpscaleBaseURL,
		loadBalancerURL: DefaultLoadBalancerURL,
		logger:          zap.NewNop(),
	}
}

// WithBaseURL overrides the direct API base URL.
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithUpscaleBaseURL overrides the host serving the upscale image lookup.
func WithUpscaleBaseURL(u string) Option {
	return func(o *options) { o.upscaleBaseURL = u }
}

// WithLoadBalancerURL overrides the load-balancer base URL.
func WithLoadBalancerURL(u string) Option {
	return func(o *options) { o.loadBalancerURL = u }
}

// WithHTTPClient sets the underlying http.Client. It takes precedence over
// WithTimeout.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithTimeout bounds each call. Zero, the default, leaves the deadline to the
// caller's context.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMetrics registers call metrics on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithTracerProvider sets the provider used for per-call spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithMeterProvider sets the provider used for the OTel call counter and
// duration histogram.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) { o.meterProvider = mp }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) newTransport(token, component string) *transport.Transport {
	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = transport.NewHTTPClient(o.timeout)
	}
	logger := o.logger.With(zap.String("client", component))

	var collector *metrics.Collector
	if o.registerer != nil {
		collector = metrics.NewCollector(metrics.DefaultNamespace, o.registerer, logger)
	}

	return transport.New(transport.Config{
		Credentials:    types.NewCredentials(token),
		HTTPClient:     httpClient,
		Logger:         logger,
		Metrics:        collector,
		TracerProvider: o.tracerProvider,
		MeterProvider:  o.meterProvider,
		UserAgent:      o.userAgent,
	})
}

// =============================================================================
// Per-call options
// =============================================================================

// RequestOption sets the optional fields shared by job-submitting requests.
type RequestOption func(*types.BaseRequest)

// WithRef sets the caller correlation string echoed back on the webhook.
func WithRef(ref string) RequestOption {
	return func(b *types.BaseRequest) { b.Ref = ref }
}

// WithWebhookOverride sends the result to url instead of the account webhook.
func WithWebhookOverride(url string) RequestOption {
	return func(b *types.BaseRequest) { b.WebhookOverride = url }
}

func baseRequest(opts []RequestOption) types.BaseRequest {
	var b types.BaseRequest
	for _, opt := range opts {
		opt(&b)
	}
	return b
}
