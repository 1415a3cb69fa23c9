// Package nextleg provides a top-level convenience entry point for the
// TheNextLeg image generation API.
//
// Usage:
//
//	import "github.com/BaSui01/nextleg"
//
//	c := nextleg.New(os.Getenv("NEXTLEG_API_TOKEN"))
//	resp, err := c.Imagine(ctx, "A cat playing piano", nextleg.WithRef("job-1"))
//
//	lb := nextleg.NewBalanced(token)
//	job, err := lb.Imagine(ctx, "A cat playing piano")
//	poll, err := lb.GetMessageAndProgress(ctx, job.MessageID, job.LoadBalanceID, 5)
//
// This is a thin wrapper around [client]; both produce identical results.
package nextleg

import (
	"github.com/BaSui01/nextleg/client"
	"github.com/BaSui01/nextleg/config"
)

// Option configures a client created by [New] or [NewBalanced].
type Option = client.Option

// RequestOption sets per-call ref and webhookOverride.
type RequestOption = client.RequestOption

// New creates a [client.Direct].
func New(token string, opts ...Option) *client.Direct {
	return client.NewDirect(token, opts...)
}

// NewBalanced creates a [client.Balanced].
func NewBalanced(token string, opts ...Option) *client.Balanced {
	return client.NewBalanced(token, opts...)
}

// FromEnv loads configuration from NEXTLEG_* environment variables and
// builds both clients.
func FromEnv(opts ...Option) (*client.Client, error) {
	cfg, err := config.NewLoader().WithValidator((*config.Config).Validate).Load()
	if err != nil {
		return nil, err
	}
	return client.NewFromConfig(cfg, opts...), nil
}

// Re-export option shortcuts so callers never need to import client/.

// WithRef sets the caller correlation string.
var WithRef = client.WithRef

// WithWebhookOverride redirects the result webhook.
var WithWebhookOverride = client.WithWebhookOverride

// WithBaseURL overrides the direct API base URL.
var WithBaseURL = client.WithBaseURL

// WithLoadBalancerURL overrides the load-balancer base URL.
var WithLoadBalancerURL = client.WithLoadBalancerURL

// WithLogger sets a custom zap logger.
var WithLogger = client.WithLogger

// WithTimeout bounds each call.
var WithTimeout = client.WithTimeout
