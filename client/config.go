package client

import (
	"github.com/BaSui01/nextleg/config"
)

// Client holds both facades built from one configuration. Both are always
// set; cfg.API.Balanced only tells callers which one to prefer.
type Client struct {
	Direct   *Direct
	Balanced *Balanced
}

// NewFromConfig builds both clients from a loaded configuration. opts are applied
// after the configured values, so they win.
func NewFromConfig(cfg *config.Config, opts ...Option) *Client {
	base := []Option{
		WithBaseURL(cfg.API.BaseURL),
		WithUpscaleBaseURL(cfg.API.UpscaleBaseURL),
		WithLoadBalancerURL(cfg.API.LoadBalancerURL),
		WithTimeout(cfg.API.Timeout),
		WithUserAgent(cfg.API.UserAgent),
	}
	all := append(base, opts...)

	return &Client{
		Direct:   NewDirect(cfg.API.Token, all...),
		Balanced: NewBalanced(cfg.API.Token, all...),
	}
}
