package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/BaSui01/nextleg/internal/transport"
	"github.com/BaSui01/nextleg/types"
)

// Balanced talks to the load balancer, which spreads jobs across the
// accounts behind a token. Responses name the account and load-balance id
// that follow-up calls must carry.
type Balanced struct {
	baseURL string
	t       *transport.Transport
}

// NewBalanced creates a Balanced client authenticated with token.
func NewBalanced(token string, opts ...Option) *Balanced {
	o := applyOptions(opts)
	return &Balanced{
		baseURL: o.loadBalancerURL,
		t:       o.newTransport(token, "balanced"),
	}
}

// Imagine submits prompt to whichever account the balancer picks.
func (c *Balanced) Imagine(ctx context.Context, prompt string, opts ...RequestOption) (*types.BalancedMessageResponse, error) {
	req := types.ImagineRequest{Msg: prompt, BaseRequest: baseRequest(opts)}
	return c.post(ctx, opImagine, pathImagine, req)
}

// Describe asks for text descriptions of the image at imageURL.
func (c *Balanced) Describe(ctx context.Context, imageURL string, opts ...RequestOption) (*types.BalancedMessageResponse, error) {
	req := types.DescribeRequest{URL: imageURL, BaseRequest: baseRequest(opts)}
	return c.post(ctx, opDescribe, pathDescribe, req)
}

// Button presses button on buttonMessageID. loadBalanceID routes the press
// to the account that owns the message; it is sent as given.
func (c *Balanced) Button(ctx context.Context, button types.Button, buttonMessageID, loadBalanceID string, opts ...RequestOption) (*types.BalancedMessageResponse, error) {
	req := types.BalancedButtonRequest{
		ButtonRequest: types.ButtonRequest{
			Button:          button,
			ButtonMessageID: buttonMessageID,
			BaseRequest:     baseRequest(opts),
		},
		LoadBalanceID: loadBalanceID,
	}
	return c.post(ctx, opButton, pathButton, req)
}

// GetMessageAndProgress polls messageID on the account named by
// loadBalanceID. expireMinutes behaves as on Direct.
func (c *Balanced) GetMessageAndProgress(ctx context.Context, messageID, loadBalanceID string, expireMinutes int) (*types.MessageAndProgress, error) {
	q := (&transport.Query{}).Add(paramLoadBalanceID, loadBalanceID)
	if expireMinutes > 0 {
		q.Add(paramExpireMins, strconv.Itoa(expireMinutes))
	}
	return getMessage(ctx, c.t, transport.WithQuery(transport.Endpoint(c.baseURL, pathMessage, messageID), q))
}

func (c *Balanced) post(ctx context.Context, op, path string, body any) (*types.BalancedMessageResponse, error) {
	var out types.BalancedMessageResponse
	err := c.t.Do(ctx, transport.Call{
		Operation: op,
		Method:    http.MethodPost,
		URL:       transport.Endpoint(c.baseURL, path),
		Body:      body,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
