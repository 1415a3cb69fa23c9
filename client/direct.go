package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/BaSui01/nextleg/internal/transport"
	"github.com/BaSui01/nextleg/types"
)

// Direct talks to a single account through the v2 API.
// A Direct is safe for concurrent use.
type Direct struct {
	baseURL        string
	upscaleBaseURL string
	t              *transport.Transport
}

// NewDirect creates a Direct client authenticated with token. The token is
// not checked; a bad one surfaces as ErrUnauthorized on the first call.
func NewDirect(token string, opts ...Option) *Direct {
	o := applyOptions(opts)
	return &Direct{
		baseURL:        o.baseURL,
		upscaleBaseURL: o.upscaleBaseURL,
		t:              o.newTransport(token, "direct"),
	}
}

// Imagine submits prompt as a generation job.
func (c *Direct) Imagine(ctx context.Context, prompt string, opts ...RequestOption) (*types.MessageResponse, error) {
	req := types.ImagineRequest{Msg: prompt, BaseRequest: baseRequest(opts)}
	return c.message(ctx, opImagine, pathImagine, req)
}

// Img2Img submits an image-conditioned job. The message is imageURL, a
// space, then prompt; neither part is validated.
func (c *Direct) Img2Img(ctx context.Context, prompt, imageURL string, opts ...RequestOption) (*types.MessageResponse, error) {
	req := types.ImagineRequest{Msg: imageURL + " " + prompt, BaseRequest: baseRequest(opts)}
	return c.message(ctx, opImg2Img, pathImagine, req)
}

// Describe asks for text descriptions of the image at imageURL.
func (c *Direct) Describe(ctx context.Context, imageURL string, opts ...RequestOption) (*types.MessageResponse, error) {
	req := types.DescribeRequest{URL: imageURL, BaseRequest: baseRequest(opts)}
	return c.message(ctx, opDescribe, pathDescribe, req)
}

// Button presses button on the message buttonMessageID.
func (c *Direct) Button(ctx context.Context, button types.Button, buttonMessageID string, opts ...RequestOption) (*types.MessageResponse, error) {
	req := types.ButtonRequest{Button: button, ButtonMessageID: buttonMessageID, BaseRequest: baseRequest(opts)}
	return c.message(ctx, opButton, pathButton, req)
}

// GetSeed returns the seed used for messageID.
func (c *Direct) GetSeed(ctx context.Context, messageID string) (*types.SeedResponse, error) {
	var out types.SeedResponse
	err := c.t.Do(ctx, transport.Call{
		Operation: opGetSeed,
		Method:    http.MethodPost,
		URL:       transport.Endpoint(c.baseURL, pathSeed),
		Body:      types.SeedRequest{MessageID: messageID},
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SlashCommand runs an account-level command.
func (c *Direct) SlashCommand(ctx context.Context, cmd types.SlashCommand, opts ...RequestOption) (*types.MessageResponse, error) {
	req := types.SlashCommandRequest{Cmd: cmd, BaseRequest: baseRequest(opts)}
	return c.message(ctx, opSlashCommand, pathSlashCommands, req)
}

// GetSettings requests the account settings panel. The panel itself arrives
// as a settings webhook.
func (c *Direct) GetSettings(ctx context.Context) (*types.MessageResponse, error) {
	return c.message(ctx, opGetSettings, pathSettings, nil)
}

// SetSettings toggles setting.
func (c *Direct) SetSettings(ctx context.Context, setting types.Setting, opts ...RequestOption) (*types.MessageResponse, error) {
	req := types.SettingsRequest{SettingsToggle: setting, BaseRequest: baseRequest(opts)}
	return c.message(ctx, opSetSettings, pathSettings, req)
}

// GetInfo requests account information, delivered as an info webhook.
func (c *Direct) GetInfo(ctx context.Context) (*types.MessageResponse, error) {
	return c.message(ctx, opGetInfo, pathInfo, nil)
}

// GetMessageAndProgress polls messageID. With expireMinutes > 0 the server
// is asked to hold the request for up to that many minutes; otherwise the
// query is omitted.
func (c *Direct) GetMessageAndProgress(ctx context.Context, messageID string, expireMinutes int) (*types.MessageAndProgress, error) {
	q := &transport.Query{}
	if expireMinutes > 0 {
		q.Add(paramExpireMins, strconv.Itoa(expireMinutes))
	}
	return getMessage(ctx, c.t, transport.WithQuery(transport.Endpoint(c.baseURL, pathMessage, messageID), q))
}

// UpscaleImgURL returns the image URL produced by an upscale button.
func (c *Direct) UpscaleImgURL(ctx context.Context, button types.Button, buttonMessageID string) (*types.UpscaleURLResponse, error) {
	q := (&transport.Query{}).
		Add(paramButtonMessageID, buttonMessageID).
		Add(paramButton, string(button))

	var out types.UpscaleURLResponse
	err := c.t.Do(ctx, transport.Call{
		Operation: opUpscaleImgURL,
		Method:    http.MethodGet,
		URL:       transport.WithQuery(transport.Endpoint(c.upscaleBaseURL, pathUpscaleImgURL), q),
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// message POSTs body, or GETs when body is nil, and decodes a MessageResponse.
func (c *Direct) message(ctx context.Context, op, path string, body any) (*types.MessageResponse, error) {
	call := transport.Call{
		Operation: op,
		Method:    http.MethodPost,
		URL:       transport.Endpoint(c.baseURL, path),
		Body:      body,
	}
	if body == nil {
		call.Method = http.MethodGet
	}

	var out types.MessageResponse
	if err := c.t.Do(ctx, call, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func getMessage(ctx context.Context, t *transport.Transport, url string) (*types.MessageAndProgress, error) {
	var out types.MessageAndProgress
	err := t.Do(ctx, transport.Call{
		Operation: opGetMessageAndProgress,
		Method:    http.MethodGet,
		URL:       url,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}
