package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind names the call that produced a job. Imagine, Button, SlashCommand and
// Settings results are identical on the wire, so the caller has to remember
// which call it made to read the payload back.
type Kind string

const (
	KindImagine      Kind = "imagine"
	KindButton       Kind = "button"
	KindDescribe     Kind = "describe"
	KindSlashCommand Kind = "slash-command"
	KindSettings     Kind = "settings"
	KindInfo         Kind = "info"
)

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindImagine, KindButton, KindDescribe, KindSlashCommand, KindSettings, KindInfo:
		return true
	}
	return false
}

// tagged reports whether the wire payload of k carries a "type" discriminant.
func (k Kind) tagged() bool {
	return k == KindDescribe || k == KindInfo
}

// BaseResponse holds the fields common to every webhook payload.
type BaseResponse struct {
	Ref                  string   `json:"ref"`
	CreatedAt            string   `json:"createdAt"`
	ResponseAt           string   `json:"responseAt"`
	OriginatingMessageID string   `json:"originatingMessageId"`
	ButtonMessageID      string   `json:"buttonMessageId"`
	ImageURL             string   `json:"imageUrl"`
	Buttons              []string `json:"buttons"`
}

// Base returns the common fields. Promoted to every Payload variant.
func (b BaseResponse) Base() BaseResponse { return b }

// WebhookResponse is a job result as delivered to the webhook or returned by a
// poll. Content is kept raw until Decode picks the variant.
type WebhookResponse struct {
	BaseResponse
	Content json.RawMessage `json:"content,omitempty"`
	Type    string          `json:"type,omitempty"`
}

// DetectKind returns the kind named by the "type" discriminant, if any.
func (r *WebhookResponse) DetectKind() (Kind, bool) {
	k := Kind(r.Type)
	if k.tagged() {
		return k, true
	}
	return "", false
}

// Payload is one webhook response variant.
type Payload interface {
	Kind() Kind
	Base() BaseResponse
}

// ImagineResult is the payload of an imagine or img2img job.
type ImagineResult struct {
	BaseResponse
	Content string `json:"content"`
}

func (ImagineResult) Kind() Kind { return KindImagine }

// ButtonResult is the payload of a button job.
type ButtonResult struct {
	BaseResponse
	Content string `json:"content"`
}

func (ButtonResult) Kind() Kind { return KindButton }

// SlashCommandResult is the payload of a slash command.
type SlashCommandResult struct {
	BaseResponse
	Content string `json:"content"`
}

func (SlashCommandResult) Kind() Kind { return KindSlashCommand }

// SettingsResult is the payload of a get/set settings call. The available
// setting names arrive in Buttons.
type SettingsResult struct {
	BaseResponse
	Content string `json:"content"`
}

func (SettingsResult) Kind() Kind { return KindSettings }

// DescribeResult is the payload of a describe job.
type DescribeResult struct {
	BaseResponse
	Content StringList `json:"content"`
	Type    string     `json:"type"`
}

func (DescribeResult) Kind() Kind { return KindDescribe }

// AccountInfo is the fixed-key account record returned by an info call.
type AccountInfo struct {
	FastTimeRemaining string `json:"Fast Time Remaining"`
	JobMode           string `json:"Job Mode"`
	LifetimeUsage     string `json:"Lifetime Usage"`
	QueuedJobsFast    string `json:"Queued Jobs (fast)"`
	QueuedJobsRelax   string `json:"Queued Jobs (relax)"`
	RelaxedUsage      string `json:"Relaxed Usage"`
	Subscription      string `json:"Subscription"`
	VisibilityMode    string `json:"Visibility Mode"`
}

// InfoResult is the payload of an info call.
type InfoResult struct {
	BaseResponse
	Content AccountInfo `json:"content"`
	Type    string      `json:"type"`
}

func (InfoResult) Kind() Kind { return KindInfo }

// StringList decodes from either a JSON string or an array of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*l = nil
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = StringList{s}
		return nil
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = items
	return nil
}

// Decode interprets r as the variant produced by a call of kind k.
// A "type" discriminant present on the wire must agree with k.
func (r *WebhookResponse) Decode(k Kind) (Payload, error) {
	if !k.Valid() {
		return nil, NewError(ErrKindMismatch, fmt.Sprintf("unknown kind %q", k))
	}
	if r.Type != "" && Kind(r.Type).tagged() && Kind(r.Type) != k {
		return nil, NewError(ErrKindMismatch,
			fmt.Sprintf("payload is tagged %q, expected %q", r.Type, k))
	}

	var p Payload
	var err error
	switch k {
	case KindImagine:
		var v ImagineResult
		v.Content, err = r.textContent()
		v.BaseResponse = r.BaseResponse
		p = v
	case KindButton:
		var v ButtonResult
		v.Content, err = r.textContent()
		v.BaseResponse = r.BaseResponse
		p = v
	case KindSlashCommand:
		var v SlashCommandResult
		v.Content, err = r.textContent()
		v.BaseResponse = r.BaseResponse
		p = v
	case KindSettings:
		var v SettingsResult
		v.Content, err = r.textContent()
		v.BaseResponse = r.BaseResponse
		p = v
	case KindDescribe:
		v := DescribeResult{BaseResponse: r.BaseResponse, Type: r.Type}
		err = r.unmarshalContent(&v.Content)
		p = v
	case KindInfo:
		v := InfoResult{BaseResponse: r.BaseResponse, Type: r.Type}
		err = r.unmarshalContent(&v.Content)
		p = v
	}
	if err != nil {
		return nil, NewError(ErrDecode, fmt.Sprintf("decode %s content", k)).WithCause(err)
	}
	return p, nil
}

func (r *WebhookResponse) textContent() (string, error) {
	var s string
	err := r.unmarshalContent(&s)
	return s, err
}

func (r *WebhookResponse) unmarshalContent(v any) error {
	if len(r.Content) == 0 {
		return nil
	}
	return json.Unmarshal(r.Content, v)
}

// NewWebhookResponse encodes a typed payload back into its wire form.
func NewWebhookResponse(p Payload) (*WebhookResponse, error) {
	r := &WebhookResponse{BaseResponse: p.Base()}

	var content any
	switch v := p.(type) {
	case ImagineResult:
		content = v.Content
	case ButtonResult:
		content = v.Content
	case SlashCommandResult:
		content = v.Content
	case SettingsResult:
		content = v.Content
	case DescribeResult:
		content = []string(v.Content)
		r.Type = string(KindDescribe)
	case InfoResult:
		content = v.Content
		r.Type = string(KindInfo)
	default:
		return nil, NewError(ErrEncode, fmt.Sprintf("unsupported payload %T", p))
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return nil, NewError(ErrEncode, "encode content").WithCause(err)
	}
	r.Content = raw
	return r, nil
}

// DecodeWebhook parses a webhook body delivered for a call of kind k.
func DecodeWebhook(k Kind, data []byte) (Payload, error) {
	var r WebhookResponse
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, NewError(ErrDecode, "decode webhook body").WithCause(err)
	}
	return r.Decode(k)
}
