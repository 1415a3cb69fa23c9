package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MessageResponse acknowledges that a job was accepted.
type MessageResponse struct {
	CreatedAt string `json:"createdAt"`
	MessageID string `json:"messageId"`
	Success   bool   `json:"success"`
}

// BalancedMessageResponse is MessageResponse plus the routing handles issued by
// the load balancer. LoadBalanceID must accompany every later call on the job.
type BalancedMessageResponse struct {
	MessageResponse
	LoadBalanceID string `json:"loadBalanceId"`
	AccountID     string `json:"accountId"`
}

// SeedResponse carries the seed of a message.
type SeedResponse struct {
	Seed string `json:"seed"`
}

// UpscaleURLResponse carries the URL of an upscaled image.
type UpscaleURLResponse struct {
	URL string `json:"url"`
}

// ProgressIncomplete is the wire sentinel for a job that did not finish within
// the server's wait window.
const ProgressIncomplete = "incomplete"

// Progress is either a percentage (0-100) or the "incomplete" sentinel.
type Progress struct {
	Percent    int
	Incomplete bool
}

// Done reports whether the job reached 100%.
func (p Progress) Done() bool {
	return !p.Incomplete && p.Percent >= 100
}

func (p Progress) String() string {
	if p.Incomplete {
		return ProgressIncomplete
	}
	return strconv.Itoa(p.Percent) + "%"
}

func (p Progress) MarshalJSON() ([]byte, error) {
	if p.Incomplete {
		return json.Marshal(ProgressIncomplete)
	}
	return json.Marshal(p.Percent)
}

func (p *Progress) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = Progress{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != ProgressIncomplete {
			return fmt.Errorf("progress: unexpected value %q", s)
		}
		*p = Progress{Incomplete: true}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	*p = Progress{Percent: int(n)}
	return nil
}

// MessageAndProgress is the status of a job at poll time. Response is nil
// until the job produced a result.
type MessageAndProgress struct {
	BaseRequest
	Progress Progress         `json:"progress"`
	Response *WebhookResponse `json:"response,omitempty"`
}

// Decode interprets Response as the variant produced by the call of kind k.
func (m *MessageAndProgress) Decode(k Kind) (Payload, error) {
	if m.Response == nil {
		return nil, NewError(ErrNoResponse, "job has no response yet")
	}
	return m.Response.Decode(k)
}
