package types

// Field order in every request struct is the wire order; the
// operation-specific field precedes the embedded BaseRequest.

// BaseRequest carries the caller's opaque correlation fields. Both are always
// serialized, empty or not.
type BaseRequest struct {
	Ref             string `json:"ref"`
	WebhookOverride string `json:"webhookOverride"`
}

// ImagineRequest creates an image from msg, which is either a prompt or
// "<imageUrl> <prompt>".
type ImagineRequest struct {
	Msg string `json:"msg"`
	BaseRequest
}

// DescribeRequest asks for text descriptions of the image at URL.
type DescribeRequest struct {
	URL string `json:"url"`
	BaseRequest
}

// ButtonRequest presses a button on the message identified by ButtonMessageID.
type ButtonRequest struct {
	Button          Button `json:"button"`
	ButtonMessageID string `json:"buttonMessageId"`
	BaseRequest
}

// BalancedButtonRequest is ButtonRequest routed through the load balancer.
type BalancedButtonRequest struct {
	ButtonRequest
	LoadBalanceID string `json:"loadBalanceId"`
}

// SeedRequest asks for the seed used by a message.
type SeedRequest struct {
	MessageID string `json:"messageId"`
}

// SlashCommandRequest runs an account slash command.
type SlashCommandRequest struct {
	Cmd SlashCommand `json:"cmd"`
	BaseRequest
}

// SettingsRequest toggles a named account setting.
type SettingsRequest struct {
	SettingsToggle Setting `json:"settingsToggle"`
	BaseRequest
}
