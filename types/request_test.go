package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wire order is part of the contract, so these compare exact bytes.
func TestRequests_WireOrder(t *testing.T) {
	tests := []struct {
		name string
		req  any
		want string
	}{
		{
			name: "imagine defaults",
			req:  ImagineRequest{Msg: "A cat playing piano"},
			want: `{"msg":"A cat playing piano","ref":"","webhookOverride":""}`,
		},
		{
			name: "describe",
			req:  DescribeRequest{URL: "https://x/y.png", BaseRequest: BaseRequest{Ref: "r1"}},
			want: `{"url":"https://x/y.png","ref":"r1","webhookOverride":""}`,
		},
		{
			name: "button",
			req:  ButtonRequest{Button: ButtonU1, ButtonMessageID: "abc"},
			want: `{"button":"U1","buttonMessageId":"abc","ref":"","webhookOverride":""}`,
		},
		{
			name: "balanced button",
			req: BalancedButtonRequest{
				ButtonRequest: ButtonRequest{Button: ButtonV2, ButtonMessageID: "abc"},
				LoadBalanceID: "lb-1",
			},
			want: `{"button":"V2","buttonMessageId":"abc","ref":"","webhookOverride":"","loadBalanceId":"lb-1"}`,
		},
		{
			name: "seed",
			req:  SeedRequest{MessageID: "m1"},
			want: `{"messageId":"m1"}`,
		},
		{
			name: "slash command",
			req:  SlashCommandRequest{Cmd: SlashStealth, BaseRequest: BaseRequest{WebhookOverride: "https://hook"}},
			want: `{"cmd":"stealth","ref":"","webhookOverride":"https://hook"}`,
		},
		{
			name: "settings",
			req:  SettingsRequest{SettingsToggle: SettingRemixMode},
			want: `{"settingsToggle":"Remix mode","ref":"","webhookOverride":""}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestButton_EmojiTokensSerializeVerbatim(t *testing.T) {
	for _, b := range []Button{ButtonReroll, ButtonMakeVariations, ButtonFavorite} {
		got, err := json.Marshal(ButtonRequest{Button: b, ButtonMessageID: "m"})
		require.NoError(t, err)
		assert.Contains(t, string(got), `"button":"`+string(b)+`"`)
	}
}

func TestEnums_Listings(t *testing.T) {
	assert.Len(t, Buttons(), 11)
	assert.Len(t, SlashCommands(), 4)
	assert.Len(t, Settings(), 22)

	for _, b := range Buttons() {
		assert.True(t, b.Valid(), b)
	}
	for _, c := range SlashCommands() {
		assert.True(t, c.Valid(), c)
	}
	seen := map[Setting]bool{}
	for _, s := range Settings() {
		assert.True(t, s.Valid(), s)
		assert.False(t, seen[s], "duplicate setting %q", s)
		seen[s] = true
	}

	assert.False(t, Button("U5").Valid())
	assert.False(t, SlashCommand("turbo").Valid())
	assert.False(t, Setting("MJ version 9").Valid())

	assert.True(t, ButtonU3.IsUpscale())
	assert.False(t, ButtonV3.IsUpscale())
	assert.False(t, ButtonFavorite.IsUpscale())

	// Listings are copies.
	list := Buttons()
	list[0] = "changed"
	assert.Equal(t, ButtonU1, Buttons()[0])
}

func TestCredentials_Masked(t *testing.T) {
	c := NewCredentials("secret-token")
	assert.Equal(t, "Bearer secret-token", c.AuthorizationHeader())
	assert.NotContains(t, c.String(), "secret")

	// No normalisation: the token is sent verbatim.
	c = NewCredentials(" secret-token ")
	assert.Equal(t, " secret-token ", c.Token)
	assert.Equal(t, "Bearer  secret-token ", c.AuthorizationHeader())
	assert.NotContains(t, c.String(), "secret")

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")

	assert.True(t, Credentials{}.Empty())
	assert.Equal(t, "Credentials{}", Credentials{}.String())
}
