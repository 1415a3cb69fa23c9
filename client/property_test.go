package client

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/BaSui01/nextleg/testutil"
	"github.com/BaSui01/nextleg/testutil/mocks"
	"github.com/BaSui01/nextleg/types"
)

// imagine sends exactly {msg, ref, webhookOverride}, in that order.
func TestProperty_ImagineBody(t *testing.T) {
	c, api := newTestDirect(t)
	ctx := testutil.TestContext(t)

	rapid.Check(t, func(rt *rapid.T) {
		prompt := rapid.String().Draw(rt, "prompt")
		ref := rapid.String().Draw(rt, "ref")
		hook := rapid.String().Draw(rt, "webhookOverride")

		if _, err := c.Imagine(ctx, prompt, WithRef(ref), WithWebhookOverride(hook)); err != nil {
			rt.Fatalf("imagine: %v", err)
		}
		req, _ := api.LastRequest()

		var got map[string]string
		if err := json.Unmarshal(req.Body, &got); err != nil {
			rt.Fatalf("body is not an object: %v", err)
		}
		if len(got) != 3 || got["msg"] != prompt || got["ref"] != ref || got["webhookOverride"] != hook {
			rt.Fatalf("body %s, want msg=%q ref=%q webhookOverride=%q", req.Body, prompt, ref, hook)
		}
		if !bytes.HasPrefix(req.Body, []byte(`{"msg":`)) {
			rt.Fatalf("msg is not the first field: %s", req.Body)
		}
	})
}

// img2img's msg is imageURL, one space, prompt.
func TestProperty_Img2ImgConcatenation(t *testing.T) {
	c, api := newTestDirect(t)
	ctx := testutil.TestContext(t)

	rapid.Check(t, func(rt *rapid.T) {
		prompt := rapid.String().Draw(rt, "prompt")
		imageURL := rapid.String().Draw(rt, "imageURL")

		if _, err := c.Img2Img(ctx, prompt, imageURL); err != nil {
			rt.Fatalf("img2img: %v", err)
		}
		req, _ := api.LastRequest()

		var body types.ImagineRequest
		if err := json.Unmarshal(req.Body, &body); err != nil {
			rt.Fatalf("decode body: %v", err)
		}
		if body.Msg != imageURL+" "+prompt {
			rt.Fatalf("msg %q, want %q", body.Msg, imageURL+" "+prompt)
		}
	})
}

// The poll query carries expireMins only for positive values, verbatim.
func TestProperty_ExpireMinsQuery(t *testing.T) {
	c, api := newTestDirect(t)
	ctx := testutil.TestContext(t)

	rapid.Check(t, func(rt *rapid.T) {
		minutes := rapid.IntRange(-10, 10000).Draw(rt, "expireMinutes")

		if _, err := c.GetMessageAndProgress(ctx, "m", minutes); err != nil {
			rt.Fatalf("poll: %v", err)
		}
		req, _ := api.LastRequest()

		want := ""
		if minutes > 0 {
			want = "expireMins=" + strconv.Itoa(minutes)
		}
		if req.RawQuery != want {
			rt.Fatalf("query %q, want %q", req.RawQuery, want)
		}
	})
}

// Whatever the ids, the upscale query decodes back to them in fixed order.
func TestProperty_UpscaleQueryOrder(t *testing.T) {
	api := mocks.NewMockAPI(t).WithFallback(200, `{"url":"u"}`)
	c := NewDirect("tok", WithUpscaleBaseURL(api.URL()))
	ctx := testutil.TestContext(t)

	rapid.Check(t, func(rt *rapid.T) {
		id := rapid.StringMatching(`[A-Za-z0-9&=+ -]{1,24}`).Draw(rt, "buttonMessageId")
		button := rapid.SampledFrom(types.Buttons()).Draw(rt, "button")

		if _, err := c.UpscaleImgURL(ctx, button, id); err != nil {
			rt.Fatalf("upscale: %v", err)
		}
		req, _ := api.LastRequest()

		pairs := strings.Split(req.RawQuery, "&")
		if len(pairs) != 2 {
			rt.Fatalf("query %q: want 2 parameters", req.RawQuery)
		}
		for i, want := range [][2]string{{"buttonMessageId", id}, {"button", string(button)}} {
			k, v, _ := strings.Cut(pairs[i], "=")
			got, err := url.QueryUnescape(v)
			if err != nil || k != want[0] || got != want[1] {
				rt.Fatalf("query %q: parameter %d is %s=%q, want %s=%q", req.RawQuery, i, k, got, want[0], want[1])
			}
		}
	})
}
