package turnaround

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// AvatarStylist turns a captured booth photo into a styled avatar.
// Built-in: GeminiStylist. The call is best-effort: callers should use
// StylizeOrFallback and keep the original photo on any failure.
type AvatarStylist interface {
	Stylize(ctx context.Context, photo []byte, mimeType string) (string, error)
}

// avatarPrompt is the fixed stylization instruction sent with every photo.
const avatarPrompt = `Transform the provided input photo into a high-quality stylized digital avatar \
while preserving the person's core facial identity.

Identity Preservation Rules:
- Maintain accurate facial structure, eye spacing, nose shape, and mouth shape
- Keep hairstyle and hairline recognizable
- Preserve skin tone naturally (do NOT lighten or darken unnaturally)
- Do NOT change gender, age group, or ethnicity
- Remove temporary blemishes only (pimples, shine), but keep natural skin texture

Style Requirements:
- Style: modern premium 3D semi-realistic avatar
- Vibe: friendly, confident, professional, visually appealing
- Lighting: soft cinematic studio lighting
- Background: clean gradient or subtle tech background
- Expression: slight natural smile, approachable
- Framing: centered head and shoulders portrait
- Quality: ultra sharp, high detail, commercial quality

Enhancements (allowed):
- improve lighting and clarity
- smooth minor skin imperfections
- slightly enhance eyes for liveliness
- clean up flyaway hair

Strict Safety Rules:
- no exaggeration or caricature
- no extreme beautification
- no race or skin tone alteration
- no extra limbs or distorted anatomy
- no text, watermark, or logo

Output a single polished avatar image suitable for use in an interactive AI booth experience.`

// GeminiStylist generates avatars via the Gemini API.
// Implements AvatarStylist.
type GeminiStylist struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

// GeminiStylistOption customizes a GeminiStylist.
type GeminiStylistOption func(*GeminiStylist)

// WithGeminiBaseURL overrides the API base URL (used in tests).
func WithGeminiBaseURL(url string) GeminiStylistOption {
	return func(g *GeminiStylist) { g.baseURL = strings.TrimSuffix(url, "/") }
}

// WithGeminiModel overrides the image model.
func WithGeminiModel(model string) GeminiStylistOption {
	return func(g *GeminiStylist) { g.model = model }
}

// WithStylizeTimeout overrides the 30s client-side cap on the call.
func WithStylizeTimeout(d time.Duration) GeminiStylistOption {
	return func(g *GeminiStylist) { g.client.Timeout = d }
}

// NewGeminiStylist creates an avatar stylist. A single attempt is made per
// call; past the client timeout the request is cancelled.
func NewGeminiStylist(apiKey string, opts ...GeminiStylistOption) *GeminiStylist {
	g := &GeminiStylist{
		apiKey:  apiKey,
		model:   "gemini-2.5-flash-image",
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Stylize sends the photo with the fixed prompt and returns the styled
// image as a data URL. Any failure mode (missing key, non-2xx, empty or
// non-image response) is an error; callers decide the fallback.
func (g *GeminiStylist) Stylize(ctx context.Context, photo []byte, mimeType string) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("no API key for avatar stylization")
	}
	if mimeType == "" {
		mimeType = "image/png"
	}

	url := g.baseURL + "/models/" + g.model + ":generateContent?key=" + g.apiKey

	reqBody := map[string]any{
		"contents": []map[string]any{
			{"role": "user", "parts": []map[string]any{
				{"text": avatarPrompt},
				{"inlineData": map[string]any{
					"mimeType": mimeType,
					"data":     base64.StdEncoding.EncodeToString(photo),
				}},
			}},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini stylize %d: %s", resp.StatusCode, string(body[:min(len(body), 300)]))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					InlineData *struct {
						MimeType string `json:"mimeType"`
						Data     string `json:"data"`
					} `json:"inlineData"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}

	if len(geminiResp.Candidates) == 0 {
		return "", fmt.Errorf("empty response")
	}

	for _, part := range geminiResp.Candidates[0].Content.Parts {
		if part.InlineData != nil && strings.HasPrefix(part.InlineData.MimeType, "image/") {
			return "data:" + part.InlineData.MimeType + ";base64," + part.InlineData.Data, nil
		}
	}
	return "", fmt.Errorf("no image in response")
}

// StylizeOrFallback runs the stylist against a photo data URL and
// normalizes every failure to the original photo. This is the contract the
// booth flow relies on: avatar generation never blocks a player.
func StylizeOrFallback(ctx context.Context, stylist AvatarStylist, photoDataURL string) string {
	if stylist == nil {
		return photoDataURL
	}
	mimeType, photo, err := DecodeDataURL(photoDataURL)
	if err != nil {
		log.Printf("[booth] Bad photo data URL, keeping original: %v", err)
		return photoDataURL
	}
	avatarURL, err := stylist.Stylize(ctx, photo, mimeType)
	if err != nil {
		log.Printf("[booth] Avatar stylization failed, keeping original photo: %v", err)
		return photoDataURL
	}
	return avatarURL
}

// EncodeDataURL packs raw image bytes as a base64 data URL.
func EncodeDataURL(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL splits a base64 data URL into its MIME type and raw bytes.
func DecodeDataURL(s string) (mimeType string, data []byte, err error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, fmt.Errorf("not a data URL")
	}
	rest := s[len("data:"):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, fmt.Errorf("missing base64 payload")
	}
	mimeType = rest[:sep]
	data, err = base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("decode base64: %w", err)
	}
	return mimeType, data, nil
}
