// Package artwork implements the ai_poster artwork supplier over the Gemini
// image-generation endpoint. Failures are returned as-is; the orchestrator
// owns the fallback to the classic render path.
package artwork

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"server/internal/domain"
)

const (
	geminiDefaultTimeout = 60 * time.Second
	geminiDefaultModel   = "gemini-2.0-flash-preview-image-generation"
	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
)

type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiSupplier renders a complete poster image from the event fields.
type GeminiSupplier struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiSupplier(opts GeminiOptions) (*GeminiSupplier, error) {
	if opts.APIKey == "" {
		return nil, errors.New("gemini api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = geminiDefaultBaseURL
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = geminiDefaultModel
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: geminiDefaultTimeout}
	}
	return &GeminiSupplier{
		apiKey:  opts.APIKey,
		model:   model,
		baseURL: baseURL,
		client:  client,
	}, nil
}

type geminiImageRequest struct {
	Contents         []geminiContent   `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseModalities []string `json:"responseModalities,omitempty"`
}

type geminiImageResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// Render asks the image model for one portrait poster and returns the raw
// image bytes from the first inline-data part.
func (g *GeminiSupplier) Render(ctx context.Context, req domain.ArtworkRequest) ([]byte, error) {
	payload := geminiImageRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: buildPosterPrompt(req)}},
		}},
		GenerationConfig: &generationConfig{
			ResponseModalities: []string{"IMAGE"},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	var out geminiImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	for _, cand := range out.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("decode inline image: %w", err)
			}
			return data, nil
		}
	}
	return nil, errors.New("no image in gemini response")
}

func buildPosterPrompt(req domain.ArtworkRequest) string {
	parts := []string{
		fmt.Sprintf("Design a vertical 4:5 event poster for %q.", req.Theme),
		"Leave generous space for typography and keep the composition elegant.",
	}
	if req.Tagline != "" {
		parts = append(parts, fmt.Sprintf("Set the mood of %q.", req.Tagline))
	}
	if req.Description != "" {
		parts = append(parts, "Event feel: "+req.Description)
	}
	parts = append(parts, fmt.Sprintf("Include the text %q, %q.", req.DateTimeText, req.Location))
	if req.DressCode != "" {
		parts = append(parts, fmt.Sprintf("Mention the dress code %q.", req.DressCode))
	}
	if req.Note != "" {
		parts = append(parts, "Note: "+req.Note)
	}
	parts = append(parts, "No watermarks, no lorem ipsum, crisp print-ready finish.")
	return strings.Join(parts, " ")
}
