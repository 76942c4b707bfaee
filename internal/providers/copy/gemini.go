// Package copy implements the external copy supplier over the Gemini REST
// API. Any failure — transport, status, parse, or a response that violates
// the word limits — is surfaced as an error so the caller can switch to the
// local copy generator; a malformed response is never partially credited.
package copy

import (
	"bytes"
	"context"
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
	geminiDefaultTimeout = 15 * time.Second
	geminiDefaultModel   = "gemini-1.5-flash"
	geminiDefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	maxDescriptionWords = 11
	maxTaglineWords     = 8
	maxDescriptions     = 6
	maxTaglines         = 9
)

type GeminiOptions struct {
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// GeminiSupplier asks a Gemini text model for flyer copy in strict JSON mode.
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

type geminiRequest struct {
	Contents         []geminiContent         `json:"contents"`
	GenerationConfig *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text,omitempty"`
}

type geminiGenerationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	CandidateCount   int     `json:"candidateCount,omitempty"`
	ResponseMimeType string  `json:"responseMimeType,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

type copyPayload struct {
	Description  string   `json:"description"`
	Descriptions []string `json:"descriptions"`
	Taglines     []string `json:"taglines"`
	Palette      []string `json:"palette"`
}

// Compose requests copy for the event and validates the response against the
// contract: description at most 11 words, up to 6 deduplicated descriptions,
// up to 9 taglines of at most 8 words, and a 3-color hex palette.
func (g *GeminiSupplier) Compose(ctx context.Context, req domain.CopyRequest) (*domain.CopyResult, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: buildCopyPrompt(req)}},
		}},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:      0.6,
			CandidateCount:   1,
			ResponseMimeType: "application/json",
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), &buf)
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

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	text := extractText(out)
	if text == "" {
		return nil, errors.New("empty gemini response")
	}

	var parsed copyPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &parsed); err != nil {
		return nil, fmt.Errorf("parse copy payload: %w", err)
	}
	return normalizeCopy(parsed)
}

func (g *GeminiSupplier) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(g.model))
}

func buildCopyPrompt(req domain.CopyRequest) string {
	sb := &strings.Builder{}
	sb.WriteString("You write short, warm event-flyer copy for a community social club. ")
	sb.WriteString("Respond strictly with JSON matching this schema: ")
	sb.WriteString(`{"description":string,"descriptions":string[],"taglines":string[],"palette":string[]}`)
	sb.WriteString(". Rules: description and every entry of descriptions must be at most 11 words; ")
	sb.WriteString("at most 6 descriptions; every tagline at most 8 words; at most 9 taglines; ")
	sb.WriteString("palette is exactly 3 hex colors that suit the theme. ")
	fmt.Fprintf(sb, "Event theme: %q.", req.Theme)
	if req.DressCode != "" {
		fmt.Fprintf(sb, " Dress code: %q.", req.DressCode)
	}
	if req.Note != "" {
		fmt.Fprintf(sb, " Note: %q.", req.Note)
	}
	return sb.String()
}

func extractText(resp geminiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if strings.TrimSpace(part.Text) != "" {
				return part.Text
			}
		}
	}
	return ""
}

func normalizeCopy(p copyPayload) (*domain.CopyResult, error) {
	description := strings.TrimSpace(p.Description)
	if description == "" || wordCount(description) > maxDescriptionWords {
		return nil, errors.New("description missing or over word limit")
	}

	descriptions := dedupeLimited(p.Descriptions, maxDescriptionWords, maxDescriptions)
	if len(descriptions) == 0 {
		descriptions = []string{description}
	}

	taglines := dedupeLimited(p.Taglines, maxTaglineWords, maxTaglines)
	if len(taglines) == 0 {
		return nil, errors.New("no usable taglines")
	}

	if len(p.Palette) < 3 {
		return nil, errors.New("palette must hold 3 colors")
	}
	palette := make([]string, 3)
	for i := 0; i < 3; i++ {
		c := strings.TrimSpace(p.Palette[i])
		if !isHexColor(c) {
			return nil, fmt.Errorf("palette entry %q is not a hex color", c)
		}
		palette[i] = c
	}

	return &domain.CopyResult{
		Description:  description,
		Descriptions: descriptions,
		Taglines:     taglines,
		Palette:      palette,
	}, nil
}

func dedupeLimited(items []string, wordLimit, maxItems int) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, s := range items {
		s = strings.TrimSpace(s)
		if s == "" || wordCount(s) > wordLimit {
			continue
		}
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
		if len(out) == maxItems {
			break
		}
	}
	return out
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

func isHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 && len(s) != 3 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
