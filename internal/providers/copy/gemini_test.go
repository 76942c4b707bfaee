package copy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"server/internal/domain"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func geminiBody(t *testing.T, payload string) string {
	t.Helper()
	resp := map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"role":  "model",
				"parts": []map[string]any{{"text": payload}},
			},
		}},
	}
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func newTestSupplier(t *testing.T, fn roundTripFunc) *GeminiSupplier {
	t.Helper()
	s, err := NewGeminiSupplier(GeminiOptions{
		APIKey:     "test-key",
		HTTPClient: &http.Client{Transport: fn},
	})
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestComposeSuccess(t *testing.T) {
	payload := `{
		"description": "An evening of frost and fairy lights downtown.",
		"descriptions": ["An evening of frost and fairy lights downtown.", "Snowflakes, cocoa, and good company."],
		"taglines": ["Let it snow", "Frost and fire", "Let it snow"],
		"palette": ["#0F2547", "#9CC3F0", "#F4F8FF"]
	}`
	var gotPath, gotKey string
	s := newTestSupplier(t, func(r *http.Request) (*http.Response, error) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		return jsonResponse(http.StatusOK, geminiBody(t, payload)), nil
	})

	out, err := s.Compose(context.Background(), domain.CopyRequest{Theme: "Winter Wonderland Gala"})
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if !strings.HasSuffix(gotPath, "/models/gemini-1.5-flash:generateContent") {
		t.Errorf("unexpected endpoint path %q", gotPath)
	}
	if out.Description != "An evening of frost and fairy lights downtown." {
		t.Errorf("description = %q", out.Description)
	}
	if len(out.Taglines) != 2 {
		t.Errorf("taglines = %v, want duplicate dropped", out.Taglines)
	}
	if len(out.Palette) != 3 || out.Palette[0] != "#0F2547" {
		t.Errorf("palette = %v", out.Palette)
	}
}

func TestComposeRejectsOverlongDescription(t *testing.T) {
	payload := `{
		"description": "one two three four five six seven eight nine ten eleven twelve",
		"taglines": ["Short and sweet"],
		"palette": ["#111111", "#222222", "#333333"]
	}`
	s := newTestSupplier(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, geminiBody(t, payload)), nil
	})
	if _, err := s.Compose(context.Background(), domain.CopyRequest{Theme: "Gala"}); err == nil {
		t.Fatal("twelve-word description must be rejected")
	}
}

func TestComposeRejectsBadPalette(t *testing.T) {
	tests := []string{
		`{"description":"Fine copy.","taglines":["Go"],"palette":["#111111","#222222"]}`,
		`{"description":"Fine copy.","taglines":["Go"],"palette":["#111111","#222222","teal"]}`,
	}
	for _, payload := range tests {
		s := newTestSupplier(t, func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, geminiBody(t, payload)), nil
		})
		if _, err := s.Compose(context.Background(), domain.CopyRequest{Theme: "Gala"}); err == nil {
			t.Errorf("payload %s must be rejected", payload)
		}
	}
}

func TestComposeHTTPError(t *testing.T) {
	s := newTestSupplier(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusTooManyRequests, `{"error":"quota"}`), nil
	})
	if _, err := s.Compose(context.Background(), domain.CopyRequest{Theme: "Gala"}); err == nil {
		t.Fatal("non-2xx status must surface an error")
	}
}

func TestComposeMalformedPayload(t *testing.T) {
	s := newTestSupplier(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, geminiBody(t, "not json at all")), nil
	})
	if _, err := s.Compose(context.Background(), domain.CopyRequest{Theme: "Gala"}); err == nil {
		t.Fatal("unparseable model output must surface an error")
	}
}

func TestComposeEmptyCandidates(t *testing.T) {
	s := newTestSupplier(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"candidates":[]}`), nil
	})
	if _, err := s.Compose(context.Background(), domain.CopyRequest{Theme: "Gala"}); err == nil {
		t.Fatal("empty candidate list must surface an error")
	}
}

func TestNewGeminiSupplierRequiresKey(t *testing.T) {
	if _, err := NewGeminiSupplier(GeminiOptions{}); err == nil {
		t.Fatal("missing api key must fail construction")
	}
}

func TestNormalizeCopyFillsDescriptions(t *testing.T) {
	out, err := normalizeCopy(copyPayload{
		Description: "A lovely night out.",
		Taglines:    []string{"Come along"},
		Palette:     []string{"#101010", "#202020", "#303030"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Descriptions) != 1 || out.Descriptions[0] != out.Description {
		t.Errorf("Descriptions = %v, want the single description echoed", out.Descriptions)
	}
}
