package artwork

import (
	"bytes"
	"context"
	"encoding/base64"
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

func imageBody(t *testing.T, raw []byte) string {
	t.Helper()
	resp := geminiImageResponse{}
	resp.Candidates = append(resp.Candidates, struct {
		Content geminiContent `json:"content"`
	}{Content: geminiContent{
		Role: "model",
		Parts: []geminiPart{
			{Text: "Here is your poster."},
			{InlineData: &inlineData{MimeType: "image/png", Data: base64.StdEncoding.EncodeToString(raw)}},
		},
	}})
	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestRenderDecodesInlineImage(t *testing.T) {
	raw := []byte{0x89, 'P', 'N', 'G', 1, 2, 3, 4}
	var gotBody geminiImageRequest
	s := newTestSupplier(t, func(r *http.Request) (*http.Response, error) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		return jsonResponse(http.StatusOK, imageBody(t, raw)), nil
	})

	out, err := s.Render(context.Background(), domain.ArtworkRequest{
		Theme:        "Winter Wonderland Gala",
		DateTimeText: "Dec 20 · 7 PM",
		Location:     "Community Hall",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.Equal(out, raw) {
		t.Errorf("decoded image = %v, want %v", out, raw)
	}

	if len(gotBody.Contents) != 1 || len(gotBody.Contents[0].Parts) != 1 {
		t.Fatalf("unexpected request shape %+v", gotBody)
	}
	prompt := gotBody.Contents[0].Parts[0].Text
	for _, want := range []string{"Winter Wonderland Gala", "Dec 20 · 7 PM", "Community Hall"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if gotBody.GenerationConfig == nil || len(gotBody.GenerationConfig.ResponseModalities) == 0 {
		t.Error("request must ask for an image response modality")
	}
}

func TestRenderNoImageInResponse(t *testing.T) {
	s := newTestSupplier(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"candidates":[{"content":{"role":"model","parts":[{"text":"sorry"}]}}]}`), nil
	})
	if _, err := s.Render(context.Background(), domain.ArtworkRequest{Theme: "Gala"}); err == nil {
		t.Fatal("text-only response must surface an error")
	}
}

func TestRenderHTTPError(t *testing.T) {
	s := newTestSupplier(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, `{"error":"boom"}`), nil
	})
	if _, err := s.Render(context.Background(), domain.ArtworkRequest{Theme: "Gala"}); err == nil {
		t.Fatal("non-2xx status must surface an error")
	}
}

func TestRenderBadBase64(t *testing.T) {
	s := newTestSupplier(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"candidates":[{"content":{"parts":[{"inlineData":{"mimeType":"image/png","data":"???"}}]}}]}`), nil
	})
	if _, err := s.Render(context.Background(), domain.ArtworkRequest{Theme: "Gala"}); err == nil {
		t.Fatal("invalid base64 must surface an error")
	}
}

func TestNewGeminiSupplierRequiresKey(t *testing.T) {
	if _, err := NewGeminiSupplier(GeminiOptions{}); err == nil {
		t.Fatal("missing api key must fail construction")
	}
}
