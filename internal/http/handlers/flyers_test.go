package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"server/internal/flyer"
	"server/internal/storage"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir(), "http://localhost:8080/static")
	if err != nil {
		t.Fatal(err)
	}
	engine := flyer.NewEngine(flyer.Options{
		Logger: zerolog.Nop(),
		Fonts:  &flyer.FontLoader{SkipNetwork: true},
	})
	return NewApp(zerolog.Nop(), engine, store, nil)
}

func TestGenerateFlyerValidation(t *testing.T) {
	app := newTestApp(t)
	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"missing theme", `{"date_time_text":"Fri 8 PM","location":"Hall"}`},
		{"missing date", `{"theme":"Gala","location":"Hall"}`},
		{"missing location", `{"theme":"Gala","date_time_text":"Fri 8 PM"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/flyers/generate", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			app.GenerateFlyer(rec, req)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestGenerateFlyerHappyPath(t *testing.T) {
	app := newTestApp(t)
	body := `{
		"theme": "Winter Wonderland Gala",
		"date_time_text": "Saturday, Dec 20 · 7 PM",
		"location": "Community Hall",
		"description": "An evening of frost and fairy lights.",
		"tagline": "Let it snow"
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/flyers/generate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.GenerateFlyer(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		PNGURL      string `json:"png_url"`
		PDFURL      string `json:"pdf_url"`
		BundleURL   string `json:"bundle_url"`
		Description string `json:"description"`
		Tagline     string `json:"tagline"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(resp.PNGURL, "http://localhost:8080/static/flyers/winter-wonderland-gala-") {
		t.Errorf("png url = %q", resp.PNGURL)
	}
	if !strings.HasSuffix(resp.PNGURL, ".png") || !strings.HasSuffix(resp.PDFURL, ".pdf") {
		t.Errorf("artifact urls = %q, %q", resp.PNGURL, resp.PDFURL)
	}
	if !strings.HasSuffix(resp.BundleURL, ".zip") {
		t.Errorf("bundle url = %q", resp.BundleURL)
	}
	if resp.Description == "" || resp.Tagline != "Let it snow" {
		t.Errorf("copy fields = %q, %q", resp.Description, resp.Tagline)
	}

	// Both artifacts must exist on disk under the store root.
	key := strings.TrimPrefix(resp.PNGURL, "http://localhost:8080/static/")
	if _, err := os.Stat(filepath.Join(app.Store.BasePath(), filepath.FromSlash(key))); err != nil {
		t.Errorf("stored png missing: %v", err)
	}
}

func TestGenerateCopyEndpoint(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/flyers/copy", strings.NewReader(`{"theme":"Garden Tea Party"}`))
	rec := httptest.NewRecorder()
	app.GenerateCopy(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Description string   `json:"description"`
		Taglines    []string `json:"taglines"`
		Palette     []string `json:"palette"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Description == "" || len(resp.Taglines) == 0 || len(resp.Palette) != 3 {
		t.Errorf("incomplete copy response: %+v", resp)
	}
}

func TestGenerateCopyRequiresTheme(t *testing.T) {
	app := newTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/v1/flyers/copy", strings.NewReader(`{"note":"bring snacks"}`))
	rec := httptest.NewRecorder()
	app.GenerateCopy(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Winter Wonderland Gala", "winter-wonderland-gala"},
		{"  Neon -- Nights!  ", "neon-nights"},
		{"___", "flyer"},
		{"Émigré Soirée", "migr-soir-e"},
	}
	for _, tt := range tests {
		if got := slugify(tt.in); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
