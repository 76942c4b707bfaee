package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"server/internal/flyer"
)

func TestListPresets(t *testing.T) {
	app := newTestApp(t)
	rec := httptest.NewRecorder()
	app.ListPresets(rec, httptest.NewRequest(http.MethodGet, "/v1/flyers/presets", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Presets []flyer.Preset `json:"presets"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Presets) != len(flyer.Presets) {
		t.Errorf("got %d presets, want %d", len(resp.Presets), len(flyer.Presets))
	}
}

func TestSuggestPreset(t *testing.T) {
	app := newTestApp(t)
	rec := httptest.NewRecorder()
	app.SuggestPreset(rec, httptest.NewRequest(http.MethodGet, "/v1/flyers/presets/suggest?theme=winter+wonderland", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Preset flyer.Preset `json:"preset"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Preset.ID != "winter-frost" {
		t.Errorf("suggested %q, want winter-frost", resp.Preset.ID)
	}
}

func TestSuggestPresetRequiresTheme(t *testing.T) {
	app := newTestApp(t)
	rec := httptest.NewRecorder()
	app.SuggestPreset(rec, httptest.NewRequest(http.MethodGet, "/v1/flyers/presets/suggest", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)
	rec := httptest.NewRecorder()
	app.Health(rec, httptest.NewRequest(http.MethodGet, "/v1/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("content type = %q", got)
	}
}
