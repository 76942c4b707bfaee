package flyer

import "testing"

func TestMatchPresetScoring(t *testing.T) {
	tests := []struct {
		name   string
		theme  string
		dress  string
		note   string
		wantID string
	}{
		{
			name:   "winter theme outscores gala",
			theme:  "Winter Wonderland Gala",
			wantID: "winter-frost",
		},
		{
			name:  "multiple hits beat single hit",
			theme: "Moroccan Arabian Nights", note: "arch decorations",
			wantID: "blue-arch",
		},
		{
			name:   "no hits resolves to first catalog entry",
			theme:  "Quarterly Meetup",
			wantID: Presets[0].ID,
		},
		{
			name:   "tie resolves to catalog order",
			theme:  "marble royal", // one hit each for marble-geo and royal-velvet
			wantID: "marble-geo",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchPreset(tt.theme, tt.dress, tt.note)
			if got.ID != tt.wantID {
				t.Fatalf("MatchPreset(%q) = %q, want %q", tt.theme, got.ID, tt.wantID)
			}
		})
	}
}

func TestMatchPresetStable(t *testing.T) {
	first := MatchPreset("Eid celebration", "", "lanterns everywhere")
	for i := 0; i < 5; i++ {
		if got := MatchPreset("Eid celebration", "", "lanterns everywhere"); got.ID != first.ID {
			t.Fatalf("MatchPreset unstable: %q then %q", first.ID, got.ID)
		}
	}
}

func TestNormalizePresetID(t *testing.T) {
	tests := []struct{ in, want string }{
		{"floral-lilac-2", "floral-lilac"},
		{"floral-lilac", "floral-lilac"},
		{"blue-arch-2", "blue-arch"},
		{" black-gold ", "black-gold"},
	}
	for _, tt := range tests {
		if got := NormalizePresetID(tt.in); got != tt.want {
			t.Errorf("NormalizePresetID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReferenceConfigCoversCatalog(t *testing.T) {
	for _, p := range Presets {
		cfg, ok := ReferenceConfigFor(p.ID)
		if !ok {
			t.Errorf("preset %q has no reference config", p.ID)
			continue
		}
		if cfg.TitleSize == 0 || cfg.Ink == "" || cfg.PanelW == 0 {
			t.Errorf("preset %q: incomplete config %+v", p.ID, cfg)
		}
	}
}

func TestVariantSharesBaseConfig(t *testing.T) {
	base, ok := ReferenceConfigFor("blue-arch")
	if !ok {
		t.Fatal("missing blue-arch config")
	}
	variant, ok := ReferenceConfigFor("blue-arch-2")
	if !ok {
		t.Fatal("missing config for blue-arch-2 variant")
	}
	if base != variant {
		t.Fatalf("variant config differs from base:\n base %+v\n variant %+v", base, variant)
	}
}

func TestPresetByID(t *testing.T) {
	if _, ok := PresetByID("no-such-preset"); ok {
		t.Fatal("unknown id should not resolve")
	}
	p, ok := PresetByID("eid-lantern")
	if !ok || p.Label == "" || p.Background == "" {
		t.Fatalf("eid-lantern lookup failed: %+v ok=%v", p, ok)
	}
}
