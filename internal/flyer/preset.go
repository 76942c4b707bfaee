package flyer

import (
	"strings"

	"server/internal/domain"
)

// Preset is a fixed reference template selectable by id. When a preset is
// active the flyer is rendered as text overlaid on the preset's background
// asset, bypassing style inference entirely.
type Preset struct {
	ID         string             `json:"id"`
	Label      string             `json:"label"`
	Background string             `json:"background"`
	Template   domain.TemplateKey `json:"template"`
	Palette    [3]string          `json:"palette"`
	Keywords   []string           `json:"keywords"`
}

// Presets is the static reference-template catalog, in match-priority order.
var Presets = []Preset{
	{
		ID: "floral-lilac", Label: "Lilac Garden", Background: "presets/floral-lilac.png",
		Template: domain.TemplateElegant, Palette: [3]string{"#C9B8E8", "#8B6FC2", "#3C2E58"},
		Keywords: []string{"lilac", "lavender", "floral", "garden", "spring"},
	},
	{
		ID: "floral-lilac-2", Label: "Lilac Garden II", Background: "presets/floral-lilac-2.png",
		Template: domain.TemplateElegant, Palette: [3]string{"#D8CCF0", "#7B5FB5", "#352852"},
		Keywords: []string{"lilac", "pastel", "bloom", "tea"},
	},
	{
		ID: "marble-geo", Label: "Marble Geometric", Background: "presets/marble-geo.png",
		Template: domain.TemplateMinimal, Palette: [3]string{"#F4F4F2", "#B49A5E", "#1E1E1E"},
		Keywords: []string{"marble", "modern", "geometric", "minimal", "monochrome"},
	},
	{
		ID: "black-gold", Label: "Black & Gold Gala", Background: "presets/black-gold.png",
		Template: domain.TemplateElegant, Palette: [3]string{"#0C0C0C", "#D4AF37", "#F5EFDF"},
		Keywords: []string{"gala", "black tie", "formal", "new year", "elegant"},
	},
	{
		ID: "blue-arch", Label: "Blue Arches", Background: "presets/blue-arch.png",
		Template: domain.TemplateRamadan, Palette: [3]string{"#0E3A5B", "#E0B85C", "#FBF4E4"},
		Keywords: []string{"arabian", "moroccan", "arch", "nights", "iftar"},
	},
	{
		ID: "blue-arch-2", Label: "Blue Arches II", Background: "presets/blue-arch-2.png",
		Template: domain.TemplateRamadan, Palette: [3]string{"#12466B", "#EBC571", "#FFF8EA"},
		Keywords: []string{"ramadan", "suhoor", "lantern"},
	},
	{
		ID: "mint-vintage", Label: "Mint Vintage", Background: "presets/mint-vintage.png",
		Template: domain.TemplateMinimal, Palette: [3]string{"#EAF4EE", "#4E7C5F", "#35483C"},
		Keywords: []string{"vintage", "mint", "high tea", "brunch", "classic"},
	},
	{
		ID: "royal-velvet", Label: "Royal Velvet", Background: "presets/royal-velvet.png",
		Template: domain.TemplateElegant, Palette: [3]string{"#1E1240", "#D9B65C", "#F7F1FF"},
		Keywords: []string{"royal", "regal", "palace", "velvet", "crown"},
	},
	{
		ID: "garden-tea", Label: "Garden Tea Party", Background: "presets/garden-tea.png",
		Template: domain.TemplateFun, Palette: [3]string{"#F2F7EC", "#5B8C51", "#2E4A2B"},
		Keywords: []string{"garden", "tea party", "picnic", "outdoor"},
	},
	{
		ID: "neon-nights", Label: "Neon Nights", Background: "presets/neon-nights.png",
		Template: domain.TemplateFun, Palette: [3]string{"#14000F", "#00F5D4", "#F15BB5"},
		Keywords: []string{"neon", "glow", "disco", "retro", "arcade"},
	},
	{
		ID: "eid-lantern", Label: "Eid Lanterns", Background: "presets/eid-lantern.png",
		Template: domain.TemplateRamadan, Palette: [3]string{"#10304A", "#E3C36F", "#F6F2E7"},
		Keywords: []string{"eid", "lantern", "chand raat", "celebration"},
	},
	{
		ID: "winter-frost", Label: "Winter Frost", Background: "presets/winter-frost.png",
		Template: domain.TemplateElegant, Palette: [3]string{"#0F2547", "#9CC3F0", "#F4F8FF"},
		Keywords: []string{"winter", "snow", "frost", "wonderland"},
	},
}

// ReferenceConfig drives the overlay render path for one preset: where the
// translucent content panel sits, its ink colors, and the preset's own
// typography rules.
type ReferenceConfig struct {
	// Panel geometry as fractions of the canvas.
	PanelX, PanelY float64
	PanelW, PanelH float64
	PanelColor     string
	PanelRadius    float64

	Ink    string
	Accent string

	TitleSize      float64
	ScriptSize     float64
	DetailSize     float64
	TitleRole      FontRole
	ScriptRole     FontRole
	TitleUppercase bool
	TitleBold      bool
}

// referenceConfigs is keyed by base preset id. A "-2" suffix aliases to its
// base config; the variant keeps its own background asset and palette.
var referenceConfigs = map[string]ReferenceConfig{
	"floral-lilac": {
		PanelX: 0.10, PanelY: 0.26, PanelW: 0.80, PanelH: 0.48,
		PanelColor: "#FFFFFFB8", PanelRadius: 28,
		Ink: "#3C2E58", Accent: "#8B6FC2",
		TitleSize: 88, ScriptSize: 40, DetailSize: 30,
		TitleRole: RoleDisplay, ScriptRole: RoleScript,
	},
	"marble-geo": {
		PanelX: 0.08, PanelY: 0.30, PanelW: 0.84, PanelH: 0.42,
		PanelColor: "#FFFFFFD6", PanelRadius: 0,
		Ink: "#1E1E1E", Accent: "#B49A5E",
		TitleSize: 82, ScriptSize: 36, DetailSize: 28,
		TitleRole: RoleBody, ScriptRole: RoleBody,
		TitleUppercase: true, TitleBold: true,
	},
	"black-gold": {
		PanelX: 0.12, PanelY: 0.24, PanelW: 0.76, PanelH: 0.52,
		PanelColor: "#0C0C0CB0", PanelRadius: 16,
		Ink: "#F5EFDF", Accent: "#D4AF37",
		TitleSize: 92, ScriptSize: 42, DetailSize: 30,
		TitleRole: RoleDisplay, ScriptRole: RoleScript,
		TitleUppercase: true,
	},
	"blue-arch": {
		PanelX: 0.11, PanelY: 0.30, PanelW: 0.78, PanelH: 0.46,
		PanelColor: "#0E3A5BA8", PanelRadius: 180,
		Ink: "#FBF4E4", Accent: "#E0B85C",
		TitleSize: 84, ScriptSize: 38, DetailSize: 29,
		TitleRole: RoleDisplay, ScriptRole: RoleScript,
	},
	"mint-vintage": {
		PanelX: 0.10, PanelY: 0.28, PanelW: 0.80, PanelH: 0.46,
		PanelColor: "#FFFFFFC4", PanelRadius: 10,
		Ink: "#35483C", Accent: "#4E7C5F",
		TitleSize: 80, ScriptSize: 44, DetailSize: 28,
		TitleRole: RoleDisplay, ScriptRole: RoleScript,
		TitleBold: true,
	},
	"royal-velvet": {
		PanelX: 0.12, PanelY: 0.26, PanelW: 0.76, PanelH: 0.50,
		PanelColor: "#1E1240B8", PanelRadius: 24,
		Ink: "#F7F1FF", Accent: "#D9B65C",
		TitleSize: 90, ScriptSize: 40, DetailSize: 30,
		TitleRole: RoleDisplay, ScriptRole: RoleScript,
		TitleUppercase: true,
	},
	"garden-tea": {
		PanelX: 0.09, PanelY: 0.30, PanelW: 0.82, PanelH: 0.44,
		PanelColor: "#FFFFFFBE", PanelRadius: 32,
		Ink: "#2E4A2B", Accent: "#5B8C51",
		TitleSize: 78, ScriptSize: 42, DetailSize: 28,
		TitleRole: RoleScript, ScriptRole: RoleScript,
	},
	"neon-nights": {
		PanelX: 0.10, PanelY: 0.28, PanelW: 0.80, PanelH: 0.46,
		PanelColor: "#14000FBE", PanelRadius: 12,
		Ink: "#F4FDFF", Accent: "#00F5D4",
		TitleSize: 86, ScriptSize: 36, DetailSize: 28,
		TitleRole: RoleDisplay, ScriptRole: RoleBody,
		TitleUppercase: true, TitleBold: true,
	},
	"eid-lantern": {
		PanelX: 0.11, PanelY: 0.27, PanelW: 0.78, PanelH: 0.48,
		PanelColor: "#10304AB0", PanelRadius: 140,
		Ink: "#F6F2E7", Accent: "#E3C36F",
		TitleSize: 84, ScriptSize: 40, DetailSize: 29,
		TitleRole: RoleDisplay, ScriptRole: RoleScript,
	},
	"winter-frost": {
		PanelX: 0.10, PanelY: 0.26, PanelW: 0.80, PanelH: 0.48,
		PanelColor: "#10284CA8", PanelRadius: 26,
		Ink: "#F4F8FF", Accent: "#9CC3F0",
		TitleSize: 88, ScriptSize: 40, DetailSize: 30,
		TitleRole: RoleDisplay, ScriptRole: RoleScript,
	},
}

// NormalizePresetID maps a "-2" variant id onto its base id for config
// lookup. The variant still renders against its own background asset.
func NormalizePresetID(id string) string {
	return strings.TrimSuffix(strings.TrimSpace(id), "-2")
}

// PresetByID returns the catalog entry with the given id.
func PresetByID(id string) (Preset, bool) {
	id = strings.TrimSpace(id)
	for _, p := range Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// ReferenceConfigFor returns the overlay config for a preset id, applying the
// "-2" suffix normalization.
func ReferenceConfigFor(id string) (ReferenceConfig, bool) {
	cfg, ok := referenceConfigs[NormalizePresetID(id)]
	return cfg, ok
}

// MatchPreset scores every catalog entry against the lowercased event text by
// counting keyword substring hits. The highest count wins; ties resolve to
// catalog order; zero hits everywhere resolves to the first entry. Used to
// suggest a default preset for a theme, independent of an explicit preset id.
func MatchPreset(theme, dressCode, note string) Preset {
	haystack := strings.ToLower(theme + " " + dressCode + " " + note)
	best := Presets[0]
	bestScore := 0
	for _, p := range Presets {
		score := 0
		for _, kw := range p.Keywords {
			if strings.Contains(haystack, kw) {
				score++
			}
		}
		if score > bestScore {
			best = p
			bestScore = score
		}
	}
	return best
}
