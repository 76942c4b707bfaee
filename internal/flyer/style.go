package flyer

import (
	"fmt"
	"strconv"
	"strings"

	"server/internal/domain"
)

// DecorKind is the style family driving decoration and layout choices in the
// generative render path.
type DecorKind string

const (
	KindWinter      DecorKind = "winter"
	KindCarpet      DecorKind = "carpet"
	KindEid         DecorKind = "eid"
	KindDesi        DecorKind = "desi"
	KindGarden      DecorKind = "garden"
	KindTropical    DecorKind = "tropical"
	KindCelestial   DecorKind = "celestial"
	KindNeon        DecorKind = "neon"
	KindRoyal       DecorKind = "royal"
	KindAutumn      DecorKind = "autumn"
	KindSpooky      DecorKind = "spooky"
	KindFloralLilac DecorKind = "floral_lilac"
	KindMarbleGeo   DecorKind = "marble_geo"
	KindBlackGold   DecorKind = "black_gold"
	KindBlueArch    DecorKind = "blue_arch"
	KindMintVintage DecorKind = "mint_vintage"
	KindGeneric     DecorKind = "generic"
)

// VisualStyle is the per-request color and motif bundle resolved from event
// text. Colors are hex strings; Panel carries an alpha channel.
type VisualStyle struct {
	GradientTop    string
	GradientBottom string
	TextColor      string
	Panel          string
	Accent         string
	Accent2        string
	Motif          string
	Sparkle        string
	InviteLine     string
	Kind           DecorKind
}

type styleGroup struct {
	keywords []string
	style    VisualStyle
}

// styleGroups is consulted in order; the first group with any keyword present
// in the lowercased theme+dressCode+note haystack wins. Winter stays ahead of
// black_gold so "Winter Wonderland Gala" resolves to winter, not to the gala
// keyword.
var styleGroups = []styleGroup{
	{
		keywords: []string{"winter", "snow", "frost", "wonderland", "ice"},
		style: VisualStyle{
			GradientTop: "#0F2547", GradientBottom: "#25477A", TextColor: "#F4F8FF",
			Panel: "#10284CB8", Accent: "#9CC3F0", Accent2: "#E8F1FB",
			Motif: "❆", Sparkle: "❄", InviteLine: "You are warmly invited to",
			Kind: KindWinter,
		},
	},
	{
		keywords: []string{"red carpet", "hollywood", "awards", "glam", "premiere"},
		style: VisualStyle{
			GradientTop: "#1A0A0E", GradientBottom: "#471019", TextColor: "#FBEFE4",
			Panel: "#2B0A10C0", Accent: "#D4AF37", Accent2: "#A61B2B",
			Motif: "★", Sparkle: "✦", InviteLine: "Roll out the red carpet for",
			Kind: KindCarpet,
		},
	},
	{
		keywords: []string{"eid", "ramadan", "iftar", "suhoor", "lantern"},
		style: VisualStyle{
			GradientTop: "#10304A", GradientBottom: "#1C4E68", TextColor: "#F6F2E7",
			Panel: "#123653BE", Accent: "#E3C36F", Accent2: "#8FD0C4",
			Motif: "☪", Sparkle: "✦", InviteLine: "With joy and gratitude, join us for",
			Kind: KindEid,
		},
	},
	{
		keywords: []string{"desi", "bollywood", "mehndi", "shalwar", "sari", "south asian"},
		style: VisualStyle{
			GradientTop: "#3B0D2E", GradientBottom: "#6B1B3F", TextColor: "#FFF3E0",
			Panel: "#46103473", Accent: "#F2B134", Accent2: "#2BB5A0",
			Motif: "✿", Sparkle: "✧", InviteLine: "Dhol beats and bright colors await at",
			Kind: KindDesi,
		},
	},
	{
		keywords: []string{"lilac", "lavender", "pastel"},
		style: VisualStyle{
			GradientTop: "#E9E2F5", GradientBottom: "#C9B8E8", TextColor: "#3C2E58",
			Panel: "#FFFFFFC9", Accent: "#8B6FC2", Accent2: "#D9A9C8",
			Motif: "❀", Sparkle: "✦", InviteLine: "Something soft and lovely:",
			Kind: KindFloralLilac,
		},
	},
	{
		keywords: []string{"garden", "spring", "tea party", "bloom", "floral"},
		style: VisualStyle{
			GradientTop: "#F2F7EC", GradientBottom: "#CBE3C4", TextColor: "#2E4A2B",
			Panel: "#FFFFFFC9", Accent: "#5B8C51", Accent2: "#D77FA1",
			Motif: "⚘", Sparkle: "❀", InviteLine: "Among the blossoms, join us for",
			Kind: KindGarden,
		},
	},
	{
		keywords: []string{"tropical", "luau", "beach", "island", "summer"},
		style: VisualStyle{
			GradientTop: "#FF9A5A", GradientBottom: "#FF5E62", TextColor: "#FFF8EE",
			Panel: "#7A1F2BB0", Accent: "#FFD166", Accent2: "#06D6A0",
			Motif: "☀", Sparkle: "✦", InviteLine: "Sun, sand, and good company at",
			Kind: KindTropical,
		},
	},
	{
		keywords: []string{"celestial", "starry", "galaxy", "moon", "cosmic", "space"},
		style: VisualStyle{
			GradientTop: "#0B1026", GradientBottom: "#2C2A4A", TextColor: "#EDEBFF",
			Panel: "#141A38BE", Accent: "#B8A9F5", Accent2: "#F5D98F",
			Motif: "☽", Sparkle: "✶", InviteLine: "Under a sky full of stars,",
			Kind: KindCelestial,
		},
	},
	{
		keywords: []string{"neon", "glow", "disco", "90s", "arcade"},
		style: VisualStyle{
			GradientTop: "#14000F", GradientBottom: "#30004A", TextColor: "#F4FDFF",
			Panel: "#1E0330C4", Accent: "#00F5D4", Accent2: "#F15BB5",
			Motif: "▲", Sparkle: "✶", InviteLine: "Turn the lights up for",
			Kind: KindNeon,
		},
	},
	{
		keywords: []string{"royal", "regal", "palace", "king", "queen", "crown"},
		style: VisualStyle{
			GradientTop: "#1E1240", GradientBottom: "#3B2470", TextColor: "#F7F1FF",
			Panel: "#281754BE", Accent: "#D9B65C", Accent2: "#9D7FE0",
			Motif: "♛", Sparkle: "✦", InviteLine: "By royal decree, you are invited to",
			Kind: KindRoyal,
		},
	},
	{
		keywords: []string{"autumn", "fall", "harvest", "thanksgiving"},
		style: VisualStyle{
			GradientTop: "#4A2511", GradientBottom: "#7A3E1D", TextColor: "#FBEED9",
			Panel: "#552D12BE", Accent: "#E8963C", Accent2: "#C24E2C",
			Motif: "❦", Sparkle: "✦", InviteLine: "As the leaves turn, gather for",
			Kind: KindAutumn,
		},
	},
	{
		keywords: []string{"halloween", "spooky", "haunted", "costume", "pumpkin"},
		style: VisualStyle{
			GradientTop: "#120B1C", GradientBottom: "#2E1245", TextColor: "#F2E8D5",
			Panel: "#1B0F2AC4", Accent: "#F08C1B", Accent2: "#7FBF4D",
			Motif: "☘", Sparkle: "✶", InviteLine: "If you dare, creep over to",
			Kind: KindSpooky,
		},
	},
	{
		keywords: []string{"marble", "geometric", "monochrome", "modern", "minimalist"},
		style: VisualStyle{
			GradientTop: "#F4F4F2", GradientBottom: "#DADAD6", TextColor: "#1E1E1E",
			Panel: "#FFFFFFD0", Accent: "#B49A5E", Accent2: "#60605C",
			Motif: "◆", Sparkle: "·", InviteLine: "Clean lines, good company:",
			Kind: KindMarbleGeo,
		},
	},
	{
		keywords: []string{"black tie", "gala", "black and gold", "new year", "masquerade"},
		style: VisualStyle{
			GradientTop: "#0C0C0C", GradientBottom: "#23201A", TextColor: "#F5EFDF",
			Panel: "#151310C9", Accent: "#D4AF37", Accent2: "#8C7440",
			Motif: "✦", Sparkle: "✧", InviteLine: "An evening of elegance awaits:",
			Kind: KindBlackGold,
		},
	},
	{
		keywords: []string{"arabian", "moroccan", "arch", "nights", "souk"},
		style: VisualStyle{
			GradientTop: "#0E3A5B", GradientBottom: "#175A80", TextColor: "#FBF4E4",
			Panel: "#0F4066BE", Accent: "#E0B85C", Accent2: "#5CC8C0",
			Motif: "❖", Sparkle: "✦", InviteLine: "Step through the arches into",
			Kind: KindBlueArch,
		},
	},
	{
		keywords: []string{"vintage", "mint", "high tea", "retro brunch", "classic"},
		style: VisualStyle{
			GradientTop: "#EAF4EE", GradientBottom: "#BFDCCB", TextColor: "#35483C",
			Panel: "#FFFFFFC9", Accent: "#4E7C5F", Accent2: "#D8A48F",
			Motif: "✽", Sparkle: "·", InviteLine: "A timeless afternoon awaits:",
			Kind: KindMintVintage,
		},
	},
}

// templateDefaults supplies colors when no keyword group matches.
var templateDefaults = map[domain.TemplateKey]VisualStyle{
	domain.TemplateElegant: {
		GradientTop: "#1C1B29", GradientBottom: "#34324E", TextColor: "#F3F1EA",
		Panel: "#232138BE", Accent: "#C9AE6B", Accent2: "#8E86B8",
		Motif: "✦", Sparkle: "✧", InviteLine: "You are cordially invited to",
	},
	domain.TemplateFun: {
		GradientTop: "#FF8A5C", GradientBottom: "#FFB347", TextColor: "#3A1E0E",
		Panel: "#FFF4E3C9", Accent: "#E84855", Accent2: "#3185FC",
		Motif: "✸", Sparkle: "✶", InviteLine: "Get ready for",
	},
	domain.TemplateMinimal: {
		GradientTop: "#FAFAF8", GradientBottom: "#E8E8E4", TextColor: "#22221F",
		Panel: "#FFFFFFD0", Accent: "#6B6B66", Accent2: "#B8B8B2",
		Motif: "·", Sparkle: "·", InviteLine: "Join us for",
	},
	domain.TemplateDesi: {
		GradientTop: "#4A102F", GradientBottom: "#7A2048", TextColor: "#FFF3E0",
		Panel: "#571539BE", Accent: "#F2B134", Accent2: "#2BB5A0",
		Motif: "✿", Sparkle: "✧", InviteLine: "Rang aur raunaq:",
	},
	domain.TemplateRamadan: {
		GradientTop: "#11293F", GradientBottom: "#1D4460", TextColor: "#F6F2E7",
		Panel: "#143050BE", Accent: "#E3C36F", Accent2: "#8FD0C4",
		Motif: "☪", Sparkle: "✦", InviteLine: "In this blessed month, join us for",
	},
}

// SelectStyle resolves a VisualStyle from event text. The haystack is the
// lowercased concatenation of theme, dress code, and note; the first matching
// keyword group wins. With no match, the template key's default colors apply
// under the generic decor kind. An explicit palette of three or more colors
// overrides the gradient stops and primary accent, with text and panel colors
// recomputed from the background luminance. Callers on the reference path
// never consult this function for color.
func SelectStyle(in domain.FlyerInput) VisualStyle {
	haystack := strings.ToLower(in.Theme + " " + in.DressCode + " " + in.Note)

	style, ok := matchStyleGroup(haystack)
	if !ok {
		style, ok = templateDefaults[in.TemplateKey]
		if !ok {
			style = templateDefaults[domain.TemplateElegant]
		}
		style.Kind = KindGeneric
	}

	if len(in.Palette) >= 3 {
		style = applyPalette(style, in.Palette)
	}
	return style
}

func matchStyleGroup(haystack string) (VisualStyle, bool) {
	for _, g := range styleGroups {
		for _, kw := range g.keywords {
			if strings.Contains(haystack, kw) {
				return g.style, true
			}
		}
	}
	return VisualStyle{}, false
}

// applyPalette overrides gradient stops and the primary accent with the first
// three palette entries, then recomputes text and panel colors from the top
// stop's luminance. Invalid hex entries leave the style untouched.
func applyPalette(style VisualStyle, palette []string) VisualStyle {
	r, g, b, err := parseHex(palette[0])
	if err != nil {
		return style
	}
	if _, _, _, err := parseHex(palette[1]); err != nil {
		return style
	}
	if _, _, _, err := parseHex(palette[2]); err != nil {
		return style
	}

	style.GradientTop = normalizeHex(palette[0])
	style.GradientBottom = normalizeHex(palette[1])
	style.Accent = normalizeHex(palette[2])

	lum := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	if lum > 165 {
		style.TextColor = "#23232A"
		style.Panel = "#1F1F2626"
	} else {
		style.TextColor = "#F7F6F1"
		style.Panel = "#FFFFFF2E"
	}
	return style
}

func normalizeHex(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return strings.ToUpper(s)
}

func parseHex(s string) (r, g, b uint8, err error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 8 {
		s = s[:6]
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", s)
	}
	rv, err := strconv.ParseUint(s[0:2], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", s)
	}
	gv, err := strconv.ParseUint(s[2:4], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", s)
	}
	bv, err := strconv.ParseUint(s[4:6], 16, 8)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", s)
	}
	return uint8(rv), uint8(gv), uint8(bv), nil
}
