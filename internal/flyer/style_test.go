package flyer

import (
	"testing"

	"server/internal/domain"
)

func TestSelectStyleKeywordGroups(t *testing.T) {
	tests := []struct {
		name string
		in   domain.FlyerInput
		want DecorKind
	}{
		{
			name: "winter beats gala when both keywords present",
			in:   domain.FlyerInput{Theme: "Winter Wonderland Gala"},
			want: KindWinter,
		},
		{
			name: "eid from note",
			in:   domain.FlyerInput{Theme: "Community Dinner", Note: "Eid celebration to follow"},
			want: KindEid,
		},
		{
			name: "desi from dress code",
			in:   domain.FlyerInput{Theme: "Spring Mixer", DressCode: "Desi formal"},
			want: KindDesi,
		},
		{
			name: "case insensitive",
			in:   domain.FlyerInput{Theme: "NEON Nights"},
			want: KindNeon,
		},
		{
			name: "lilac wins over generic floral",
			in:   domain.FlyerInput{Theme: "Lilac Floral Brunch"},
			want: KindFloralLilac,
		},
		{
			name: "no match falls back to template key",
			in:   domain.FlyerInput{Theme: "Quarterly Meetup", TemplateKey: domain.TemplateMinimal},
			want: KindGeneric,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectStyle(tt.in)
			if got.Kind != tt.want {
				t.Fatalf("SelectStyle(%q).Kind = %q, want %q", tt.in.Theme, got.Kind, tt.want)
			}
		})
	}
}

func TestSelectStyleTemplateDefaults(t *testing.T) {
	for _, key := range []domain.TemplateKey{
		domain.TemplateElegant, domain.TemplateFun, domain.TemplateMinimal,
		domain.TemplateDesi, domain.TemplateRamadan,
	} {
		style := SelectStyle(domain.FlyerInput{Theme: "Untitled Event", TemplateKey: key})
		if style.Kind != KindGeneric {
			t.Errorf("template %q: Kind = %q, want generic", key, style.Kind)
		}
		if style.GradientTop == "" || style.TextColor == "" || style.InviteLine == "" {
			t.Errorf("template %q: incomplete default style %+v", key, style)
		}
	}
}

func TestSelectStylePaletteOverride(t *testing.T) {
	base := domain.FlyerInput{Theme: "Quarterly Meetup", TemplateKey: domain.TemplateElegant}

	light := base
	light.Palette = []string{"#FFFFFF", "#EEEEEE", "#112233"}
	got := SelectStyle(light)
	if got.GradientTop != "#FFFFFF" || got.GradientBottom != "#EEEEEE" || got.Accent != "#112233" {
		t.Fatalf("palette not applied: %+v", got)
	}
	if got.TextColor != "#23232A" {
		t.Fatalf("light background should pick dark text, got %q", got.TextColor)
	}

	dark := base
	dark.Palette = []string{"#101020", "#202040", "#DDCCAA"}
	got = SelectStyle(dark)
	if got.TextColor != "#F7F6F1" {
		t.Fatalf("dark background should pick light text, got %q", got.TextColor)
	}
}

func TestSelectStyleInvalidPaletteIgnored(t *testing.T) {
	in := domain.FlyerInput{
		Theme:       "Winter Social",
		Palette:     []string{"not-a-color", "#EEEEEE", "#112233"},
		TemplateKey: domain.TemplateElegant,
	}
	got := SelectStyle(in)
	want := SelectStyle(domain.FlyerInput{Theme: "Winter Social", TemplateKey: domain.TemplateElegant})
	if got != want {
		t.Fatalf("invalid palette should leave style untouched:\n got %+v\nwant %+v", got, want)
	}
}

func TestProfileExistsForEveryKind(t *testing.T) {
	kinds := []DecorKind{
		KindWinter, KindCarpet, KindEid, KindDesi, KindGarden, KindTropical,
		KindCelestial, KindNeon, KindRoyal, KindAutumn, KindSpooky,
		KindFloralLilac, KindMarbleGeo, KindBlackGold, KindBlueArch,
		KindMintVintage, KindGeneric,
	}
	if len(kinds) != len(profiles) {
		t.Fatalf("profile table has %d entries, want %d", len(profiles), len(kinds))
	}
	for _, k := range kinds {
		p := ProfileFor(k)
		if p.TitleSize == 0 || p.DetailSize == 0 || p.BrandMarkSize == 0 {
			t.Errorf("kind %q: incomplete profile %+v", k, p)
		}
		if p.Roles.Title == "" || p.Roles.Detail == "" || p.Roles.Closing == "" {
			t.Errorf("kind %q: unassigned font roles %+v", k, p.Roles)
		}
	}
}
