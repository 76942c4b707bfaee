package flyer

import (
	"reflect"
	"testing"

	"server/internal/domain"
)

var allDecorKinds = []DecorKind{
	KindWinter, KindCarpet, KindEid, KindDesi, KindGarden, KindTropical,
	KindCelestial, KindNeon, KindRoyal, KindAutumn, KindSpooky,
	KindFloralLilac, KindMarbleGeo, KindBlackGold, KindBlueArch,
	KindMintVintage, KindGeneric,
}

func TestBuildDecorationsDeterministic(t *testing.T) {
	in := domain.FlyerInput{TemplateKey: domain.TemplateElegant, Theme: "Winter Wonderland Gala"}
	style := SelectStyle(in)

	first := BuildDecorations(style.Kind, CanvasWidth, CanvasHeight, style)
	second := BuildDecorations(style.Kind, CanvasWidth, CanvasHeight, style)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("decoration trees differ between identical calls")
	}
}

func TestBuildDecorationsEveryKind(t *testing.T) {
	style := VisualStyle{
		GradientTop: "#111111", GradientBottom: "#222222",
		TextColor: "#F7F6F1", Panel: "#FFFFFF22",
		Accent: "#D4AF37", Accent2: "#F5EFDF",
		Motif: "❄", Sparkle: "✦",
	}
	for _, kind := range allDecorKinds {
		style.Kind = kind
		nodes := BuildDecorations(kind, CanvasWidth, CanvasHeight, style)
		// Every kind carries at least the sparkle field and motif placements.
		if len(nodes) < 86 {
			t.Errorf("kind %s: got %d nodes, want at least 86", kind, len(nodes))
		}
	}
}

func TestSparkleFieldPlacement(t *testing.T) {
	style := VisualStyle{Accent: "#D4AF37", Accent2: "#F5EFDF"}
	nodes := sparkleField(CanvasWidth, CanvasHeight, style)
	if len(nodes) != 80 {
		t.Fatalf("got %d sparkles, want 80", len(nodes))
	}

	for _, i := range []int{0, 1, 7, 40, 79} {
		wantX := float64((i*131+47)%(CanvasWidth-40) + 20)
		wantY := float64((i*89+29)%(CanvasHeight-40) + 20)
		n := nodes[i]
		r := n.W / 2
		if n.X+r != wantX || n.Y+r != wantY {
			t.Errorf("sparkle %d centered at (%.0f, %.0f), want (%.0f, %.0f)",
				i, n.X+r, n.Y+r, wantX, wantY)
		}
		if n.X < 0 || n.Y < 0 || n.X+n.W > CanvasWidth || n.Y+n.H > CanvasHeight {
			t.Errorf("sparkle %d escapes the canvas: %+v", i, n)
		}
	}

	if nodes[0].Fill != style.Accent {
		t.Errorf("sparkle 0 fill = %s, want accent", nodes[0].Fill)
	}
	if nodes[1].Fill != style.Accent2 {
		t.Errorf("sparkle 1 fill = %s, want secondary accent", nodes[1].Fill)
	}
	if nodes[4].Fill != style.Accent {
		t.Errorf("sparkle 4 fill = %s, want accent", nodes[4].Fill)
	}
}

func TestMotifFieldPlacements(t *testing.T) {
	style := VisualStyle{Motif: "❄", Accent: "#9CC3F0"}
	nodes := motifField(CanvasWidth, CanvasHeight, style)
	if len(nodes) != len(motifPlacements) {
		t.Fatalf("got %d motif nodes, want %d", len(nodes), len(motifPlacements))
	}
	for i, n := range nodes {
		if n.Text != style.Motif {
			t.Errorf("motif %d text = %q", i, n.Text)
		}
		if n.Rotation != motifPlacements[i].rot {
			t.Errorf("motif %d rotation = %v, want %v", i, n.Rotation, motifPlacements[i].rot)
		}
	}
}
