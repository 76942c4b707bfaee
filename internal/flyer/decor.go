package flyer

// BuildDecorations produces the ornamental layer for one decor kind as a list
// of container nodes composited behind the text. It is a pure function of its
// arguments: no randomness, no counters — the sparkle field uses a fixed
// arithmetic placement formula so repeated calls yield identical trees.
func BuildDecorations(kind DecorKind, w, h float64, style VisualStyle) []*Node {
	var nodes []*Node

	switch kind {
	case KindWinter:
		nodes = append(nodes, winterDrifts(w, h, style)...)
	case KindCarpet:
		nodes = append(nodes, carpetPanel(w, h, style)...)
	case KindEid:
		nodes = append(nodes, eidMoonAndArch(w, h, style)...)
	case KindDesi:
		nodes = append(nodes, desiRingAndDots(w, h, style)...)
	case KindGarden:
		nodes = append(nodes, gardenVines(w, h, style)...)
	case KindTropical:
		nodes = append(nodes, tropicalSun(w, h, style)...)
	case KindCelestial:
		nodes = append(nodes, celestialOrbits(w, h, style)...)
	case KindNeon:
		nodes = append(nodes, neonFrame(w, h, style)...)
	case KindRoyal:
		nodes = append(nodes, royalCanopy(w, h, style)...)
	case KindAutumn:
		nodes = append(nodes, autumnBands(w, h, style)...)
	case KindSpooky:
		nodes = append(nodes, spookyHill(w, h, style)...)
	case KindFloralLilac:
		nodes = append(nodes, lilacClusters(w, h, style)...)
	case KindMarbleGeo:
		nodes = append(nodes, marbleBlocks(w, h, style)...)
	case KindBlackGold:
		nodes = append(nodes, goldFrame(w, h, style)...)
	case KindBlueArch:
		nodes = append(nodes, blueArches(w, h, style)...)
	case KindMintVintage:
		nodes = append(nodes, vintageBorder(w, h, style)...)
	}

	nodes = append(nodes, sparkleField(w, h, style)...)
	nodes = append(nodes, motifField(w, h, style)...)
	return nodes
}

// sparkleField scatters ~80 small dots with index-seeded arithmetic placement.
func sparkleField(w, h float64, style VisualStyle) []*Node {
	const count = 80
	nodes := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		x := float64((i*131+47)%(int(w)-40) + 20)
		y := float64((i*89+29)%(int(h)-40) + 20)
		r := 1.5 + float64(i%3)
		dot := box(x-r, y-r, 2*r, 2*r)
		dot.Shape = ShapeEllipse
		dot.Fill = style.Accent2
		if i%4 == 0 {
			dot.Fill = style.Accent
		}
		nodes = append(nodes, dot)
	}
	return nodes
}

// motifPlacements are the six fixed positions where the style's motif glyph
// renders, each with its own rotation.
var motifPlacements = [6]struct {
	x, y, size, rot float64
}{
	{86, 150, 54, -14},
	{980, 190, 44, 18},
	{120, 760, 38, 8},
	{1000, 820, 50, -10},
	{160, 1210, 46, 12},
	{930, 1260, 40, -18},
}

func motifField(w, h float64, style VisualStyle) []*Node {
	nodes := make([]*Node, 0, len(motifPlacements))
	for _, p := range motifPlacements {
		n := text(style.Motif, p.x, p.y, p.size*2)
		n.Role = RoleBody
		n.Size = p.size
		n.Color = style.Accent
		n.Align = AlignCenter
		n.Rotation = p.rot
		nodes = append(nodes, n)
	}
	return nodes
}

// winterDrifts lays three large soft ellipses along the bottom edge.
func winterDrifts(w, h float64, style VisualStyle) []*Node {
	drift := func(cx, cy, rx, ry float64) *Node {
		n := box(cx-rx, cy-ry, 2*rx, 2*ry)
		n.Shape = ShapeEllipse
		n.Fill = style.Accent2 + "33"
		return n
	}
	return []*Node{
		drift(w*0.18, h-60, 340, 150),
		drift(w*0.55, h-30, 420, 180),
		drift(w*0.92, h-80, 300, 140),
	}
}

// carpetPanel draws a velvet bottom panel, two angled highlight strips, and a
// row of round lights above it.
func carpetPanel(w, h float64, style VisualStyle) []*Node {
	panel := box(0, h-340, w, 340)
	panel.Gradient = &Gradient{From: style.Accent2, To: style.GradientTop}

	strip1 := box(-80, h-330, w*0.55, 46)
	strip1.Fill = style.Accent + "40"
	strip1.Rotation = -7

	strip2 := box(w*0.5, h-300, w*0.6, 46)
	strip2.Fill = style.Accent + "40"
	strip2.Rotation = 6

	nodes := []*Node{panel, strip1, strip2}
	for i := 0; i < 9; i++ {
		cx := 80 + float64(i)*((w-160)/8)
		light := box(cx-10, h-380, 20, 20)
		light.Shape = ShapeEllipse
		light.Fill = style.Accent
		nodes = append(nodes, light)
	}
	return nodes
}

// eidMoonAndArch draws a crescent via disc occlusion plus a large bottom arch
// outline.
func eidMoonAndArch(w, h float64, style VisualStyle) []*Node {
	moon := box(w-300, 110, 180, 180)
	moon.Shape = ShapeEllipse
	moon.Fill = style.Accent

	// The occluding disc is filled with the top gradient color so only a
	// crescent of the moon disc remains visible.
	occlusion := box(w-268, 92, 180, 180)
	occlusion.Shape = ShapeEllipse
	occlusion.Fill = style.GradientTop

	arch := box(w*0.125, h-420, w*0.75, 760)
	arch.Shape = ShapeEllipse
	arch.Stroke = style.Accent + "73"
	arch.StrokeWidth = 3

	archInner := box(w*0.17, h-380, w*0.66, 700)
	archInner.Shape = ShapeEllipse
	archInner.Stroke = style.Accent2 + "4D"
	archInner.StrokeWidth = 2

	return []*Node{moon, occlusion, arch, archInner}
}

// desiRingAndDots draws a dashed ring and a row of alternating-color dots.
func desiRingAndDots(w, h float64, style VisualStyle) []*Node {
	ring := box(w/2-330, h/2-330, 660, 660)
	ring.Shape = ShapeEllipse
	ring.Stroke = style.Accent + "59"
	ring.StrokeWidth = 3
	ring.Dash = []float64{14, 10}

	nodes := []*Node{ring}
	for i := 0; i < 12; i++ {
		cx := 70 + float64(i)*((w-140)/11)
		dot := box(cx-8, h-120, 16, 16)
		dot.Shape = ShapeEllipse
		if i%2 == 0 {
			dot.Fill = style.Accent
		} else {
			dot.Fill = style.Accent2
		}
		nodes = append(nodes, dot)
	}
	return nodes
}

func gardenVines(w, h float64, style VisualStyle) []*Node {
	var nodes []*Node
	for i := 0; i < 5; i++ {
		leaf := box(40+float64(i)*36, 80+float64(i)*150, 120, 54)
		leaf.Shape = ShapeEllipse
		leaf.Fill = style.Accent + "2E"
		leaf.Rotation = float64(-30 + i*15)
		nodes = append(nodes, leaf)
	}
	bed := box(-60, h-180, w+120, 260)
	bed.Shape = ShapeEllipse
	bed.Fill = style.Accent + "26"
	nodes = append(nodes, bed)
	return nodes
}

func tropicalSun(w, h float64, style VisualStyle) []*Node {
	sun := box(w-260, -80, 320, 320)
	sun.Shape = ShapeEllipse
	sun.Fill = style.Accent + "59"

	var nodes []*Node
	nodes = append(nodes, sun)
	for i := 0; i < 7; i++ {
		frond := box(-40, h-300+float64(i)*24, 280, 30)
		frond.Shape = ShapeEllipse
		frond.Fill = style.Accent2 + "40"
		frond.Rotation = float64(-50 + i*14)
		nodes = append(nodes, frond)
	}
	return nodes
}

func celestialOrbits(w, h float64, style VisualStyle) []*Node {
	var nodes []*Node
	radii := []float64{260, 360, 470}
	for i, r := range radii {
		orbit := box(w/2-r, h*0.38-r, 2*r, 2*r)
		orbit.Shape = ShapeEllipse
		orbit.Stroke = style.Accent + "33"
		orbit.StrokeWidth = 1.5
		if i == 1 {
			orbit.Dash = []float64{6, 12}
		}
		nodes = append(nodes, orbit)
	}
	planet := box(w*0.82, h*0.18, 56, 56)
	planet.Shape = ShapeEllipse
	planet.Fill = style.Accent2
	nodes = append(nodes, planet)
	return nodes
}

func neonFrame(w, h float64, style VisualStyle) []*Node {
	outer := box(50, 50, w-100, h-100)
	outer.Stroke = style.Accent
	outer.StrokeWidth = 4
	outer.Radius = 24

	inner := box(66, 66, w-132, h-132)
	inner.Stroke = style.Accent2 + "8C"
	inner.StrokeWidth = 2
	inner.Radius = 18

	glow := box(0, h-260, w, 260)
	glow.Gradient = &Gradient{From: style.Accent2 + "00", To: style.Accent2 + "4D"}

	return []*Node{outer, inner, glow}
}

func royalCanopy(w, h float64, style VisualStyle) []*Node {
	canopy := box(-w*0.25, -h*0.28, w*1.5, h*0.55)
	canopy.Shape = ShapeEllipse
	canopy.Fill = style.Accent + "26"

	var nodes []*Node
	nodes = append(nodes, canopy)
	for i := 0; i < 5; i++ {
		drop := box(w*0.1+float64(i)*w*0.2-5, 40, 10, 90+float64((i%3)*30))
		drop.Fill = style.Accent + "59"
		drop.Radius = 5
		nodes = append(nodes, drop)
	}
	return nodes
}

func autumnBands(w, h float64, style VisualStyle) []*Node {
	var nodes []*Node
	for i := 0; i < 3; i++ {
		band := box(-60, h-220+float64(i)*70, w+120, 54)
		band.Fill = style.Accent + "33"
		band.Rotation = float64(-3 + i*2)
		band.Radius = 27
		nodes = append(nodes, band)
	}
	leaf := box(w-220, 120, 120, 60)
	leaf.Shape = ShapeEllipse
	leaf.Fill = style.Accent2 + "4D"
	leaf.Rotation = 35
	nodes = append(nodes, leaf)
	return nodes
}

func spookyHill(w, h float64, style VisualStyle) []*Node {
	hill := box(-w*0.2, h-260, w*1.4, 420)
	hill.Shape = ShapeEllipse
	hill.Fill = "#000000" + "66"

	moon := box(w-280, 100, 150, 150)
	moon.Shape = ShapeEllipse
	moon.Fill = style.Accent + "D9"

	var nodes []*Node
	nodes = append(nodes, hill, moon)
	for i := 0; i < 4; i++ {
		stone := box(w*0.15+float64(i)*w*0.2, h-200, 26, 60-float64(i%2)*14)
		stone.Fill = "#00000080"
		stone.Radius = 10
		nodes = append(nodes, stone)
	}
	return nodes
}

func lilacClusters(w, h float64, style VisualStyle) []*Node {
	cluster := func(cx, cy float64) []*Node {
		offsets := [5][2]float64{{0, 0}, {-26, 18}, {26, 18}, {-14, -22}, {14, -22}}
		var ns []*Node
		for _, o := range offsets {
			petal := box(cx+o[0]-16, cy+o[1]-16, 32, 32)
			petal.Shape = ShapeEllipse
			petal.Fill = style.Accent + "40"
			ns = append(ns, petal)
		}
		return ns
	}
	var nodes []*Node
	nodes = append(nodes, cluster(110, 140)...)
	nodes = append(nodes, cluster(w-130, 220)...)
	nodes = append(nodes, cluster(90, h-160)...)
	nodes = append(nodes, cluster(w-110, h-120)...)
	return nodes
}

func marbleBlocks(w, h float64, style VisualStyle) []*Node {
	var nodes []*Node
	blockW := w * 0.34
	for i := 0; i < 3; i++ {
		b := box(w-blockW+float64(i)*30, float64(i)*46, blockW, 30)
		b.Fill = style.Accent + "40"
		b.Rotation = -8
		nodes = append(nodes, b)
	}
	base := box(0, h-140, w, 140)
	base.Fill = style.Accent2 + "26"
	nodes = append(nodes, base)
	rule := box(60, h-150, w-120, 3)
	rule.Fill = style.Accent
	nodes = append(nodes, rule)
	return nodes
}

func goldFrame(w, h float64, style VisualStyle) []*Node {
	outer := box(44, 44, w-88, h-88)
	outer.Stroke = style.Accent
	outer.StrokeWidth = 3

	inner := box(58, 58, w-116, h-116)
	inner.Stroke = style.Accent + "66"
	inner.StrokeWidth = 1

	var nodes []*Node
	nodes = append(nodes, outer, inner)
	// Corner studs.
	for _, c := range [4][2]float64{{44, 44}, {w - 44, 44}, {44, h - 44}, {w - 44, h - 44}} {
		stud := box(c[0]-7, c[1]-7, 14, 14)
		stud.Shape = ShapeEllipse
		stud.Fill = style.Accent
		nodes = append(nodes, stud)
	}
	return nodes
}

func blueArches(w, h float64, style VisualStyle) []*Node {
	arch := func(cx, top, aw, ah float64, color string) *Node {
		n := box(cx-aw/2, top, aw, ah)
		n.Shape = ShapeEllipse
		n.Stroke = color
		n.StrokeWidth = 3
		return n
	}
	return []*Node{
		arch(w/2, 180, w*0.72, h*1.15, style.Accent+"59"),
		arch(w/2, 230, w*0.6, h*1.05, style.Accent2+"40"),
		arch(w*0.12, h-300, 220, 520, style.Accent+"33"),
		arch(w*0.88, h-300, 220, 520, style.Accent+"33"),
	}
}

func vintageBorder(w, h float64, style VisualStyle) []*Node {
	frame := box(60, 60, w-120, h-120)
	frame.Stroke = style.Accent
	frame.StrokeWidth = 2
	frame.Dash = []float64{2, 6}
	frame.Radius = 10

	top := box(w/2-130, 46, 260, 28)
	top.Fill = style.Accent + "33"
	top.Radius = 14

	bottom := box(w/2-130, h-74, 260, 28)
	bottom.Fill = style.Accent + "33"
	bottom.Radius = 14

	return []*Node{frame, top, bottom}
}
