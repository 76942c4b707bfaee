package flyer

import (
	"image"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"server/internal/domain"
)

// PlanKind discriminates the two rendering paths.
type PlanKind int

const (
	PlanGenerative PlanKind = iota
	PlanReference
)

// RenderPlan is the resolved outcome of the preset-lookup step. Exactly one
// path applies per request; the builder dispatches on Kind once instead of
// re-checking preset ids throughout.
type RenderPlan struct {
	Kind PlanKind

	// Generative path.
	Style   VisualStyle
	Profile LayoutProfile

	// Reference path.
	Preset     Preset
	Reference  ReferenceConfig
	Background image.Image
}

const brandLabel = "Community Socials"

var titleCaser = cases.Title(language.Und)

// SplitTitle breaks a theme into the two stacked title lines. Themes of one
// or two words render on a single line; longer themes put the first two words
// on top and the remainder below.
func SplitTitle(theme string) (top, bottom string) {
	words := strings.Fields(theme)
	switch {
	case len(words) == 0:
		return "", ""
	case len(words) <= 2:
		return strings.Join(words, " "), ""
	default:
		return strings.Join(words[:2], " "), strings.Join(words[2:], " ")
	}
}

// BuildTree assembles the complete layout tree for one flyer. Decorations are
// only composited on the generative path; the reference path overlays text on
// the preset's background asset. The logo may be nil, in which case the brand
// mark is omitted rather than failing the render.
func BuildTree(in domain.FlyerInput, plan RenderPlan, decorations []*Node, logo image.Image) *Node {
	if plan.Kind == PlanReference {
		return buildReferenceTree(in, plan)
	}
	return buildGenerativeTree(in, plan, decorations, logo)
}

func buildGenerativeTree(in domain.FlyerInput, plan RenderPlan, decorations []*Node, logo image.Image) *Node {
	style := plan.Style
	profile := plan.Profile

	root := box(0, 0, CanvasWidth, CanvasHeight)
	root.Gradient = &Gradient{From: style.GradientTop, To: style.GradientBottom}
	root.Children = append(root.Children, decorations...)

	root.Children = append(root.Children, headerRow(style, profile, logo)...)

	// Themed pill with a derived all-caps label; only when no preset chose
	// the styling for us.
	if in.PresetID == "" {
		root.Children = append(root.Children, kindBanner(style))
	}

	const margin = 90.0
	contentW := CanvasWidth - 2*margin
	align := profile.TitleAlign
	y := 280.0

	invite := text(style.InviteLine, margin, y, contentW)
	invite.Role = profile.Roles.Invite
	invite.Size = profile.InviteSize
	invite.Color = style.Accent2
	invite.Align = align
	root.Children = append(root.Children, invite)
	y += profile.InviteSize * 2.1

	top, bottom := SplitTitle(in.Theme)
	if profile.TitleUppercase {
		top = strings.ToUpper(top)
	}
	titleTop := text(top, margin, y, contentW)
	titleTop.Role = profile.Roles.Title
	titleTop.Size = profile.TitleSize
	titleTop.Bold = true
	titleTop.Color = style.TextColor
	titleTop.Align = align
	titleTop.LineHeight = 1.05
	root.Children = append(root.Children, titleTop)
	y += profile.TitleSize * 1.15

	if bottom != "" {
		titleBottom := text(bottom, margin, y, contentW)
		titleBottom.Role = profile.Roles.Title
		titleBottom.Size = profile.TitleSize * 0.92
		titleBottom.Bold = true
		titleBottom.Color = style.TextColor
		titleBottom.Align = align
		titleBottom.LineHeight = 1.05
		root.Children = append(root.Children, titleBottom)
		y += profile.TitleSize * 1.05
	}

	if tagline := strings.TrimSpace(in.Tagline); tagline != "" {
		tl := text(tagline, margin, y+10, contentW)
		tl.Role = profile.Roles.Tagline
		tl.Size = profile.TaglineSize
		tl.Align = align
		tl.Color = style.TextColor
		if profile.TaglineAccent {
			tl.Color = style.Accent
		}
		root.Children = append(root.Children, tl)
		y += profile.TaglineSize*1.6 + 10
	}

	y += 50
	root.Children = append(root.Children, dateRibbon(in.DateTimeText, style, profile, y))
	y += 130

	root.Children = append(root.Children, detailBlock(in, style, profile, y)...)

	closing := text("We can't wait to celebrate with you", margin, CanvasHeight-110, contentW)
	closing.Role = profile.Roles.Closing
	closing.Size = profile.ClosingSize
	closing.Italic = true
	closing.Color = style.Accent2
	closing.Align = AlignCenter
	root.Children = append(root.Children, closing)

	return root
}

func headerRow(style VisualStyle, profile LayoutProfile, logo image.Image) []*Node {
	var nodes []*Node
	labelX := 48.0
	if logo != nil {
		mark := &Node{Kind: NodeImage, X: 48, Y: 44, W: profile.BrandMarkSize, H: profile.BrandMarkSize, Image: logo}
		nodes = append(nodes, mark)
		labelX = 48 + profile.BrandMarkSize + 18
	}

	label := text(brandLabel, labelX, 58, 420)
	label.Role = RoleBody
	label.Size = 26
	label.Bold = true
	label.Color = style.TextColor
	nodes = append(nodes, label)

	sparkles := text(strings.Repeat(style.Sparkle+" ", 3), CanvasWidth-360, 58, 312)
	sparkles.Role = RoleBody
	sparkles.Size = 26
	sparkles.Color = style.Accent
	sparkles.Align = AlignRight
	nodes = append(nodes, sparkles)

	return nodes
}

func kindBanner(style VisualStyle) *Node {
	label := strings.ToUpper(strings.ReplaceAll(string(style.Kind), "_", " "))

	pill := box(CanvasWidth/2-200, 170, 400, 54)
	pill.Radius = 27
	pill.Fill = style.Panel
	pill.Stroke = style.Accent
	pill.StrokeWidth = 1.5

	t := text(label, CanvasWidth/2-200, 184, 400)
	t.Role = RoleBody
	t.Size = 24
	t.Bold = true
	t.Color = style.Accent
	t.Align = AlignCenter
	pill.Children = append(pill.Children, t)
	return pill
}

func dateRibbon(dateText string, style VisualStyle, profile LayoutProfile, y float64) *Node {
	var ribbon *Node
	if profile.RibbonBanner {
		ribbon = box(0, y, CanvasWidth, 84)
		ribbon.Fill = style.Accent + "2E"
	} else {
		ribbon = box(CanvasWidth/2-300, y, 600, 76)
		ribbon.Radius = 38
		ribbon.Fill = style.Panel
		ribbon.Stroke = style.Accent
		ribbon.StrokeWidth = 2
	}

	t := text(dateText, ribbon.X, y+24, ribbon.W)
	t.Role = profile.Roles.Ribbon
	t.Size = 30
	t.Bold = true
	t.Color = style.TextColor
	t.Align = AlignCenter
	ribbon.Children = append(ribbon.Children, t)
	return ribbon
}

func detailBlock(in domain.FlyerInput, style VisualStyle, profile LayoutProfile, y float64) []*Node {
	const margin = 90.0
	contentW := CanvasWidth - 2*margin

	row := func(label, value string) *Node {
		t := text(style.Motif+"  "+label+": "+value, margin, y, contentW)
		t.Role = profile.Roles.Detail
		t.Size = profile.DetailSize
		t.Color = style.TextColor
		t.Align = profile.DetailAlign
		return t
	}

	var nodes []*Node
	nodes = append(nodes, row("Location", in.Location))
	y += profile.DetailSize * 1.9

	if dress := strings.TrimSpace(in.DressCode); dress != "" {
		nodes = append(nodes, row("Dress Code", dress))
		y += profile.DetailSize * 1.9
	}
	if note := strings.TrimSpace(in.Note); note != "" {
		nodes = append(nodes, row("Note", note))
		y += profile.DetailSize * 1.9
	}
	if desc := strings.TrimSpace(in.Description); desc != "" {
		d := text(desc, margin, y+14, contentW)
		d.Role = profile.Roles.Detail
		d.Size = profile.DetailSize * 0.93
		d.Italic = true
		d.Color = style.Accent2
		d.Align = profile.DetailAlign
		nodes = append(nodes, d)
	}
	return nodes
}

func buildReferenceTree(in domain.FlyerInput, plan RenderPlan) *Node {
	cfg := plan.Reference

	root := box(0, 0, CanvasWidth, CanvasHeight)
	root.Fill = plan.Preset.Palette[0]

	if plan.Background != nil {
		bg := &Node{Kind: NodeImage, X: 0, Y: 0, W: CanvasWidth, H: CanvasHeight, Image: plan.Background}
		root.Children = append(root.Children, bg)
	}

	panelX := cfg.PanelX * CanvasWidth
	panelY := cfg.PanelY * CanvasHeight
	panelW := cfg.PanelW * CanvasWidth
	panelH := cfg.PanelH * CanvasHeight

	panel := box(panelX, panelY, panelW, panelH)
	panel.Radius = cfg.PanelRadius
	panel.Fill = cfg.PanelColor

	pad := 56.0
	innerX := panelX + pad
	innerW := panelW - 2*pad
	y := panelY + pad

	if tagline := strings.TrimSpace(in.Tagline); tagline != "" {
		tl := text(tagline, innerX, y, innerW)
		tl.Role = cfg.ScriptRole
		tl.Size = cfg.ScriptSize
		tl.Color = cfg.Accent
		tl.Align = AlignCenter
		panel.Children = append(panel.Children, tl)
		y += cfg.ScriptSize * 1.8
	}

	top, bottom := SplitTitle(in.Theme)
	title := top
	if bottom != "" {
		title = top + "\n" + bottom
	}
	if cfg.TitleUppercase {
		title = strings.ToUpper(title)
	}
	tt := text(title, innerX, y, innerW)
	tt.Role = cfg.TitleRole
	tt.Size = cfg.TitleSize
	tt.Bold = cfg.TitleBold
	tt.Color = cfg.Ink
	tt.Align = AlignCenter
	tt.LineHeight = 1.08
	panel.Children = append(panel.Children, tt)
	y += cfg.TitleSize * 1.15
	if bottom != "" {
		y += cfg.TitleSize * 1.1
	}

	line := func(s string, size float64, color string) {
		n := text(s, innerX, y, innerW)
		n.Role = RoleBody
		n.Size = size
		n.Color = color
		n.Align = AlignCenter
		panel.Children = append(panel.Children, n)
		y += size * 1.8
	}

	y += 16
	line(in.DateTimeText, cfg.DetailSize+2, cfg.Accent)
	line(in.Location, cfg.DetailSize, cfg.Ink)

	if desc := strings.TrimSpace(in.Description); desc != "" {
		d := text(desc, innerX, y+6, innerW)
		d.Role = RoleBody
		d.Size = cfg.DetailSize * 0.9
		d.Italic = true
		d.Color = cfg.Ink
		d.Align = AlignCenter
		panel.Children = append(panel.Children, d)
		y += cfg.DetailSize*0.9*2.2 + 6
	}

	var extras []string
	if dress := strings.TrimSpace(in.DressCode); dress != "" {
		extras = append(extras, "Dress: "+titleCaser.String(dress))
	}
	if note := strings.TrimSpace(in.Note); note != "" {
		extras = append(extras, note)
	}
	if len(extras) > 0 {
		line(strings.Join(extras, "  ·  "), cfg.DetailSize*0.85, cfg.Accent)
	}

	root.Children = append(root.Children, panel)
	return root
}
