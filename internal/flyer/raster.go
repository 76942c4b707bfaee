package flyer

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
)

// Rasterize renders a layout tree to a 1080x1350 RGBA PNG. The tree's node
// coordinates are already in output pixels; there is no scale step. A nil
// font set is a configuration failure, not a degradable condition.
func Rasterize(root *Node, fonts *FontSet) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("rasterize: nil layout tree")
	}
	if fonts == nil {
		return nil, fmt.Errorf("rasterize: no font set")
	}

	dc := gg.NewContext(CanvasWidth, CanvasHeight)
	if err := drawNode(dc, root, fonts); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("rasterize: encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawNode(dc *gg.Context, n *Node, fonts *FontSet) error {
	if n == nil {
		return nil
	}

	rotated := n.Rotation != 0
	if rotated {
		dc.Push()
		dc.RotateAbout(gg.Radians(n.Rotation), n.X+n.W/2, n.Y+n.H/2)
	}

	switch n.Kind {
	case NodeBox:
		drawBox(dc, n)
	case NodeText:
		if err := drawText(dc, n, fonts); err != nil {
			if rotated {
				dc.Pop()
			}
			return err
		}
	case NodeImage:
		if n.Image != nil {
			dc.DrawImage(n.Image, int(n.X), int(n.Y))
		}
	}

	if rotated {
		dc.Pop()
	}

	for _, c := range n.Children {
		if err := drawNode(dc, c, fonts); err != nil {
			return err
		}
	}
	return nil
}

func drawBox(dc *gg.Context, n *Node) {
	tracePath := func() {
		switch n.Shape {
		case ShapeEllipse:
			dc.DrawEllipse(n.X+n.W/2, n.Y+n.H/2, n.W/2, n.H/2)
		default:
			if n.Radius > 0 {
				dc.DrawRoundedRectangle(n.X, n.Y, n.W, n.H, n.Radius)
			} else {
				dc.DrawRectangle(n.X, n.Y, n.W, n.H)
			}
		}
	}

	if n.Gradient != nil {
		grad := gg.NewLinearGradient(n.X, n.Y, n.X, n.Y+n.H)
		grad.AddColorStop(0, hexColor(n.Gradient.From))
		grad.AddColorStop(1, hexColor(n.Gradient.To))
		dc.SetFillStyle(grad)
		tracePath()
		dc.Fill()
	} else if n.Fill != "" {
		dc.SetColor(hexColor(n.Fill))
		tracePath()
		dc.Fill()
	}

	if n.Stroke != "" && n.StrokeWidth > 0 {
		dc.SetColor(hexColor(n.Stroke))
		dc.SetLineWidth(n.StrokeWidth)
		if len(n.Dash) > 0 {
			dc.SetDash(n.Dash...)
		}
		tracePath()
		dc.Stroke()
		if len(n.Dash) > 0 {
			dc.SetDash()
		}
	}
}

func drawText(dc *gg.Context, n *Node, fonts *FontSet) error {
	if n.Text == "" {
		return nil
	}
	face, err := fonts.Face(n.Role, n.Size, n.Bold, n.Italic)
	if err != nil {
		return fmt.Errorf("rasterize: face for %s@%.0f: %w", n.Role, n.Size, err)
	}
	dc.SetFontFace(face)
	dc.SetColor(hexColor(n.Color))

	lineSpacing := n.LineHeight
	if lineSpacing <= 0 {
		lineSpacing = 1.3
	}

	var anchorX, ax float64
	var align gg.Align
	switch n.Align {
	case AlignCenter:
		anchorX, ax, align = n.X+n.W/2, 0.5, gg.AlignCenter
	case AlignRight:
		anchorX, ax, align = n.X+n.W, 1, gg.AlignRight
	default:
		anchorX, ax, align = n.X, 0, gg.AlignLeft
	}

	dc.DrawStringWrapped(n.Text, anchorX, n.Y, ax, 0, n.W, lineSpacing, align)
	return nil
}

// hexColor parses #RGB, #RRGGBB, and #RRGGBBAA strings. Unparseable input
// renders as opaque black rather than failing the whole raster pass.
func hexColor(s string) color.Color {
	if s == "" {
		return color.NRGBA{0, 0, 0, 255}
	}
	alpha := uint8(255)
	raw := s
	if len(raw) > 0 && raw[0] == '#' {
		raw = raw[1:]
	}
	if len(raw) == 8 {
		var a uint8
		if _, err := fmt.Sscanf(raw[6:8], "%02x", &a); err == nil {
			alpha = a
		}
		raw = raw[:6]
	}
	r, g, b, err := parseHex(raw)
	if err != nil {
		return color.NRGBA{0, 0, 0, 255}
	}
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}
