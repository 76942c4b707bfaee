package flyer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"server/internal/copywriter"
	"server/internal/domain"
)

// CopySupplier is the external copy source consumed by the orchestrator. Any
// error is treated as total failure and routed to the local copy generator.
type CopySupplier interface {
	Compose(ctx context.Context, req domain.CopyRequest) (*domain.CopyResult, error)
}

// ArtworkSupplier produces a complete poster image for ai_poster mode. Any
// error routes the request back through the classic render path.
type ArtworkSupplier interface {
	Render(ctx context.Context, req domain.ArtworkRequest) ([]byte, error)
}

// Options wires an Engine. Copy and Artwork are optional; without them the
// engine runs entirely on local copy and classic rendering.
type Options struct {
	Logger   zerolog.Logger
	Copy     CopySupplier
	Artwork  ArtworkSupplier
	Fonts    *FontLoader
	AssetDir string
}

// Engine is the flyer generation orchestrator. It is stateless across calls;
// the only shared resource is the memoized font set, which is read-only after
// first population.
type Engine struct {
	log      zerolog.Logger
	copy     CopySupplier
	artwork  ArtworkSupplier
	fonts    *FontLoader
	local    *copywriter.Generator
	assetDir string
}

func NewEngine(opts Options) *Engine {
	fonts := opts.Fonts
	if fonts == nil {
		fonts = &FontLoader{}
	}
	return &Engine{
		log:      opts.Logger,
		copy:     opts.Copy,
		artwork:  opts.Artwork,
		fonts:    fonts,
		local:    copywriter.New(),
		assetDir: opts.AssetDir,
	}
}

// Generate runs one flyer render. Classic mode always uses the local layout
// pipeline; ai_poster mode tries the artwork supplier first and transparently
// falls back to classic on any failure. The caller receives either a complete
// result or a configuration error, never a partial render.
func (e *Engine) Generate(ctx context.Context, in domain.FlyerInput, mode domain.Mode) (*domain.RenderedFlyer, error) {
	if strings.TrimSpace(in.Theme) == "" {
		return nil, fmt.Errorf("%w: theme is required", domain.ErrInvalidInput)
	}

	in = e.resolveCopy(ctx, in)

	if mode == domain.ModeAIPoster && e.artwork != nil {
		if out, err := e.renderAIPoster(ctx, in); err == nil {
			return out, nil
		} else {
			e.log.Warn().Err(err).Msg("artwork supplier failed, falling back to classic render")
		}
	}

	return e.renderClassic(in)
}

// resolveCopy fills description, tagline, and palette when any are missing:
// first from the copy supplier, then from the local generator, which never
// fails. Fields the caller already supplied are kept.
func (e *Engine) resolveCopy(ctx context.Context, in domain.FlyerInput) domain.FlyerInput {
	if in.Description != "" && in.Tagline != "" && len(in.Palette) >= 3 {
		return in
	}

	req := domain.CopyRequest{Theme: in.Theme, DressCode: in.DressCode, Note: in.Note}

	var result *domain.CopyResult
	if e.copy != nil {
		if r, err := e.copy.Compose(ctx, req); err == nil {
			result = r
		} else {
			e.log.Debug().Err(err).Msg("copy supplier failed, using local generator")
		}
	}
	if result == nil {
		result = e.local.Generate(req)
	}

	if in.Description == "" {
		in.Description = result.Description
	}
	if in.Tagline == "" && len(result.Taglines) > 0 {
		in.Tagline = result.Taglines[0]
	}
	if len(in.Palette) < 3 && in.PresetID == "" && len(result.Palette) >= 3 {
		in.Palette = result.Palette
	}
	return in
}

func (e *Engine) renderClassic(in domain.FlyerInput) (*domain.RenderedFlyer, error) {
	plan := e.resolvePlan(in)

	var decorations []*Node
	if plan.Kind == PlanGenerative {
		decorations = BuildDecorations(plan.Style.Kind, CanvasWidth, CanvasHeight, plan.Style)
	}

	tree := BuildTree(in, plan, decorations, e.loadLogo())

	fonts, err := e.fonts.Load()
	if err != nil {
		return nil, err
	}

	pngData, err := Rasterize(tree, fonts)
	if err != nil {
		return nil, err
	}
	pdfData, err := PackagePDF(pngData)
	if err != nil {
		return nil, err
	}
	return &domain.RenderedFlyer{PNG: pngData, PDF: pdfData}, nil
}

// resolvePlan picks exactly one rendering path as a pure function of the
// preset id. A recognized preset whose background asset cannot be read falls
// back to the generative path: a flyer without a background is not acceptable
// output.
func (e *Engine) resolvePlan(in domain.FlyerInput) RenderPlan {
	if in.PresetID != "" {
		if preset, ok := PresetByID(in.PresetID); ok {
			if cfg, ok := ReferenceConfigFor(in.PresetID); ok {
				if bg, err := e.loadBackground(preset); err == nil {
					return RenderPlan{
						Kind:       PlanReference,
						Preset:     preset,
						Reference:  cfg,
						Background: bg,
					}
				} else {
					e.log.Warn().Err(err).Str("preset", preset.ID).
						Msg("preset background unavailable, using generative path")
				}
			}
		} else {
			e.log.Debug().Str("preset", in.PresetID).Msg("unrecognized preset id, using generative path")
		}
	}

	style := SelectStyle(in)
	return RenderPlan{
		Kind:    PlanGenerative,
		Style:   style,
		Profile: ProfileFor(style.Kind),
	}
}

func (e *Engine) loadBackground(preset Preset) (image.Image, error) {
	if e.assetDir == "" {
		return nil, fmt.Errorf("no asset directory configured")
	}
	img, err := imaging.Open(filepath.Join(e.assetDir, filepath.FromSlash(preset.Background)))
	if err != nil {
		return nil, fmt.Errorf("open background for %s: %w", preset.ID, err)
	}
	return imaging.Fill(img, CanvasWidth, CanvasHeight, imaging.Center, imaging.Lanczos), nil
}

// loadLogo returns the brand mark or nil; a missing logo omits the mark
// rather than failing the render.
func (e *Engine) loadLogo() image.Image {
	if e.assetDir == "" {
		return nil
	}
	img, err := imaging.Open(filepath.Join(e.assetDir, "logo.png"))
	if err != nil {
		return nil
	}
	return imaging.Fit(img, 96, 96, imaging.Lanczos)
}

// renderAIPoster sends the event fields to the artwork supplier and packages
// the returned image at canvas size.
func (e *Engine) renderAIPoster(ctx context.Context, in domain.FlyerInput) (*domain.RenderedFlyer, error) {
	raw, err := e.artwork.Render(ctx, domain.ArtworkRequest{
		Theme:        in.Theme,
		DateTimeText: in.DateTimeText,
		Location:     in.Location,
		DressCode:    in.DressCode,
		Note:         in.Note,
		Tagline:      in.Tagline,
		Description:  in.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrProviderFailure, err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: decode artwork: %v", domain.ErrProviderFailure, err)
	}
	fitted := imaging.Fill(img, CanvasWidth, CanvasHeight, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, fitted, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: encode artwork: %v", domain.ErrProviderFailure, err)
	}

	pdfData, err := PackagePDF(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return &domain.RenderedFlyer{PNG: buf.Bytes(), PDF: pdfData}, nil
}
