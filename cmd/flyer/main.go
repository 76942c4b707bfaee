// Command flyer renders one flyer from the command line, for previewing
// presets and styles without the HTTP surface.
package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"server/internal/domain"
	"server/internal/flyer"
	"server/internal/infra"
)

func main() {
	var (
		theme    = flag.String("theme", "", "event theme (required)")
		date     = flag.String("date", "", "display date/time text (required)")
		location = flag.String("location", "", "event location (required)")
		dress    = flag.String("dress", "", "dress code")
		note     = flag.String("note", "", "note line")
		tagline  = flag.String("tagline", "", "tagline override")
		preset   = flag.String("preset", "", "reference preset id")
		template = flag.String("template", "elegant", "fallback template key")
		palette  = flag.String("palette", "", "comma-separated hex colors")
		outDir   = flag.String("out", ".", "output directory")
	)
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	if *theme == "" || *date == "" || *location == "" {
		logger.Fatal().Msg("-theme, -date, and -location are required")
	}

	in := domain.FlyerInput{
		TemplateKey:  domain.TemplateKey(*template),
		PresetID:     *preset,
		Theme:        *theme,
		DateTimeText: *date,
		Location:     *location,
		DressCode:    *dress,
		Note:         *note,
		Tagline:      *tagline,
	}
	if *palette != "" {
		for _, c := range strings.Split(*palette, ",") {
			in.Palette = append(in.Palette, strings.TrimSpace(c))
		}
	}

	engine := flyer.NewEngine(flyer.Options{
		Logger:   logger,
		Fonts:    &flyer.FontLoader{Dir: cfg.FontDir},
		AssetDir: cfg.AssetDir,
	})

	result, err := engine.Generate(context.Background(), in, domain.ModeClassic)
	if err != nil {
		logger.Fatal().Err(err).Msg("flyer generation failed")
	}

	pngPath := filepath.Join(*outDir, "flyer.png")
	pdfPath := filepath.Join(*outDir, "flyer.pdf")
	if err := os.WriteFile(pngPath, result.PNG, 0o644); err != nil {
		logger.Fatal().Err(err).Msg("failed to write png")
	}
	if err := os.WriteFile(pdfPath, result.PDF, 0o644); err != nil {
		logger.Fatal().Err(err).Msg("failed to write pdf")
	}
	logger.Info().Str("png", pngPath).Str("pdf", pdfPath).Msg("flyer rendered")
}
