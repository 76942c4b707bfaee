package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"server/internal/domain"
	"server/pkg/zip"
)

type generateFlyerRequest struct {
	domain.FlyerInput
	Mode string `json:"mode"`
}

type generateFlyerResponse struct {
	PNGURL      string `json:"png_url"`
	PDFURL      string `json:"pdf_url"`
	BundleURL   string `json:"bundle_url,omitempty"`
	Description string `json:"description"`
	Tagline     string `json:"tagline"`
}

// GenerateFlyer renders one flyer and persists both artifacts. Input
// validation happens here, before any rendering work; the engine assumes a
// well-formed FlyerInput.
func (a *App) GenerateFlyer(w http.ResponseWriter, r *http.Request) {
	var req generateFlyerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Theme) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "theme is required")
		return
	}
	if strings.TrimSpace(req.DateTimeText) == "" || strings.TrimSpace(req.Location) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "date_time_text and location are required")
		return
	}

	mode := domain.Mode(req.Mode)
	if mode != domain.ModeAIPoster {
		mode = domain.ModeClassic
	}

	result, err := a.Engine.Generate(r.Context(), req.FlyerInput, mode)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			a.error(w, http.StatusBadRequest, "bad_request", err.Error())
			return
		}
		a.Log.Error().Err(err).Msg("flyer generation failed")
		a.error(w, http.StatusInternalServerError, "internal", "flyer generation failed")
		return
	}

	// Unique filename suffixes live here at the storage boundary; the render
	// itself stays deterministic.
	base := fmt.Sprintf("flyers/%s-%s", slugify(req.Theme), uuid.NewString()[:8])
	pngKey, err := a.Store.Write(r.Context(), base+".png", result.PNG)
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to store flyer png")
		a.error(w, http.StatusInternalServerError, "internal", "failed to store flyer")
		return
	}
	pdfKey, err := a.Store.Write(r.Context(), base+".pdf", result.PDF)
	if err != nil {
		a.Log.Error().Err(err).Msg("failed to store flyer pdf")
		a.error(w, http.StatusInternalServerError, "internal", "failed to store flyer")
		return
	}

	// The bundle is convenience output; a failure there does not void the
	// individual artifacts.
	var bundleURL string
	bundle, err := zip.Archive([]zip.Artifact{
		{Name: slugify(req.Theme) + ".png", Data: result.PNG},
		{Name: slugify(req.Theme) + ".pdf", Data: result.PDF},
	})
	if err == nil {
		if zipKey, err := a.Store.Write(r.Context(), base+".zip", bundle); err == nil {
			bundleURL = a.Store.URL(zipKey)
		} else {
			a.Log.Warn().Err(err).Msg("failed to store flyer bundle")
		}
	}

	a.json(w, http.StatusOK, generateFlyerResponse{
		PNGURL:      a.Store.URL(pngKey),
		PDFURL:      a.Store.URL(pdfKey),
		BundleURL:   bundleURL,
		Description: req.Description,
		Tagline:     req.Tagline,
	})
}

// GenerateCopy returns flyer copy only: the external supplier when available,
// the local generator otherwise. It cannot fail for a non-empty theme.
func (a *App) GenerateCopy(w http.ResponseWriter, r *http.Request) {
	var req domain.CopyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if strings.TrimSpace(req.Theme) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "theme is required")
		return
	}

	if a.Copy != nil {
		if result, err := a.Copy.Compose(r.Context(), req); err == nil {
			a.json(w, http.StatusOK, result)
			return
		} else {
			a.Log.Debug().Err(err).Msg("copy supplier failed, using local generator")
		}
	}
	a.json(w, http.StatusOK, a.Copywriter.Generate(req))
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := true
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "flyer"
	}
	if len(out) > 48 {
		out = out[:48]
	}
	return out
}
