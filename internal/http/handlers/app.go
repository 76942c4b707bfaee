package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"server/internal/copywriter"
	"server/internal/flyer"
	"server/internal/storage"
)

// App bundles the dependencies shared by all handlers.
type App struct {
	Log        zerolog.Logger
	Engine     *flyer.Engine
	Store      *storage.FileStore
	Copy       flyer.CopySupplier
	Copywriter *copywriter.Generator
}

func NewApp(log zerolog.Logger, engine *flyer.Engine, store *storage.FileStore, copySupplier flyer.CopySupplier) *App {
	return &App{
		Log:        log,
		Engine:     engine,
		Store:      store,
		Copy:       copySupplier,
		Copywriter: copywriter.New(),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, kind, message string) {
	a.json(w, code, map[string]string{"error": kind, "message": message})
}
