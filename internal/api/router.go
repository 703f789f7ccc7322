package api

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "museum-guide/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterOptions carries the deployment-specific parts of the router.
type RouterOptions struct {
	AllowedOrigins []string
	// StaticDir, when set, is served at "/" (the built front end).
	StaticDir string
}

// NewRouter creates the chi router with every route of the chat proxy.
func NewRouter(chatHandler *ChatHandler, modelHandler *ModelHandler, statusHandler *StatusHandler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	// Liveness probe for container orchestration; /api/health is the
	// richer endpoint the front end uses.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		// No timeout here: the outbound completion call has none either.
		r.Post("/chat", chatHandler.HandleChat)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(10 * time.Second))

			r.Get("/models", modelHandler.HandleListModels)
			r.Post("/model", modelHandler.HandleSelectModel)
			r.Get("/health", statusHandler.HandleHealth)
			r.Get("/config", statusHandler.HandleConfig)
		})
	})

	if opts.StaticDir != "" {
		if info, err := os.Stat(opts.StaticDir); err != nil || !info.IsDir() {
			slog.Warn("Static directory not usable, front end will not be served", "dir", opts.StaticDir, "error", err)
		} else {
			r.Handle("/*", spaFileServer(opts.StaticDir))
		}
	}

	return r
}

// spaFileServer serves files from dir and answers index.html for any path
// with no matching file, so client-side routes survive a reload.
func spaFileServer(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		if _, err := os.Stat(name); err != nil {
			http.ServeFile(w, r, filepath.Join(dir, "index.html"))
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}
