package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"hospitalinventory/m/internal/auth"
	"hospitalinventory/m/internal/images"
	"hospitalinventory/m/internal/logging"
	"hospitalinventory/m/internal/store"
)

// Handler bundles dependencies for HTTP handlers.
type Handler struct {
	store       *store.Store
	auth        *auth.Service
	images      images.Store
	log         logging.Logger
	corsOrigins []string
}

// New constructs a Handler.
func New(st *store.Store, authSvc *auth.Service, imgs images.Store, log logging.Logger, corsOrigins []string) *Handler {
	return &Handler{store: st, auth: authSvc, images: imgs, log: log, corsOrigins: corsOrigins}
}

// Router wires up the HTTP API.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.health)

	r.Post("/signup", h.signup)
	r.Get("/uploads/{filename}", h.serveUpload)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", h.login)

		r.Route("/resources", func(r chi.Router) {
			r.Get("/", h.listResources)
			r.Post("/", h.createResource)
			r.Get("/{id}", h.getResource)
			r.Put("/{id}", h.updateResource)
			r.Delete("/{id}", h.deleteResource)
			r.Get("/{id}/assets", h.listAssets)
			r.Post("/{id}/assets", h.createAsset)
		})

		r.Route("/assets", func(r chi.Router) {
			r.Get("/{id}", h.getAsset)
			r.Put("/{id}", h.updateAsset)
			r.Delete("/{id}", h.deleteAsset)
		})
		r.Get("/deleted-assets", h.listDeletedAssets)

		r.Get("/total-assets", h.totalAssets)
		r.Get("/total-resources", h.totalResources)
		r.Get("/asset-timeline", h.assetTimeline)
		r.Get("/dashboard/low-stock", h.lowStock)
		r.Get("/recent-updates", h.recentUpdates)
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/types", h.reportTypes)
		r.Get("/preview", h.previewReport)
		r.Get("/download", h.downloadReport)
	})

	r.Route("/assets", func(r chi.Router) {
		r.Get("/search", h.searchAssets)
		r.Get("/download", h.downloadAssetSearch)
	})

	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func requestLogger(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info(r.Context(), "http request",
					"request_id", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// Helpers

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// serverError logs err and answers 500 with a message safe for clients.
func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, message string, err error) {
	h.log.Error(r.Context(), message, "error", err, "request_id", middleware.GetReqID(r.Context()))
	respondError(w, http.StatusInternalServerError, message)
}

func decodeJSON(r *http.Request, dest interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dest)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
