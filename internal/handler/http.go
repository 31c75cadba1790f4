package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/MikhailRaia/slugid"
	"github.com/MikhailRaia/slugid/internal/logger"
	"github.com/MikhailRaia/slugid/internal/middleware"
	"github.com/MikhailRaia/slugid/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type SlugService interface {
	Generate(ctx context.Context, mode slugid.Mode) (string, error)
	GenerateBatch(ctx context.Context, mode slugid.Mode, count int) ([]string, error)
}

type Handler struct {
	slugService    SlugService
	authMiddleware *middleware.AuthMiddleware
}

// NewHandler creates a Handler. A nil authMiddleware leaves the API open.
func NewHandler(slugService SlugService, authMiddleware *middleware.AuthMiddleware) *Handler {
	return &Handler{
		slugService:    slugService,
		authMiddleware: authMiddleware,
	}
}

func (h *Handler) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Use(logger.RequestLogger)

	r.Use(middleware.GzipReader)
	r.Use(middleware.GzipMiddleware)

	r.Get("/ping", h.handlePing)

	r.Group(func(r chi.Router) {
		if h.authMiddleware != nil {
			r.Use(h.authMiddleware.RequireAuth)
		}

		r.Get("/v4", h.handleSingle(slugid.ModeV4))
		r.Get("/nice", h.handleSingle(slugid.ModeNice))
		r.Get("/api/slugids", h.handleList)
		r.Post("/api/slugids/batch", h.HandleBatchJSON)
	})

	return r
}

func (h *Handler) handleSingle(mode slugid.Mode) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := h.slugService.Generate(r.Context(), mode)
		if err != nil {
			writeError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/plain")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(id))
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	mode, err := slugid.ParseMode(query.Get("mode"))
	if err != nil {
		writeError(w, err)
		return
	}

	count := 1
	if raw := query.Get("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	h.writeBatch(w, r, mode, count, http.StatusOK)
}

func (h *Handler) handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// writeError reports err to the client. Validation errors carry their message;
// generation failures never expose a body.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusBadRequest {
		http.Error(w, err.Error(), status)
		return
	}
	w.WriteHeader(status)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, slugid.ErrUnknownMode), errors.Is(err, service.ErrInvalidCount):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
