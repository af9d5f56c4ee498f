// Package transport exposes the cafe resources over HTTP.
package transport

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KianJanloo/burger-cafe-back/internal/middleware"
	"github.com/KianJanloo/burger-cafe-back/internal/repository"
	"github.com/KianJanloo/burger-cafe-back/internal/service"
)

// resourceService is the CRUD surface every cafe service offers.
type resourceService[T, C, P any] interface {
	Create(ctx context.Context, cmd C) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Update(ctx context.Context, id int64, patch P) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// resourceHandler serves create, list, get, update and delete for one
// resource. Handlers with extra endpoints embed it.
type resourceHandler[T, C, P any] struct {
	svc    resourceService[T, C, P]
	name   string
	logger *zap.Logger
}

func newResourceHandler[T, C, P any](svc resourceService[T, C, P], name string, logger *zap.Logger) resourceHandler[T, C, P] {
	return resourceHandler[T, C, P]{svc: svc, name: name, logger: logger}
}

// routes mounts the CRUD endpoints on r. A non-nil list replaces the plain
// listing, for resources that take query filters.
func (h resourceHandler[T, C, P]) routes(r chi.Router, list http.HandlerFunc) {
	if list == nil {
		list = h.list
	}
	r.Post("/", h.create)
	r.Get("/", list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.remove)
}

func (h resourceHandler[T, C, P]) create(w http.ResponseWriter, r *http.Request) {
	var cmd C
	if !decodeBody(w, r, h.logger, &cmd) {
		return
	}

	record, err := h.svc.Create(r.Context(), cmd)
	if err != nil {
		respondError(w, h.logger, err, "failed to create "+h.name)
		return
	}
	middleware.RespondWithJSON(w, http.StatusCreated, record)
}

func (h resourceHandler[T, C, P]) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	respondList(w, h.logger, records, err, h.name)
}

func (h resourceHandler[T, C, P]) get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	record, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.logger, err, "failed to get "+h.name)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, record)
}

func (h resourceHandler[T, C, P]) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	var patch P
	if !decodeBody(w, r, h.logger, &patch) {
		return
	}

	record, err := h.svc.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, h.logger, err, "failed to update "+h.name)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, record)
}

func (h resourceHandler[T, C, P]) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, h.logger, err, "failed to delete "+h.name)
		return
	}
	middleware.RespondWithMessage(w, capitalize(h.name)+" deleted successfully")
}

func respondList[T any](w http.ResponseWriter, logger *zap.Logger, records []*T, err error, name string) {
	if err != nil {
		respondError(w, logger, err, "failed to list "+name)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, records)
}

// respondError maps service and storage errors onto the error envelope.
func respondError(w http.ResponseWriter, logger *zap.Logger, err error, message string) {
	var notFound *repository.NotFoundError
	switch {
	case errors.As(err, &notFound):
		middleware.RespondWithError(w, http.StatusNotFound, notFound.Error())
	case errors.Is(err, repository.ErrNotFound):
		middleware.RespondWithError(w, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrInvalidStatus):
		middleware.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		logger.Error(message, zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, message)
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *zap.Logger, v any) bool {
	err := middleware.DecodeAndValidate(r, v)
	if err == nil {
		return true
	}
	logger.Debug("Request validation failed", zap.String("path", r.URL.Path), zap.Error(err))

	if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
		middleware.RespondWithValidationErrors(w, validationErrors)
		return false
	}
	middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
	return false
}

func parseID(w http.ResponseWriter, r *http.Request, param string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id < 1 {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid "+param)
		return 0, false
	}
	return id, true
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
