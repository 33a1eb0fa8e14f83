package profile

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pmalmgren/constgeneric-field-limits/pkg/binder"
	"github.com/pmalmgren/constgeneric-field-limits/pkg/logger"
	"github.com/pmalmgren/constgeneric-field-limits/pkg/validator"
)

type storage interface {
	Create(ctx context.Context, p Profile) error
	Get(ctx context.Context, id uuid.UUID) (Profile, error)
	GetByHandle(ctx context.Context, handle Handle) (Profile, error)
	List(ctx context.Context, limit int) ([]Profile, error)
}

// CreateRequest is accepted as JSON or form data.
type CreateRequest struct {
	Handle      Handle      `json:"handle"       form:"handle"`
	DisplayName DisplayName `json:"display_name" form:"display_name"`
	Bio         Bio         `json:"bio"          form:"bio"`
}

// Validate reports the fields a valid request must carry. Lengths are
// already enforced by the field types.
func (r CreateRequest) Validate() error {
	return validator.Apply(
		validator.Required("handle", r.Handle.String()),
		validator.Required("display_name", r.DisplayName.String()),
	)
}

type listRequest struct {
	Limit  int     `query:"limit"`
	Handle *Handle `query:"handle"`
}

type listResponse struct {
	Profiles []Profile `json:"profiles"`
}

// Handler serves the profile HTTP API.
type Handler struct {
	store storage
	log   *slog.Logger

	bindJSON  func(*http.Request, any) error
	bindForm  func(*http.Request, any) error
	bindQuery func(*http.Request, any) error
}

func NewHandler(store storage, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{
		store:     store,
		log:       log.With(slog.String("component", "profile")),
		bindJSON:  binder.JSON(),
		bindForm:  binder.Form(),
		bindQuery: binder.Query(),
	}
}

// Router mounts the profile routes.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	return r
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := h.bindBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		h.writeError(w, r, err)
		return
	}

	p := New(req.Handle, req.DisplayName, req.Bio)
	if err := h.store.Create(r.Context(), p); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "profile created", slog.Any("profile", p))
	h.writeJSON(w, r, http.StatusCreated, p)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, errNotFound)
		return
	}

	p, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, p)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := h.bindQuery(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if req.Handle != nil {
		p, err := h.store.GetByHandle(r.Context(), *req.Handle)
		switch {
		case errors.Is(err, ErrNotFound):
			h.writeJSON(w, r, http.StatusOK, listResponse{Profiles: []Profile{}})
		case err != nil:
			h.writeError(w, r, err)
		default:
			h.writeJSON(w, r, http.StatusOK, listResponse{Profiles: []Profile{p}})
		}
		return
	}

	profiles, err := h.store.List(r.Context(), req.Limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, listResponse{Profiles: profiles})
}

func (h *Handler) bindBody(r *http.Request, v any) error {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return h.bindForm(r, v)
	default:
		return h.bindJSON(r, v)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{}
	herr := classify(err)
	resp.Error = herr.Key

	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		resp.Fields = verrs.Map()
		h.log.WarnContext(r.Context(), "request rejected", logger.Validation(verrs))
	} else if herr.Code >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	} else {
		h.log.WarnContext(r.Context(), "request rejected", logger.Error(err))
	}

	h.writeJSON(w, r, herr.Code, resp)
}

func classify(err error) httpError {
	var herr httpError
	switch {
	case errors.As(err, &herr):
		return herr
	case validator.IsValidationError(err):
		return errUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return errNotFound
	case errors.Is(err, ErrHandleTaken):
		return errConflict
	case errors.Is(err, binder.ErrUnsupportedMediaType),
		errors.Is(err, binder.ErrMissingContentType):
		return errUnsupportedMediaType
	case errors.Is(err, binder.ErrFailedToParseJSON),
		errors.Is(err, binder.ErrFailedToParseForm),
		errors.Is(err, binder.ErrFailedToParseQuery),
		errors.Is(err, binder.ErrInvalidTarget):
		return errBadRequest
	default:
		return errInternal
	}
}
