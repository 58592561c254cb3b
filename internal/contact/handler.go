// AngelaMos | 2026
// handler.go

package contact

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/templates/contacts-api/internal/core"
	"github.com/carterperez-dev/templates/contacts-api/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/contacts", func(r chi.Router) {
		r.Use(authenticator)

		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Patch("/{id}/favorite", h.UpdateFavorite)
		r.Delete("/{id}", h.Delete)
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserID(r.Context())
	if owner == "" {
		core.Unauthorized(w, "")
		return
	}

	params, err := parseListParams(r)
	if err != nil {
		core.BadRequest(w, err.Error())
		return
	}

	contacts, total, err := h.service.List(r.Context(), owner, params)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	params.Normalize()
	core.Paginated(w, ToContactResponses(contacts), params.Page, params.Limit, total)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	c, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, ToContactResponse(c))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	owner := middleware.GetUserID(r.Context())
	if owner == "" {
		core.Unauthorized(w, "")
		return
	}

	var req ContactRequest
	if !h.decode(w, r, &req) {
		return
	}

	c, err := h.service.Create(r.Context(), owner, req)
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.Created(w, ToContactResponse(c))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	var req ContactRequest
	if !h.decode(w, r, &req) {
		return
	}

	c, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, ToContactResponse(c))
}

func (h *Handler) UpdateFavorite(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	var req UpdateFavoriteRequest
	if !h.decode(w, r, &req) {
		return
	}

	c, err := h.service.UpdateFavorite(r.Context(), id, *req.Favorite)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, ToContactResponse(c))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := contactID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	core.OK(w, MessageResponse{Message: "contact deleted"})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		core.BadRequest(w, "invalid request body")
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		core.JSONError(w, core.ValidationError(core.FormatValidationError(err)))
		return false
	}

	return true
}

func contactID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, err := ParseID(chi.URLParam(r, "id"))
	if err != nil {
		core.BadRequest(w, "invalid contact id")
		return "", false
	}
	return id, true
}

func parseListParams(r *http.Request) (ListParams, error) {
	q := r.URL.Query()
	var params ListParams

	if v := q.Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return params, errors.New("page must be an integer")
		}
		params.Page = page
	}

	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			return params, errors.New("limit must be an integer")
		}
		params.Limit = limit
	}

	if v := q.Get("favorite"); v != "" {
		favorite, err := strconv.ParseBool(v)
		if err != nil {
			return params, errors.New("favorite must be a boolean")
		}
		params.Favorite = &favorite
	}

	return params, nil
}

func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, core.ErrNotFound) {
		core.NotFound(w, "Not found")
		return
	}
	core.InternalServerError(w, err)
}
