package hotel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stayview/reviews-api/internal/httputil"
	"github.com/stayview/reviews-api/internal/logging"
)

// Handler contains HTTP handlers for the hotel catalog
type Handler struct {
	service *Service
	logger  *logging.Logger
}

func NewHandler(service *Service, logger *logging.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateRequest represents the hotel creation request body. Price and rooms
// are derived server-side from the star rating.
type CreateRequest struct {
	Name             string `json:"name"`
	Description      string `json:"description"`
	Address          string `json:"address"`
	Stars            int    `json:"stars"`
	PostalCode       string `json:"postal_code"`
	Municipality     string `json:"municipality"`
	MunicipalityCode string `json:"municipality_code"`
	Territory        string `json:"territory"`
	TerritoryCode    string `json:"territory_code"`
}

// UpdateRequest represents a partial hotel update; omitted fields are left
// unchanged.
type UpdateRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	Address          *string `json:"address"`
	Stars            *int    `json:"stars"`
	PostalCode       *string `json:"postal_code"`
	Municipality     *string `json:"municipality"`
	MunicipalityCode *string `json:"municipality_code"`
	Territory        *string `json:"territory"`
	TerritoryCode    *string `json:"territory_code"`
}

// Create handles hotel creation
// @Summary      Create a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRequest true "Hotel data"
// @Success      201 {object} Hotel
// @Failure      400 {object} httputil.ErrorResponse "Invalid body or validation failure"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /hotels [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid hotel request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), CreateInput{
		Name:             req.Name,
		Description:      req.Description,
		Address:          req.Address,
		Stars:            req.Stars,
		PostalCode:       req.PostalCode,
		Municipality:     req.Municipality,
		MunicipalityCode: req.MunicipalityCode,
		Territory:        req.Territory,
		TerritoryCode:    req.TerritoryCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNameRequired), errors.Is(err, ErrInvalidStars):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeValidationFailed, http.StatusBadRequest)
		default:
			logger.Error("hotel creation failed", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to create hotel", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	logger.Info("hotel created", "hotel_id", created.ID, "stars", created.Stars)

	httputil.RespondJSON(w, created, http.StatusCreated)
}

// Update handles partial hotel updates
// @Summary      Update a hotel
// @Tags         hotels
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Hotel ID"
// @Param        request body UpdateRequest true "Fields to update"
// @Success      200 {object} Hotel
// @Failure      400 {object} httputil.ErrorResponse "Invalid body or validation failure"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Failure      404 {object} httputil.ErrorResponse "Hotel not found"
// @Router       /hotels/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid hotel id", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid hotel request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), id, UpdateInput{
		Name:             req.Name,
		Description:      req.Description,
		Address:          req.Address,
		Stars:            req.Stars,
		PostalCode:       req.PostalCode,
		Municipality:     req.Municipality,
		MunicipalityCode: req.MunicipalityCode,
		Territory:        req.Territory,
		TerritoryCode:    req.TerritoryCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			httputil.RespondErrorWithCode(w, "hotel not found", httputil.CodeNotFound, http.StatusNotFound)
		case errors.Is(err, ErrInvalidStars):
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeValidationFailed, http.StatusBadRequest)
		default:
			logger.Error("hotel update failed", "error", err.Error(), "hotel_id", id)
			httputil.RespondErrorWithCode(w, "failed to update hotel", httputil.CodeInternalError, http.StatusInternalServerError)
		}
		return
	}

	httputil.RespondJSON(w, updated, http.StatusOK)
}

// Get handles hotel lookup by id
// @Summary      Get hotel by id
// @Tags         hotels
// @Produce      json
// @Param        id path int true "Hotel ID"
// @Success      200 {object} Hotel
// @Failure      404 {object} httputil.ErrorResponse "Hotel not found"
// @Router       /hotels/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid hotel id", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	found, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "hotel not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to load hotel", "error", err.Error(), "hotel_id", id)
		httputil.RespondErrorWithCode(w, "failed to load hotel", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, found, http.StatusOK)
}

// List handles full catalog listing
// @Summary      List hotels
// @Tags         hotels
// @Produce      json
// @Success      200 {array} Hotel
// @Router       /hotels [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	hotels, err := h.service.List(r.Context())
	if err != nil {
		logger.Error("failed to list hotels", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list hotels", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, hotels, http.StatusOK)
}

// ListByMunicipalityCode handles listing hotels by municipality code
// @Summary      List hotels by municipality code
// @Tags         hotels
// @Produce      json
// @Param        code path string true "Municipality code"
// @Success      200 {array} Hotel
// @Failure      404 {object} httputil.ErrorResponse "No hotels found"
// @Router       /hotels/municipality/code/{code} [get]
func (h *Handler) ListByMunicipalityCode(w http.ResponseWriter, r *http.Request) {
	h.respondWithFilter(w, r, ByMunicipalityCode, chi.URLParam(r, "code"))
}

// ListByTerritoryCode handles listing hotels by territory code
// @Summary      List hotels by territory code
// @Tags         hotels
// @Produce      json
// @Param        code path string true "Territory code"
// @Success      200 {array} Hotel
// @Failure      404 {object} httputil.ErrorResponse "No hotels found"
// @Router       /hotels/territory/code/{code} [get]
func (h *Handler) ListByTerritoryCode(w http.ResponseWriter, r *http.Request) {
	h.respondWithFilter(w, r, ByTerritoryCode, chi.URLParam(r, "code"))
}

// ListByMunicipality handles listing hotels by municipality name
// @Summary      List hotels by municipality name
// @Tags         hotels
// @Produce      json
// @Param        name path string true "Municipality name"
// @Success      200 {array} Hotel
// @Failure      404 {object} httputil.ErrorResponse "No hotels found"
// @Router       /hotels/municipality/{name} [get]
func (h *Handler) ListByMunicipality(w http.ResponseWriter, r *http.Request) {
	h.respondWithFilter(w, r, ByMunicipalityName, chi.URLParam(r, "name"))
}

// ListByTerritory handles listing hotels by territory name
// @Summary      List hotels by territory name
// @Tags         hotels
// @Produce      json
// @Param        name path string true "Territory name"
// @Success      200 {array} Hotel
// @Failure      404 {object} httputil.ErrorResponse "No hotels found"
// @Router       /hotels/territory/{name} [get]
func (h *Handler) ListByTerritory(w http.ResponseWriter, r *http.Request) {
	h.respondWithFilter(w, r, ByTerritoryName, chi.URLParam(r, "name"))
}

func (h *Handler) respondWithFilter(w http.ResponseWriter, r *http.Request, filter, value string) {
	logger := logging.GetLoggerFromContext(r.Context())

	hotels, err := h.service.ListBy(r.Context(), filter, value)
	if err != nil {
		if errors.Is(err, ErrNoHotelsFound) {
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to list hotels", "error", err.Error(), "filter", filter, "value", value)
		httputil.RespondErrorWithCode(w, "failed to list hotels", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, hotels, http.StatusOK)
}

// Municipalities handles the distinct municipality list
// @Summary      List distinct municipalities
// @Tags         hotels
// @Produce      json
// @Success      200 {array} string
// @Router       /hotels/municipalities [get]
func (h *Handler) Municipalities(w http.ResponseWriter, r *http.Request) {
	h.respondWithDistinct(w, r, h.service.Municipalities)
}

// Territories handles the distinct territory list
// @Summary      List distinct territories
// @Tags         hotels
// @Produce      json
// @Success      200 {array} string
// @Router       /hotels/territories [get]
func (h *Handler) Territories(w http.ResponseWriter, r *http.Request) {
	h.respondWithDistinct(w, r, h.service.Territories)
}

func (h *Handler) respondWithDistinct(w http.ResponseWriter, r *http.Request, list func(ctx context.Context) ([]string, error)) {
	logger := logging.GetLoggerFromContext(r.Context())

	values, err := list(r.Context())
	if err != nil {
		logger.Error("failed to list distinct values", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list values", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, values, http.StatusOK)
}
