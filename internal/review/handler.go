package review

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stayview/reviews-api/internal/auth"
	"github.com/stayview/reviews-api/internal/httputil"
	"github.com/stayview/reviews-api/internal/logging"
)

// Handler contains HTTP handlers for review endpoints
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

// CreateRequest represents the review creation request body. Any author id
// the client includes is ignored; authorship comes from the bearer token.
type CreateRequest struct {
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	HotelID int64  `json:"hotel_id"`
}

// Create handles review creation
// @Summary      Create a review
// @Description  Create a review authored by the authenticated user
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRequest true "Review data"
// @Success      201 {object} Review
// @Failure      400 {object} httputil.ErrorResponse "Invalid body or persistence failure"
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /reviews [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	author, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid review request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), author, req.Content, req.Rating, req.HotelID)
	if err != nil {
		if errors.Is(err, ErrPersistence) {
			logger.Warn("review creation failed", "error", err.Error())
			httputil.RespondErrorWithCode(w, "failed to store review", httputil.CodePersistenceFailed, http.StatusBadRequest)
			return
		}
		logger.Error("review creation failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to create review", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	logger.Info("review created", "review_id", created.ID, "author_id", created.AuthorID, "hotel_id", created.HotelID)

	httputil.RespondJSON(w, created, http.StatusCreated)
}

// List handles paginated review listing
// @Summary      List reviews
// @Description  List reviews with offset/limit pagination
// @Tags         reviews
// @Produce      json
// @Param        offset query int false "Offset" default(0)
// @Param        limit query int false "Limit" default(100)
// @Success      200 {array} Review
// @Router       /reviews [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	reviews, err := h.service.List(r.Context(), offset, limit)
	if err != nil {
		logger.Error("failed to list reviews", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list reviews", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, reviews, http.StatusOK)
}

// ListByHotel handles per-hotel review listing
// @Summary      List reviews for a hotel
// @Description  List all reviews associated with a hotel id
// @Tags         reviews
// @Produce      json
// @Param        hotelID path int true "Hotel ID"
// @Success      200 {array} Review
// @Failure      404 {object} httputil.ErrorResponse "No reviews for hotel"
// @Router       /reviews/hotel/{hotelID} [get]
func (h *Handler) ListByHotel(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	hotelID, err := strconv.ParseInt(chi.URLParam(r, "hotelID"), 10, 64)
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid hotel id", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	reviews, err := h.service.ListByHotel(r.Context(), hotelID)
	if err != nil {
		if errors.Is(err, ErrNoReviews) {
			httputil.RespondErrorWithCode(w, err.Error(), httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to list reviews by hotel", "error", err.Error())
		httputil.RespondErrorWithCode(w, "failed to list reviews", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, reviews, http.StatusOK)
}
