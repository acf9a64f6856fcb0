package user

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/stayview/reviews-api/internal/httputil"
	"github.com/stayview/reviews-api/internal/logging"
)

// Finder is the read side of the user store the public lookups need.
// Implemented by Repository.
type Finder interface {
	FindByID(ctx context.Context, id int64) (*User, error)
}

// Handler contains HTTP handlers for public user lookups
type Handler struct {
	repo   Finder
	logger *logging.Logger
}

func NewHandler(repo Finder, logger *logging.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// ProfileResponse is the public user representation.
type ProfileResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UsernameResponse carries just the username for display next to reviews.
type UsernameResponse struct {
	Username string `json:"username"`
}

// GetByID handles public profile lookup
// @Summary      Get user by id
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} ProfileResponse
// @Failure      404 {object} httputil.ErrorResponse "User not found"
// @Router       /users/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	h.respondWithUser(w, r, func(u *User) any {
		return ProfileResponse{ID: u.ID, Username: u.Username, Email: u.Email}
	})
}

// GetUsername handles username lookup by user id
// @Summary      Get username by user id
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} UsernameResponse
// @Failure      404 {object} httputil.ErrorResponse "User not found"
// @Router       /users/{id}/username [get]
func (h *Handler) GetUsername(w http.ResponseWriter, r *http.Request) {
	h.respondWithUser(w, r, func(u *User) any {
		return UsernameResponse{Username: u.Username}
	})
}

func (h *Handler) respondWithUser(w http.ResponseWriter, r *http.Request, shape func(*User) any) {
	logger := logging.GetLoggerFromContext(r.Context())

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httputil.RespondErrorWithCode(w, "invalid user id", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return
	}

	found, err := h.repo.FindByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			httputil.RespondErrorWithCode(w, "user not found", httputil.CodeNotFound, http.StatusNotFound)
			return
		}
		logger.Error("failed to load user", "error", err.Error(), "user_id", id)
		httputil.RespondErrorWithCode(w, "failed to load user", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, shape(found), http.StatusOK)
}
