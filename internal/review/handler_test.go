package review

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayview/reviews-api/internal/auth"
	"github.com/stayview/reviews-api/internal/logging"
	"github.com/stayview/reviews-api/internal/user"
)

func newTestHandler(store Store) *Handler {
	logger := logging.NewLogger(true)
	return NewHandler(NewService(store, logger), logger)
}

func TestHandler_Create(t *testing.T) {
	t.Run("client author id is ignored", func(t *testing.T) {
		store := newFakeStore()
		h := newTestHandler(store)

		// Body claims authorship of user 999; the token identity is user 7.
		body := `{"content":"nice pool","rating":4,"hotel_id":3,"author_id":999}`
		req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
		req = req.WithContext(auth.WithUser(req.Context(), &user.User{ID: 7, Username: "alice"}))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var created Review
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
		assert.Equal(t, int64(7), created.AuthorID)
		assert.Equal(t, int64(3), created.HotelID)
	})

	t.Run("missing identity", func(t *testing.T) {
		h := newTestHandler(newFakeStore())

		req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(`{"content":"x","rating":1,"hotel_id":1}`))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		h := newTestHandler(newFakeStore())

		req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader("{not json"))
		req = req.WithContext(auth.WithUser(req.Context(), &user.User{ID: 7}))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_List(t *testing.T) {
	store := newFakeStore()
	h := newTestHandler(store)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(`{"content":"x","rating":4,"hotel_id":1}`))
		req = req.WithContext(auth.WithUser(req.Context(), &user.User{ID: 1}))
		rec := httptest.NewRecorder()
		h.Create(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/reviews?offset=1&limit=1", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var reviews []Review
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, int64(2), reviews[0].ID)
}
