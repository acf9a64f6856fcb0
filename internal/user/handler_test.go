package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayview/reviews-api/internal/logging"
)

type fakeFinder struct {
	users map[int64]*User
}

func (f *fakeFinder) FindByID(_ context.Context, id int64) (*User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func newLookupRequest(t *testing.T, path, id string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandler_GetByID(t *testing.T) {
	finder := &fakeFinder{users: map[int64]*User{
		7: {ID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: "secret-hash"},
	}}
	h := NewHandler(finder, logging.NewLogger(true))

	t.Run("found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetByID(rec, newLookupRequest(t, "/users/7", "7"))

		require.Equal(t, http.StatusOK, rec.Code)

		var profile ProfileResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&profile))
		assert.Equal(t, int64(7), profile.ID)
		assert.Equal(t, "alice", profile.Username)
	})

	t.Run("response never carries the password hash", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetByID(rec, newLookupRequest(t, "/users/7", "7"))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret-hash")
	})

	t.Run("not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetByID(rec, newLookupRequest(t, "/users/99", "99"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.GetByID(rec, newLookupRequest(t, "/users/abc", "abc"))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_GetUsername(t *testing.T) {
	finder := &fakeFinder{users: map[int64]*User{
		7: {ID: 7, Username: "alice", Email: "alice@example.com"},
	}}
	h := NewHandler(finder, logging.NewLogger(true))

	rec := httptest.NewRecorder()
	h.GetUsername(rec, newLookupRequest(t, "/users/7/username", "7"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp UsernameResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "alice", resp.Username)

	// Email is not part of the username shape
	assert.NotContains(t, rec.Body.String(), "alice@example.com")
}
