package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/happytailsapp/petcare-booking/internal/config"
	"github.com/happytailsapp/petcare-booking/internal/session"
)

type fakeStore struct {
	sessions map[string]session.Data
	next     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: map[string]session.Data{}}
}

func (s *fakeStore) Create(_ context.Context, data session.Data) (string, error) {
	s.next++
	token := fmt.Sprintf("token-%d", s.next)
	s.sessions[token] = data
	return token, nil
}

func (s *fakeStore) Get(_ context.Context, token string) (*session.Data, error) {
	data, ok := s.sessions[token]
	if !ok {
		return nil, session.ErrNotFound
	}
	return &data, nil
}

func (s *fakeStore) Destroy(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

// Session and Logout only touch the session store, so they can run against
// the fake without a database.
func newSessionRouter(store session.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(nil, store, &config.Config{SessionTTL: time.Hour}, nil)

	r := gin.New()
	r.GET("/api/session", h.Session)
	r.POST("/api/logout", h.Logout)
	return r
}

func withCookie(req *http.Request, token string) *http.Request {
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	return req
}

func TestSession_NoCookie(t *testing.T) {
	r := newSessionRouter(newFakeStore())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/session", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No active session")
}

func TestSession_Active(t *testing.T) {
	store := newFakeStore()
	token, err := store.Create(context.Background(), session.Data{UserID: 5, Email: "a@b.com"})
	require.NoError(t, err)

	r := newSessionRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withCookie(httptest.NewRequest(http.MethodGet, "/api/session", nil), token))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"email":"a@b.com"`)
}

func TestLogout_Idempotent(t *testing.T) {
	store := newFakeStore()
	token, err := store.Create(context.Background(), session.Data{UserID: 5, Email: "a@b.com"})
	require.NoError(t, err)

	r := newSessionRouter(store)

	// First logout destroys the session.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, withCookie(httptest.NewRequest(http.MethodPost, "/api/logout", nil), token))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, store.sessions)

	// Logging out again, or without any cookie, still succeeds.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, withCookie(httptest.NewRequest(http.MethodPost, "/api/logout", nil), token))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/logout", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSession_AfterLogout(t *testing.T) {
	store := newFakeStore()
	token, err := store.Create(context.Background(), session.Data{UserID: 5, Email: "a@b.com"})
	require.NoError(t, err)

	r := newSessionRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, withCookie(httptest.NewRequest(http.MethodPost, "/api/logout", nil), token))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, withCookie(httptest.NewRequest(http.MethodGet, "/api/session", nil), token))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
