package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Peculiar9/dojo/internal/config"
	"github.com/Peculiar9/dojo/internal/handler"
	"github.com/Peculiar9/dojo/internal/warrior"
	"github.com/Peculiar9/dojo/internal/weapon"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Server: &config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            8080,
			Greeting:        "Welcome to the dojo!",
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: &config.LoggingConfig{Level: "error", Format: "text"},
	}

	ninja := warrior.NewNinja(weapon.NewKatana(), weapon.NewShuriken())
	return NewRouter(RouterParams{
		Config:         cfg,
		WarriorHandler: handler.NewWarriorHandler(ninja),
	})
}

func doGet(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

// TestRouter_Fight verifies the fight route returns the exact action body.
func TestRouter_Fight(t *testing.T) {
	engine := newTestEngine(t)

	rec := doGet(t, engine, "/warrior/fight")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"action":"cut!"}`, rec.Body.String())
}

// TestRouter_Sneak verifies the sneak route returns the exact action body.
func TestRouter_Sneak(t *testing.T) {
	engine := newTestEngine(t)

	rec := doGet(t, engine, "/warrior/sneak")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"action":"hit!"}`, rec.Body.String())
}

// TestRouter_Root verifies the root route serves the configured greeting as
// a plain non-empty string.
func TestRouter_Root(t *testing.T) {
	engine := newTestEngine(t)

	rec := doGet(t, engine, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to the dojo!", rec.Body.String())
}

// TestRouter_Health verifies the liveness route.
func TestRouter_Health(t *testing.T) {
	engine := newTestEngine(t)

	rec := doGet(t, engine, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

// TestRouter_UnknownRoute verifies unregistered paths fall through to the
// framework 404.
func TestRouter_UnknownRoute(t *testing.T) {
	engine := newTestEngine(t)

	rec := doGet(t, engine, "/warrior/dance")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doGet(t, engine, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestRouter_RequestID verifies a request ID is generated when absent and
// echoed back when supplied.
func TestRouter_RequestID(t *testing.T) {
	engine := newTestEngine(t)

	rec := doGet(t, engine, "/warrior/fight")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/warrior/fight", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	rec = httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	assert.Equal(t, "test-id-123", rec.Header().Get("X-Request-ID"))
}

// TestRouter_Deterministic verifies repeated calls return identical bodies:
// the bound warrior is a shared singleton with no state to drift.
func TestRouter_Deterministic(t *testing.T) {
	engine := newTestEngine(t)

	for i := 0; i < 5; i++ {
		rec := doGet(t, engine, "/warrior/fight")
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"action":"cut!"}`, rec.Body.String())
	}
}
