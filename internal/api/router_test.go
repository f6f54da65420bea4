package api

import (
	"database/sql"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/trip-metrics-backend-go/internal/config"
	"github.com/jengzang/trip-metrics-backend-go/internal/database"
	"github.com/jengzang/trip-metrics-backend-go/internal/metrics"
	"github.com/jengzang/trip-metrics-backend-go/internal/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		RateLimit:       1000,
		RateLimitWindow: time.Minute,
		JWTSecret:       "secret",
	}
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := database.Open(database.Config{Path: database.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, database.NewMigrationManager(conn, database.Migrations).RunMigrations())
	return conn
}

func get(r http.Handler, path string, header ...string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	r := SetupRouter(testConfig(), openDB(t), metrics.NewCollector())

	rec := get(r, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = get(r, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), "tripmetrics_trips_loaded_total")
}

func TestHealthReportsClosedDatabase(t *testing.T) {
	conn := openDB(t)
	r := SetupRouter(testConfig(), conn, metrics.NewCollector())
	conn.Close()

	rec := get(r, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := SetupRouter(testConfig(), openDB(t), metrics.NewCollector())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/trips", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAuthEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.AuthEnabled = true
	r := SetupRouter(cfg, openDB(t), metrics.NewCollector())

	assert.Equal(t, http.StatusUnauthorized, get(r, "/api/v1/trips").Code)
	assert.Equal(t, http.StatusOK, get(r, "/health").Code, "health stays public")

	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middleware.Claims{
		UserID:           "u1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, get(r, "/api/v1/trips", "Authorization", "Bearer "+tok).Code)
}
