package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"twigane_backend/internal/config"
	"twigane_backend/internal/model"
	"twigane_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lastSeenRecorder struct {
	seen chan uint
}

func (r *lastSeenRecorder) UpdateLastSeen(userID uint) error {
	r.seen <- userID
	return nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	return cfg
}

// Optional auth followed by the activity touch must see the claims, so a
// signed-in reader on a public route still gets last_seen updated.
func TestTryAuthThenActivityTouchesLastSeen(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	user := &model.User{BaseModel: model.BaseModel{ID: 42}, Email: "reader@example.com", Role: model.Student}
	token, err := util.GenerateJWT(user, cfg.JWT.Secret, time.Hour)
	require.NoError(t, err)

	recorder := &lastSeenRecorder{seen: make(chan uint, 1)}
	router := gin.New()
	router.Use(TryAuthMiddleware(cfg), ActivityMiddleware(recorder))
	router.GET("/posts", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	select {
	case id := <-recorder.seen:
		assert.Equal(t, uint(42), id)
	case <-time.After(2 * time.Second):
		t.Fatal("last_seen was never updated for an authenticated read")
	}
}

func TestActivityMiddlewareIgnoresAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig()

	recorder := &lastSeenRecorder{seen: make(chan uint, 1)}
	router := gin.New()
	router.Use(TryAuthMiddleware(cfg), ActivityMiddleware(recorder))
	router.GET("/posts", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	select {
	case id := <-recorder.seen:
		t.Fatalf("unexpected last_seen update for anonymous request: user %d", id)
	case <-time.After(100 * time.Millisecond):
	}
}
