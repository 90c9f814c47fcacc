package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerr "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	"github.com/amirhossein-jamali/momo-gateway/internal/infrastructure/adapter/logger"
)

const (
	testSecret = "test-secret"
	testIssuer = "momo-gateway"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter() *gin.Engine {
	router := gin.New()
	router.GET("/me", AuthRequired(testSecret, testIssuer, logger.NewNoopLogger()), func(c *gin.Context) {
		userID, _ := UserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func callWithToken(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	router := newAuthRouter()
	now := time.Now()

	t.Run("Valid token exposes the user id", func(t *testing.T) {
		token, err := IssueToken(testSecret, testIssuer, 4, time.Hour, now)
		require.NoError(t, err)

		w := callWithToken(router, "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":4}`, w.Body.String())
	})

	t.Run("Missing header", func(t *testing.T) {
		w := callWithToken(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Wrong scheme", func(t *testing.T) {
		token, _ := IssueToken(testSecret, testIssuer, 4, time.Hour, now)
		w := callWithToken(router, "Basic "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, _ := IssueToken(testSecret, testIssuer, 4, time.Hour, now.Add(-2*time.Hour))
		w := callWithToken(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})

	t.Run("Other signing secret", func(t *testing.T) {
		token, _ := IssueToken("other-secret", testIssuer, 4, time.Hour, now)
		w := callWithToken(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Other issuer", func(t *testing.T) {
		token, _ := IssueToken(testSecret, "someone-else", 4, time.Hour, now)
		w := callWithToken(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			UserID:           4,
			RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer},
		}).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		w := callWithToken(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestParseToken(t *testing.T) {
	t.Run("Zero user id is rejected", func(t *testing.T) {
		token, _ := IssueToken(testSecret, testIssuer, 0, time.Hour, time.Now())

		_, err := ParseToken(testSecret, testIssuer, token)

		assert.ErrorIs(t, err, domainerr.ErrUnauthorized)
	})

	t.Run("Empty issuer skips the issuer check", func(t *testing.T) {
		token, _ := IssueToken(testSecret, "anyone", 7, time.Hour, time.Now())

		claims, err := ParseToken(testSecret, "", token)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), claims.UserID)
	})
}
