package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/franciscosanchezn/gin-recipe-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

// fakeTokens accepts only the tokens it holds
type fakeTokens map[string]uint

func (f fakeTokens) LoadAccessToken(_ context.Context, access string) (uint, error) {
	if id, ok := f[access]; ok {
		return id, nil
	}
	return 0, errors.New("token not found")
}

type fakeUsers map[uint]*models.User

func (f fakeUsers) GetUserByID(id uint) (*models.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

func signToken(t *testing.T, claims jwt.MapClaims, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(uid string) jwt.MapClaims {
	return jwt.MapClaims{
		"uid": uid,
		"aud": "recipe-api",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
}

func setupRouter(tokens TokenLoader, users UserLoader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", TokenAuth(testSecret, tokens), RequireActiveUser(users), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint(ContextUserID), "email": CurrentUser(c).Email})
	})
	return r
}

func doRequest(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenAuth(t *testing.T) {
	valid := signToken(t, validClaims("1"), jwt.SigningMethodHS256, testSecret)
	unstoredClaims := validClaims("1")
	unstoredClaims["jti"] = "never-issued"
	unstored := signToken(t, unstoredClaims, jwt.SigningMethodHS256, testSecret)
	expired := signToken(t, jwt.MapClaims{
		"uid": "1",
		"iat": time.Now().Add(-2 * time.Hour).Unix(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	}, jwt.SigningMethodHS256, testSecret)
	wrongKey := signToken(t, validClaims("1"), jwt.SigningMethodHS256, []byte("other-secret"))
	noUID := signToken(t, jwt.MapClaims{"exp": time.Now().Add(time.Hour).Unix()}, jwt.SigningMethodHS256, testSecret)
	otherUser := signToken(t, validClaims("2"), jwt.SigningMethodHS256, testSecret)

	tokens := fakeTokens{valid: 1, expired: 1, noUID: 1, otherUser: 1}
	users := fakeUsers{1: {ID: 1, Email: "user@example.com", IsActive: true}}
	router := setupRouter(tokens, users)

	testCases := []struct {
		name     string
		header   string
		status   int
		errorKey string
	}{
		{"bearer scheme", "Bearer " + valid, http.StatusOK, ""},
		{"token scheme", "Token " + valid, http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, models.ErrAuthorizationRequired},
		{"unknown scheme", "Basic " + valid, http.StatusUnauthorized, models.ErrInvalidRequest},
		{"no scheme", valid, http.StatusUnauthorized, models.ErrInvalidRequest},
		{"empty token", "Bearer ", http.StatusUnauthorized, models.ErrInvalidToken},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, models.ErrInvalidToken},
		{"wrong signing key", "Bearer " + wrongKey, http.StatusUnauthorized, models.ErrInvalidToken},
		{"missing uid", "Bearer " + noUID, http.StatusUnauthorized, models.ErrInvalidToken},
		{"not in store", "Bearer " + unstored, http.StatusUnauthorized, models.ErrInvalidToken},
		{"store disagrees on user", "Bearer " + otherUser, http.StatusUnauthorized, models.ErrInvalidToken},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.header)
			assert.Equal(t, tt.status, w.Code)
			if tt.errorKey != "" {
				assert.Contains(t, w.Body.String(), `"error":"`+tt.errorKey+`"`)
				assert.NotEmpty(t, w.Header().Get("WWW-Authenticate"))
			} else {
				assert.Contains(t, w.Body.String(), "user@example.com")
			}
		})
	}
}

func TestTokenAuthRejectsNonHMAC(t *testing.T) {
	token := signToken(t, validClaims("1"), jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType)
	router := setupRouter(fakeTokens{token: 1}, fakeUsers{1: {ID: 1, IsActive: true}})

	w := doRequest(router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireActiveUser(t *testing.T) {
	token := signToken(t, validClaims("1"), jwt.SigningMethodHS256, testSecret)
	tokens := fakeTokens{token: 1}

	t.Run("inactive user", func(t *testing.T) {
		router := setupRouter(tokens, fakeUsers{1: {ID: 1, IsActive: false}})
		w := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("deleted user", func(t *testing.T) {
		router := setupRouter(tokens, fakeUsers{})
		w := doRequest(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestExtractUserID(t *testing.T) {
	id, err := extractUserID(jwt.MapClaims{"uid": "42"})
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	id, err = extractUserID(jwt.MapClaims{"uid": float64(7)})
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)

	for _, claims := range []jwt.MapClaims{{"uid": "abc"}, {"uid": "0"}, {"uid": float64(-1)}, {}} {
		_, err := extractUserID(claims)
		assert.Error(t, err)
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger, hook := test.NewNullLogger()

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	t.Run("generates a request id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.InfoLevel, entry.Level)
		assert.Equal(t, http.StatusOK, entry.Data["status"])
		assert.Equal(t, w.Header().Get(RequestIDHeader), entry.Data["request_id"])
	})

	t.Run("keeps the client request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/missing", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	})
}
