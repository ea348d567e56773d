package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func createTestEnv(t *testing.T) *Authenv {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("hover-123"), bcrypt.MinCost)
	require.NoError(t, err)
	return &Authenv{
		JWTkey:       []byte("test-key"),
		Login:        "pilot",
		PasswordHash: hash,
		TokenTTL:     time.Hour,
	}
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))
}

func TestCheckCredentials(t *testing.T) {
	env := createTestEnv(t)
	assert.NoError(t, env.CheckCredentials("pilot", "hover-123"))
	assert.True(t, errors.Is(env.CheckCredentials("pilot", "wrong"), ErrInvalidCredentials))
	assert.True(t, errors.Is(env.CheckCredentials("other", "hover-123"), ErrInvalidCredentials))

	env.PasswordHash = nil
	assert.True(t, errors.Is(env.CheckCredentials("pilot", "hover-123"), ErrInvalidCredentials))
}

func TestIssueAndParseToken(t *testing.T) {
	env := createTestEnv(t)
	token, err := env.IssueToken("pilot", time.Now())
	require.NoError(t, err)

	login, err := env.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "pilot", login)

	expired, err := env.IssueToken("pilot", time.Now().Add(-2*time.Hour))
	require.NoError(t, err)
	_, err = env.ParseToken(expired)
	assert.Error(t, err)

	other := &Authenv{JWTkey: []byte("other-key"), TokenTTL: time.Hour}
	forged, err := other.IssueToken("pilot", time.Now())
	require.NoError(t, err)
	_, err = env.ParseToken(forged)
	assert.Error(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"login": "pilot", "exp": time.Now().Add(time.Hour).Unix()})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = env.ParseToken(unsigned)
	assert.Error(t, err)
}

func TestAuthHandler(t *testing.T) {
	env := createTestEnv(t)

	w := httptest.NewRecorder()
	env.AuthHandler(w, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"login": "pilot", "password": "hover-123"}`)))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.False(t, cookies[0].Secure)

	env.SecureCookie = true
	w = httptest.NewRecorder()
	env.AuthHandler(w, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"login": "pilot", "password": "hover-123"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, w.Result().Cookies(), 1)
	assert.True(t, w.Result().Cookies()[0].Secure)

	tests := []struct {
		body string
		code int
	}{
		{`{"login": "pilot", "password": "nope"}`, http.StatusUnauthorized},
		{`{"login": "", "password": "hover-123"}`, http.StatusBadRequest},
		{`not json`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		env.AuthHandler(w, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(tt.body)))
		assert.Equal(t, tt.code, w.Code, tt.body)
	}
}

func TestAuthMiddleware(t *testing.T) {
	env := createTestEnv(t)
	var seen string
	h := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = LoginFromContext(r.Context())
	}))
	token, err := env.IssueToken("pilot", time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/report/pdf", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pilot", seen)

	seen = ""
	req = httptest.NewRequest(http.MethodPost, "/api/user/tools/report/pdf", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pilot", seen)

	for _, header := range []string{"", "Bearer garbage", "Basic abc"} {
		req = httptest.NewRequest(http.MethodPost, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w = httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(0.001, 2)
	h := limiter.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/tools/missions", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:1001"))
	// same host, different port: shares the bucket
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:1000"))
}
