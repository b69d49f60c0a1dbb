package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("test-key")

func TestGenerateAndValidate(t *testing.T) {
	token, err := GenerateJWT("uid-1", "a@b.com", testKey, time.Now())
	require.NoError(t, err)

	claims, err := ValidateJWT(token, testKey)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", claims.UID)
	assert.Equal(t, "a@b.com", claims.Email)

	_, err = ValidateJWT(token, []byte("other-key"))
	assert.Error(t, err)
}

func TestValidateExpired(t *testing.T) {
	token, err := GenerateJWT("uid-1", "a@b.com", testKey, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)

	_, err = ValidateJWT(token, testKey)
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	var seen *JwtClaims
	h := GetJwtAuthMiddleware(testKey)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// anonymous
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, seen)

	token, err := GenerateJWT("uid-1", "a@b.com", testKey, time.Now())
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "uid-1", seen.UID)

	req = httptest.NewRequest(http.MethodPost, "/submit", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
