package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souravdas090300/recipe-app/globals"
)

func signedToken(t *testing.T, userID string) string {
	t.Helper()
	claims := &Claims{
		Username: "tester",
		UserID:   userID,
		Role:     []string{"user"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
	require.NoError(t, err)
	return s
}

func identitySpy(got *string) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		if id, ok := r.Context().Value(globals.UserIDKey).(string); ok {
			*got = id
		}
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	var got string
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Authenticate(identitySpy(&got))(rec, req, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, got)
}

func TestAuthenticatePopulatesIdentity(t *testing.T) {
	var got string
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "u42"))

	Authenticate(identitySpy(&got))(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u42", got)
}

func TestOptionalAuthWithoutToken(t *testing.T) {
	var got string
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	OptionalAuth(identitySpy(&got))(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code, "anonymous requests pass through")
	assert.Empty(t, got)
}

func TestOptionalAuthWithToken(t *testing.T) {
	var got string
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "u7"))

	OptionalAuth(identitySpy(&got))(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u7", got)
}

func TestOptionalAuthIgnoresGarbageToken(t *testing.T) {
	var got string
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")

	OptionalAuth(identitySpy(&got))(rec, req, nil)

	assert.Equal(t, http.StatusOK, rec.Code, "a bad token degrades to anonymous")
	assert.Empty(t, got)
}

func TestValidateJWT(t *testing.T) {
	claims, err := ValidateJWT("Bearer " + signedToken(t, "u9"))
	require.NoError(t, err)
	assert.Equal(t, "u9", claims.UserID)

	_, err = ValidateJWT("no-bearer-prefix")
	assert.Error(t, err)

	_, err = ValidateJWT("Bearer garbage")
	assert.Error(t, err)
}
