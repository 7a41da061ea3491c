package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	jwtSDK "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/jwt"
)

func newTestAuth(t *testing.T) *Auth {
	t.Helper()

	a, err := New([]byte("test-secret"), false)
	require.NoError(t, err)
	return a
}

func TestNew_RejectsEmptySecret(t *testing.T) {
	t.Parallel()

	_, err := New(nil, false)
	require.Error(t, err)
}

func TestSignVerify_Roundtrip(t *testing.T) {
	t.Parallel()
	a := newTestAuth(t)

	token, err := a.Sign(&jwt.AdminClaims{
		RegisteredClaims: jwtSDK.RegisteredClaims{Subject: "6568a0e7c4b5d21a3c8e9f01"},
		Email:            "admin@example.com",
		Role:             "admin",
	})
	require.NoError(t, err)

	claims, err := a.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "6568a0e7c4b5d21a3c8e9f01", claims.AdminID())
	require.Equal(t, "admin@example.com", claims.Email)
	require.Equal(t, "admin", claims.Role)
}

func TestVerify_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	a := newTestAuth(t)
	other, err := New([]byte("other-secret"), false)
	require.NoError(t, err)

	token, err := other.Sign(&jwt.AdminClaims{Email: "admin@example.com"})
	require.NoError(t, err)

	_, err = a.Verify(token)
	require.Error(t, err)
}

func TestVerify_RejectsExpired(t *testing.T) {
	t.Parallel()
	a := newTestAuth(t)

	claims := &jwt.AdminClaims{Email: "admin@example.com"}
	token, err := a.Sign(claims)
	require.NoError(t, err)

	// re-sign with an expiry in the past using the same secret
	claims.ExpiresAt = jwtSDK.NewNumericDate(time.Now().Add(-time.Hour))
	expired, err := jwtSDK.NewWithClaims(jwtSDK.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = a.Verify(expired)
	require.Error(t, err)

	_, err = a.Verify(token)
	require.NoError(t, err)
}

func TestVerify_RejectsUnsignedAlg(t *testing.T) {
	t.Parallel()
	a := newTestAuth(t)

	unsigned, err := jwtSDK.NewWithClaims(jwtSDK.SigningMethodNone,
		&jwt.AdminClaims{
			RegisteredClaims: jwtSDK.RegisteredClaims{
				ExpiresAt: jwtSDK.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}).SignedString(jwtSDK.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = a.Verify(unsigned)
	require.Error(t, err)
}

func TestClaimsFromRequest(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)
	a := newTestAuth(t)

	token, err := a.Sign(&jwt.AdminClaims{Email: "admin@example.com"})
	require.NoError(t, err)

	newCtx := func(mutate func(*http.Request)) *gin.Context {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if mutate != nil {
			mutate(ctx.Request)
		}
		return ctx
	}

	// no token at all
	_, err = a.ClaimsFromRequest(newCtx(nil))
	require.ErrorIs(t, err, ErrNoToken)

	// cookie
	claims, err := a.ClaimsFromRequest(newCtx(func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	}))
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", claims.Email)

	// bearer header fallback
	claims, err = a.ClaimsFromRequest(newCtx(func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}))
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", claims.Email)

	// tampered token
	_, err = a.ClaimsFromRequest(newCtx(func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: CookieName, Value: token + "x"})
	}))
	require.Error(t, err)
}
