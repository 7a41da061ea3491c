// Package auth implements the admin session gate: it signs admin claims
// into a JWT, stores it in an HTTP-only cookie, and verifies it back
// from incoming requests. Every admin-scoped handler authorizes through
// this one gate instead of duplicating the check.
package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/gin-gonic/gin"
	jwtSDK "github.com/golang-jwt/jwt/v5"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/jwt"
)

const (
	// CookieName is the session cookie carrying the signed admin token.
	CookieName = "admin_token"
	// TokenLifetime is how long an issued session token stays valid.
	TokenLifetime = 7 * 24 * time.Hour
)

// ErrNoToken indicates the request carries no session token at all.
var ErrNoToken = errors.New("no token provided")

// Auth signs and verifies admin session tokens.
type Auth struct {
	secret       []byte
	secureCookie bool
}

// New creates the auth gate with the shared signing secret.
// secureCookie marks issued cookies Secure (production mode).
func New(secret []byte, secureCookie bool) (*Auth, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty signing secret")
	}

	return &Auth{
		secret:       secret,
		secureCookie: secureCookie,
	}, nil
}

// Sign issues a token for the given claims, filling issue and expiry times.
func (a *Auth) Sign(claims *jwt.AdminClaims) (string, error) {
	now := gutils.Clock.GetUTCNow()
	claims.IssuedAt = jwtSDK.NewNumericDate(now)
	claims.ExpiresAt = jwtSDK.NewNumericDate(now.Add(TokenLifetime))

	token, err := jwtSDK.NewWithClaims(jwtSDK.SigningMethodHS256, claims).
		SignedString(a.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign admin token")
	}

	return token, nil
}

// Verify parses a token string and returns its claims when the
// signature and expiry check out.
func (a *Auth) Verify(token string) (*jwt.AdminClaims, error) {
	claims := new(jwt.AdminClaims)
	if _, err := jwtSDK.ParseWithClaims(token, claims,
		func(*jwtSDK.Token) (any, error) { return a.secret, nil },
		jwtSDK.WithValidMethods([]string{jwtSDK.SigningMethodHS256.Alg()}),
		jwtSDK.WithExpirationRequired(),
	); err != nil {
		return nil, errors.Wrap(err, "parse admin token")
	}

	return claims, nil
}

// SetLoginCookie signs the claims and writes them as the session cookie.
// It returns the signed token so callers may also hand it to the client body.
func (a *Auth) SetLoginCookie(ctx *gin.Context, claims *jwt.AdminClaims) (string, error) {
	token, err := a.Sign(claims)
	if err != nil {
		return "", errors.Wrap(err, "sign claims")
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(CookieName, token,
		int(TokenLifetime/time.Second), "/", "", a.secureCookie, true)

	return token, nil
}

// ClearLoginCookie expires the session cookie.
func (a *Auth) ClearLoginCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(CookieName, "", -1, "/", "", a.secureCookie, true)
}

// ClaimsFromRequest extracts and verifies the session token from the
// request, preferring the cookie and falling back to a bearer header.
// It returns ErrNoToken when neither is present.
func (a *Auth) ClaimsFromRequest(ctx *gin.Context) (*jwt.AdminClaims, error) {
	token, err := ctx.Cookie(CookieName)
	if err != nil || token == "" {
		token = bearerToken(ctx.GetHeader("Authorization"))
	}

	if token == "" {
		return nil, errors.WithStack(ErrNoToken)
	}

	claims, err := a.Verify(token)
	if err != nil {
		return nil, errors.Wrap(err, "verify token")
	}

	return claims, nil
}

// bearerToken strips the "Bearer " prefix, returning "" when absent.
func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}

	return ""
}
