package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/auth"
	"go-jobmarket-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthCookieName carries the token for browser sessions that cannot set headers.
const AuthCookieName = "auth_token"

var errNoToken = errors.New("no token")

// Authenticator verifies bearer tokens and resolves them to a Principal.
// HS256 tokens are checked against the shared secret, RS256 against JWKS.
type Authenticator struct {
	jwks   *auth.Provider
	secret []byte
	authUC domain.AuthUsecase
}

func NewAuthenticator(jwks *auth.Provider, secret string, authUC domain.AuthUsecase) *Authenticator {
	a := &Authenticator{jwks: jwks, authUC: authUC}
	if secret != "" {
		a.secret = []byte(secret)
	}
	return a
}

// tokenFromRequest prefers the Authorization header and falls back to the cookie.
func tokenFromRequest(c *gin.Context) (token string, fromCookie bool) {
	if header := c.GetHeader("Authorization"); header != "" {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")), false
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

func (a *Authenticator) keyFunc(token *jwt.Token) (interface{}, error) {
	switch token.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if a.secret == nil {
			return nil, fmt.Errorf("HS256 token received but JWT_SECRET is not configured")
		}
		return a.secret, nil
	case *jwt.SigningMethodRSA:
		if a.jwks == nil {
			return nil, fmt.Errorf("RS256 token received but JWKS_URL is not configured")
		}
		return a.jwks.KeyFunc(token)
	default:
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
}

// subject reads the numeric user id from the sub claim.
func subject(claims jwt.MapClaims) (int64, error) {
	switch sub := claims["sub"].(type) {
	case string:
		return strconv.ParseInt(sub, 10, 64)
	case float64:
		return int64(sub), nil
	default:
		return 0, fmt.Errorf("missing sub claim")
	}
}

func (a *Authenticator) authenticate(c *gin.Context) (*domain.Principal, error) {
	tokenString, fromCookie := tokenFromRequest(c)
	if tokenString == "" {
		return nil, errNoToken
	}

	token, err := jwt.Parse(tokenString, a.keyFunc)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	userID, err := subject(claims)
	if err != nil {
		return nil, err
	}

	// Role comes from the database, not the token
	principal, err := a.authUC.ResolvePrincipal(c.Request.Context(), userID)
	if err != nil {
		return nil, err
	}

	email, _ := claims["email"].(string)
	c.Set(string(domain.KeyPrincipal), *principal)
	c.Set(string(domain.KeyUserEmail), email)
	c.Set(cookieSessionKey, fromCookie)
	return principal, nil
}

// Required rejects requests without a valid token.
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := a.authenticate(c); err != nil {
			if errors.Is(err, errNoToken) {
				response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			} else {
				logger.Log.Debug("Token validation failed", "error", err, "path", c.FullPath())
				response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

// Optional attaches a Principal when a valid token is present and otherwise
// lets the request through anonymously.
func (a *Authenticator) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := a.authenticate(c); err != nil && !errors.Is(err, errNoToken) {
			logger.Log.Debug("Ignoring invalid token on public route", "error", err, "path", c.FullPath())
		}
		c.Next()
	}
}

// RequireRole guards a route group by role.
func RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
			c.Abort()
			return
		}
		for _, role := range roles {
			if p.Role == role {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "Insufficient role", nil)
		c.Abort()
	}
}

// PrincipalFrom returns the authenticated caller, if any.
func PrincipalFrom(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(string(domain.KeyPrincipal))
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}
