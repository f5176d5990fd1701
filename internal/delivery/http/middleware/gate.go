package middleware

import (
	"net/http"
	"strings"

	"go-careers-backend/internal/delivery/http/response"
	"go-careers-backend/internal/domain"
	"go-careers-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName is the cookie carrying the admin session token.
	SessionCookieName = "token"

	// Trusted identity headers injected after verification. Handlers may
	// only trust them because the gate stripped any inbound copies first.
	HeaderAdminID    = "x-admin-id"
	HeaderAdminEmail = "x-admin-email"
)

const (
	loginPagePath    = "/admin/login"
	dashboardPath    = "/admin/dashboard"
	adminUIPrefix    = "/admin"
	protectedAPIPath = "/api/admins/protected"
)

// Gate is the single authorization choke point. Every request passes through
// it exactly once; it classifies the path, verifies the session token where
// required, and attaches the verified identity for downstream handlers.
// No handler re-verifies the token, but protected handlers still check that
// the identity is present as a guard against misrouting.
func Gate(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Client-supplied identity headers are never trusted.
		c.Request.Header.Del(HeaderAdminID)
		c.Request.Header.Del(HeaderAdminEmail)

		path := c.Request.URL.Path
		isLoginPage := path == loginPagePath
		isAdminUI := strings.HasPrefix(path, adminUIPrefix) && !isLoginPage
		isProtectedAPI := strings.HasPrefix(path, protectedAPIPath)

		token := sessionToken(c)

		// A logged-in admin landing on the login page goes straight to the
		// dashboard. An invalid token just lets them log in again.
		if isLoginPage && token != "" {
			if _, err := tokens.Verify(token); err == nil {
				c.Redirect(http.StatusTemporaryRedirect, dashboardPath)
				c.Abort()
				return
			}
		}

		if !isAdminUI && !isProtectedAPI {
			c.Next()
			return
		}

		if token == "" {
			if isProtectedAPI {
				response.Error(c, http.StatusUnauthorized, "Authentication required", nil)
				c.Abort()
				return
			}
			c.Redirect(http.StatusTemporaryRedirect, loginPagePath)
			c.Abort()
			return
		}

		payload, err := tokens.Verify(token)
		if err != nil {
			if isProtectedAPI {
				response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
				c.Abort()
				return
			}
			// Stale cookie on a UI route: clear it and send them to login.
			ClearSessionCookie(c)
			c.Redirect(http.StatusTemporaryRedirect, loginPagePath)
			c.Abort()
			return
		}

		// Forward verified identity as trusted context and headers.
		c.Set(string(domain.KeyAdminID), payload.ID)
		c.Set(string(domain.KeyAdminEmail), payload.Email)
		c.Request.Header.Set(HeaderAdminID, payload.ID)
		c.Request.Header.Set(HeaderAdminEmail, payload.Email)

		c.Next()
	}
}

// sessionToken reads the token cookie, falling back to a Bearer header for
// non-browser clients.
func sessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// SetSessionCookie attaches the session token as an http-only, lax cookie
// scoped to the whole site, expiring with the token itself.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, int(auth.TokenTTL.Seconds()), "/", "", gin.Mode() == gin.ReleaseMode, true)
}

// ClearSessionCookie deletes the session cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", gin.Mode() == gin.ReleaseMode, true)
}
