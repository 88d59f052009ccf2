package session

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderName = "X-Session-Id"
	CookieName = "portfolio_session"
	contextKey = "session_id"

	cookieMaxAge = 180 * 24 * 60 * 60
)

// Middleware resolves the visitor's session from the X-Session-Id header or
// the session cookie, issuing a fresh cookie when neither is present.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := strings.TrimSpace(c.GetHeader(HeaderName))
		if !valid(sid) {
			if cookie, err := c.Cookie(CookieName); err == nil && valid(cookie) {
				sid = cookie
			} else {
				sid = uuid.NewString()
				c.SetSameSite(http.SameSiteLaxMode)
				c.SetCookie(CookieName, sid, cookieMaxAge, "/", "", false, true)
			}
		}
		c.Set(contextKey, sid)
		c.Writer.Header().Set(HeaderName, sid)
		c.Next()
	}
}

// ID returns the session resolved by Middleware.
func ID(c *gin.Context) string {
	return c.GetString(contextKey)
}

func valid(sid string) bool {
	if sid == "" || len(sid) > 64 {
		return false
	}
	_, err := uuid.Parse(sid)
	return err == nil
}
