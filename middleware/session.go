package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	session_cache "github.com/alcinadadosti-worspace/AtivosEMultimarcas/cache"
)

const (
	// SessionCookieName carries the opaque session token.
	SessionCookieName = "multimarks_session"

	sessionCookieMaxAge = 60 * 60 * 24 // seconds, matches the store TTL

	ctxSessionKey = "session"
	ctxStoreKey   = "sessionStore"
)

// Session resolves the caller's session from the cookie, creating one
// when the cookie is absent, unknown or expired, and refreshes the
// cookie on every request.
func Session(store *session_cache.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(SessionCookieName)
		s := store.GetOrCreate(id)

		if s.ID != id {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookieName, s.ID, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set(ctxSessionKey, s)
		c.Set(ctxStoreKey, store)
		c.Next()
	}
}

// GetSession returns the request's session. Only valid on routes
// behind the Session middleware.
func GetSession(c *gin.Context) *session_cache.Session {
	s, _ := c.MustGet(ctxSessionKey).(*session_cache.Session)
	return s
}

// GetStore returns the session store behind the current request.
func GetStore(c *gin.Context) *session_cache.Store {
	st, _ := c.MustGet(ctxStoreKey).(*session_cache.Store)
	return st
}
