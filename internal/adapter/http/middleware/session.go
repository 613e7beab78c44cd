package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader carries the browsing-session id. The cookie is a
	// fallback for clients that do not echo the header back.
	SessionHeader = "X-Session-Id"

	sessionCookie = "sid"
	sessionKey    = "session_id"
)

// Session resolves the browsing-session id for the request, minting a
// fresh one when the client has none yet. Carts and checkout gating
// key on this id.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := c.GetHeader(SessionHeader)
		if sid == "" {
			if v, err := c.Cookie(sessionCookie); err == nil {
				sid = v
			}
		}
		if sid == "" {
			sid = uuid.NewString()
			// session cookie: gone when the browser closes, like the cart
			c.SetCookie(sessionCookie, sid, 0, "/", "", false, true)
		}

		c.Set(sessionKey, sid)
		c.Header(SessionHeader, sid)
		c.Next()
	}
}

// SessionID returns the id resolved by Session for this request.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
