package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const sessionCookieName = "session_id"

// Gin context keys set by the session guard.
const (
	ctxUserID   = "userID"
	ctxFullName = "fullname"
)

// sessionMiddleware guards protected pages: without a live session the
// request is redirected to the login page and no protected content is
// emitted.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token, err := c.Cookie(sessionCookieName)
	if err != nil || token == "" {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	sess, ok := h.services.Sessions.Get(token)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.Set(ctxUserID, sess.UserID)
	c.Set(ctxFullName, sess.FullName)
	c.Next()
}

// setSessionCookie issues the opaque session token as an HttpOnly browser
// session cookie.
func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

// clearSessionCookie expires the cookie on the client.
func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
