package middleware

import (
	"net/http"

	"facilitywatch/internal/session"

	"github.com/gin-gonic/gin"
)

// LoadSession reads the caller's identity from the cookie and puts it in the
// gin context for handlers and templates.
func LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(session.ContextKey, session.Load(c))
		c.Next()
	}
}

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Current(c).LoggedIn() {
			session.AddFlash(c, "Anda harus login terlebih dahulu.")
			Redirect(c, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired lets only admin sessions through. Anyone else is sent to the
// login page, the same way the admin view refused access before.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.Current(c).IsAdmin() {
			session.AddFlash(c, "Akses ditolak: khusus admin.")
			Redirect(c, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Redirect answers HTMX requests with HX-Redirect and plain requests with 302.
func Redirect(c *gin.Context, path string) {
	if c.GetHeader("HX-Request") == "true" {
		c.Header("HX-Redirect", path)
		c.Status(http.StatusOK)
		return
	}
	c.Redirect(http.StatusFound, path)
}
