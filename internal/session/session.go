package session

import (
	"facilitywatch/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// ContextKey is where middleware.LoadSession stores the caller's Session.
const ContextKey = "session"

const (
	keyToken    = "token"
	keyRole     = "role"
	keyUsername = "username"
)

// Session is the caller's identity as issued by the Report API. Handlers
// receive it explicitly instead of reading the cookie themselves.
type Session struct {
	Token    string
	Role     string
	Username string
}

func (s Session) LoggedIn() bool {
	return s.Token != ""
}

func (s Session) IsAdmin() bool {
	return s.LoggedIn() && s.Role == models.RoleAdmin
}

// FromLogin builds a session from a successful login.
func FromLogin(res *models.LoginResult) Session {
	return Session{Token: res.AccessToken, Role: res.Role, Username: res.Username}
}

// Load reads the session out of the cookie.
func Load(c *gin.Context) Session {
	store := sessions.Default(c)
	get := func(key string) string {
		v, _ := store.Get(key).(string)
		return v
	}
	return Session{
		Token:    get(keyToken),
		Role:     get(keyRole),
		Username: get(keyUsername),
	}
}

// Current returns the session loaded by the middleware, or reads the cookie
// when the middleware did not run.
func Current(c *gin.Context) Session {
	if v, ok := c.Get(ContextKey); ok {
		if s, ok := v.(Session); ok {
			return s
		}
	}
	return Load(c)
}

// Save persists the session in the cookie.
func Save(c *gin.Context, s Session) error {
	store := sessions.Default(c)
	store.Set(keyToken, s.Token)
	store.Set(keyRole, s.Role)
	store.Set(keyUsername, s.Username)
	c.Set(ContextKey, s)
	return store.Save()
}

// Clear drops every stored credential. Used by logout and by the forced
// logout that follows a 401 from the API.
func Clear(c *gin.Context) error {
	store := sessions.Default(c)
	store.Clear()
	c.Set(ContextKey, Session{})
	return store.Save()
}

// AddFlash queues a one-shot message for the next rendered page.
func AddFlash(c *gin.Context, msg string) {
	store := sessions.Default(c)
	store.AddFlash(msg)
	store.Save()
}

// Flashes pops the queued messages.
func Flashes(c *gin.Context) []string {
	store := sessions.Default(c)
	raw := store.Flashes()
	if len(raw) == 0 {
		return nil
	}
	store.Save()

	out := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
