package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"facilitywatch/internal/api"
	"facilitywatch/internal/middleware"
	"facilitywatch/internal/models"
	"facilitywatch/internal/session"

	"github.com/gin-gonic/gin"
)

// ReportAPI is the part of the Report API the pages use.
type ReportAPI interface {
	ListReports(ctx context.Context, token, sortBy string) ([]models.Report, error)
	GetReport(ctx context.Context, token string, id int) (*models.Report, error)
	MyReports(ctx context.Context, token string) ([]models.Report, error)
	CreateReport(ctx context.Context, token string, in models.NewReport) (*models.Report, error)
	UpdateReport(ctx context.Context, token string, id int, update models.ReportUpdate) (*models.Report, error)
	DeleteReport(ctx context.Context, token string, id int) error
	Upvote(ctx context.Context, token string, id int) error
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)
	Register(ctx context.Context, in models.RegisterRequest) error
}

// Render helper to inject common variables like the current session
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	sess := session.Current(c)
	obj["Session"] = sess
	if sess.LoggedIn() {
		obj["CurrentUser"] = sess.Username
	}
	if _, ok := obj["Flashes"]; !ok {
		obj["Flashes"] = session.Flashes(c)
	}
	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// HtmxRedirect helper
func HtmxRedirect(c *gin.Context, path string) {
	c.Header("HX-Redirect", path)
	c.Status(http.StatusOK) // HTMX handles the redirect on client side via header
}

// RenderError renders the error page
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message, "Title": "Terjadi kesalahan"})
}

func isHtmx(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

// forceLogout drops the stored credentials and sends the user to the login
// page. Every 401 from the API ends up here.
func forceLogout(c *gin.Context, message string) {
	if err := session.Clear(c); err != nil {
		logf(c, "clear session: %v", err)
	}
	session.AddFlash(c, message)
	middleware.Redirect(c, "/login")
	c.Abort()
}

// handleUnauthorized performs the forced logout when err is a 401 and
// reports whether it did.
func handleUnauthorized(c *gin.Context, err error) bool {
	if !errors.Is(err, api.ErrUnauthorized) {
		return false
	}
	forceLogout(c, api.Message(err, ""))
	return true
}

func logf(c *gin.Context, format string, args ...any) {
	log.Printf("[%s] "+format, append([]any{middleware.GetRequestID(c)}, args...)...)
}
