package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"facilitywatch/internal/config"
	"facilitywatch/internal/handlers"
	"facilitywatch/internal/middleware"
	"facilitywatch/internal/models"
	"facilitywatch/internal/session"
	"facilitywatch/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type nopAPI struct{}

func (nopAPI) ListReports(context.Context, string, string) ([]models.Report, error) { return nil, nil }
func (nopAPI) GetReport(context.Context, string, int) (*models.Report, error) {
	return &models.Report{}, nil
}
func (nopAPI) MyReports(context.Context, string) ([]models.Report, error) { return nil, nil }
func (nopAPI) CreateReport(context.Context, string, models.NewReport) (*models.Report, error) {
	return &models.Report{}, nil
}
func (nopAPI) UpdateReport(context.Context, string, int, models.ReportUpdate) (*models.Report, error) {
	return &models.Report{}, nil
}
func (nopAPI) DeleteReport(context.Context, string, int) error { return nil }
func (nopAPI) Upvote(context.Context, string, int) error       { return nil }
func (nopAPI) Login(context.Context, string, string) (*models.LoginResult, error) {
	return &models.LoginResult{}, nil
}
func (nopAPI) Register(context.Context, models.RegisterRequest) error { return nil }

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cookieStore, err := session.NewStore(config.SessionConfig{Secret: "router-test", MaxAge: 60})
	if err != nil {
		t.Fatal(err)
	}
	likes, err := store.NewMemoryLikes(8)
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.Use(sessions.Sessions("fw", cookieStore), middleware.RequestID(), middleware.LoadSession())

	api := nopAPI{}
	RegisterRoutes(r, Deps{
		Reports: handlers.NewReportHandler(api, likes, 1<<20, 30),
		Auth:    handlers.NewAuthHandler(api),
		Admin:   handlers.NewAdminHandler(api, "newest"),
		Health:  handlers.NewHealthHandler("http://api.test"),
	})
	return r
}

func TestGuestsAreSentToLogin(t *testing.T) {
	r := newRouter(t)

	cases := []struct {
		method string
		path   string
		htmx   bool
	}{
		{http.MethodGet, "/submit", false},
		{http.MethodGet, "/admin", false},
		{http.MethodPost, "/reports/1/upvote", true},
		{http.MethodDelete, "/admin/reports/1", true},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		if tc.htmx {
			req.Header.Set("HX-Request", "true")
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if tc.htmx {
			if got := w.Header().Get("HX-Redirect"); got != "/login" {
				t.Errorf("%s %s: expected HX-Redirect /login, got %q", tc.method, tc.path, got)
			}
			continue
		}
		if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
			t.Errorf("%s %s: expected redirect to /login, got %d %q", tc.method, tc.path, w.Code, w.Header().Get("Location"))
		}
	}
}

func TestHealthz(t *testing.T) {
	r := newRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected a request id header")
	}
}
