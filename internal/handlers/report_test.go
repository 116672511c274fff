package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"facilitywatch/internal/api"
	"facilitywatch/internal/models"
	"facilitywatch/internal/session"

	"github.com/gin-gonic/gin"
)

// submitReport posts the create form, attaching a photo when data is non-nil.
func submitReport(t *testing.T, r *gin.Engine, title, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.WriteField("title", title)
	mw.WriteField("facility", "Gedung B")
	mw.WriteField("description", "Keran wastafel bocor")
	if data != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="bukti"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatal(err)
		}
		part.Write(data)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/submit", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateWithoutPhoto(t *testing.T) {
	fake := &fakeAPI{}
	r := newTestEngine(t, fake, newLikes(t), userSession)

	w := submitReport(t, r, "Keran bocor", "", nil)
	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", w.Code, w.Body.String())
	}
	if fake.created == nil || fake.created.HasFile() {
		t.Errorf("expected report without file, got %+v", fake.created)
	}
}

func TestCreatePhotoChecks(t *testing.T) {
	cases := []struct {
		name        string
		contentType string
		size        int
		created     bool
	}{
		{"pdf rejected", "application/pdf", 10, false},
		{"over limit rejected", "image/png", testUploadLimit + 1, false},
		{"at limit accepted", "image/png", testUploadLimit, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeAPI{}
			r := newTestEngine(t, fake, newLikes(t), userSession)

			w := submitReport(t, r, "Keran bocor", tc.contentType, bytes.Repeat([]byte("x"), tc.size))
			if tc.created {
				if w.Code != http.StatusFound {
					t.Fatalf("expected redirect, got %d %q", w.Code, w.Body.String())
				}
				if fake.created == nil || len(fake.created.File) != tc.size || fake.created.ContentType != tc.contentType {
					t.Errorf("unexpected upload %+v", fake.created)
				}
				return
			}
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if !strings.HasPrefix(w.Body.String(), "report/create.html|") {
				t.Errorf("expected the form again, got %q", w.Body.String())
			}
			if fake.created != nil {
				t.Error("report must not be sent to the API")
			}
		})
	}
}

func TestCreateRequiresFields(t *testing.T) {
	fake := &fakeAPI{}
	r := newTestEngine(t, fake, newLikes(t), userSession)

	w := submitReport(t, r, "  ", "", nil)
	if w.Code != http.StatusBadRequest || fake.created != nil {
		t.Errorf("expected 400 without API call, got %d", w.Code)
	}
}

func TestCreateShowsAPIDetail(t *testing.T) {
	fake := &fakeAPI{createErr: &api.APIError{StatusCode: http.StatusUnprocessableEntity, Detail: "judul terlalu panjang"}}
	r := newTestEngine(t, fake, newLikes(t), userSession)

	w := submitReport(t, r, "Keran bocor", "", nil)
	if w.Code != http.StatusBadGateway || !strings.Contains(w.Body.String(), "judul terlalu panjang") {
		t.Errorf("expected API detail, got %d %q", w.Code, w.Body.String())
	}
}

// loggedInCookie logs in through the handler and returns the session cookie.
func loggedInCookie(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := postForm(r, "/login", url.Values{"username": {"budi"}, "password": {"pw"}}, false)
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie after login")
	}
	return cookies[len(cookies)-1]
}

func TestUnauthorizedPagesForceLogout(t *testing.T) {
	cases := []struct {
		name string
		path string
		htmx bool
		fake *fakeAPI
	}{
		{"feed page", "/", false, &fakeAPI{listErr: api.ErrUnauthorized}},
		{"mine tab", "/?tab=mine", false, &fakeAPI{listErr: api.ErrUnauthorized}},
		{"feed refresh", "/reports/feed", true, &fakeAPI{listErr: api.ErrUnauthorized}},
		{"detail", "/reports/5", false, &fakeAPI{getErr: api.ErrUnauthorized}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.fake.loginRes = &models.LoginResult{AccessToken: "jwt", Role: "user", Username: "budi"}
			r := newTestEngine(t, tc.fake, newLikes(t), userSession)
			cookie := loggedInCookie(t, r)

			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.AddCookie(cookie)
			if tc.htmx {
				req.Header.Set("HX-Request", "true")
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if tc.htmx {
				if got := w.Header().Get("HX-Redirect"); got != "/login" {
					t.Errorf("expected HX-Redirect /login, got %q", got)
				}
			} else if w.Code != http.StatusFound || w.Header().Get("Location") != "/login" {
				t.Errorf("expected redirect to /login, got %d %q", w.Code, w.Header().Get("Location"))
			}

			cookies := w.Result().Cookies()
			if len(cookies) == 0 {
				t.Fatal("expected the session cookie to be rewritten")
			}
			req = httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.AddCookie(cookies[len(cookies)-1])
			w = httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Body.String() != "" {
				t.Errorf("token must be cleared, still have %q", w.Body.String())
			}
		})
	}
}

func TestDetailNotFound(t *testing.T) {
	fake := &fakeAPI{getErr: &api.APIError{StatusCode: http.StatusNotFound, Detail: "Not Found"}}
	r := newTestEngine(t, fake, newLikes(t), session.Session{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/404", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Body.String(), "error.html|") {
		t.Errorf("expected error page, got %q", w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/abc", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("invalid id: expected 404, got %d", w.Code)
	}
}

func TestFeedNetworkErrorKeepsSession(t *testing.T) {
	fake := &fakeAPI{listErr: &api.NetworkError{Op: "GET /reports", Err: http.ErrHandlerTimeout}}
	r := newTestEngine(t, fake, newLikes(t), userSession)

	req := httptest.NewRequest(http.MethodGet, "/reports/feed", nil)
	req.Header.Set("HX-Request", "true")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Header().Get("HX-Redirect") != "" {
		t.Error("network errors must not log the user out")
	}
	if !strings.Contains(w.Body.String(), "Gagal memuat data") {
		t.Errorf("expected feed error, got %q", w.Body.String())
	}
}
