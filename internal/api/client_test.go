package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"facilitywatch/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return New(server.URL + "/")
}

func TestListReportsSendsSortAndToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/reports" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("sort_by"); got != "likes" {
			t.Errorf("expected sort_by=likes, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("expected bearer token, got %q", got)
		}
		w.Write([]byte(`[{"id":1,"title":"A","status":"Selesai","likes":2},{"id":2,"title":"B","status":"Pending"}]`))
	})

	reports, err := c.ListReports(context.Background(), "abc", "likes")
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(reports) != 2 || reports[0].Likes != 2 || reports[1].Status != "Pending" {
		t.Errorf("unexpected reports: %+v", reports)
	}
}

func TestGuestRequestsCarryNoAuthorization(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Errorf("guest request should not send Authorization")
		}
		if r.URL.RawQuery != "" {
			t.Errorf("expected no query, got %q", r.URL.RawQuery)
		}
		w.Write([]byte(`[]`))
	})

	reports, err := c.ListReports(context.Background(), "", "")
	if err != nil {
		t.Fatalf("ListReports failed: %v", err)
	}
	if len(reports) != 0 {
		t.Errorf("expected empty list, got %d", len(reports))
	}
}

func TestUnauthorizedIsSentinel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Token expired"}`))
	})

	_, err := c.MyReports(context.Background(), "stale")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	if _, err := c.MyReports(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("missing token should be unauthorized without a request, got %v", err)
	}
}

func TestAPIErrorCarriesDetail(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/reports/404":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"Laporan tidak ditemukan"}`))
		case "/register":
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"detail":[{"loc":["body","password"],"msg":"field required"}]}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	_, err := c.GetReport(context.Background(), "", 404)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Detail != "Laporan tidak ditemukan" || !IsNotFound(err) {
		t.Errorf("unexpected error %+v", apiErr)
	}

	err = c.Register(context.Background(), models.RegisterRequest{Username: "x"})
	if got := Message(err, "fallback"); got != "field required" {
		t.Errorf("expected validation message, got %q", got)
	}

	err = c.DeleteReport(context.Background(), "t", 9)
	if got := Message(err, "fallback"); got != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("expected status text, got %q", got)
	}
}

func TestNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := New(url).ListReports(context.Background(), "", "")
	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if Message(err, "") != "Gagal terhubung ke server." {
		t.Errorf("unexpected message %q", Message(err, ""))
	}
}

func TestCreateReportMultipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/reports" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if r.FormValue("title") != "Keran bocor" || r.FormValue("facility") != "Toilet" {
			t.Errorf("unexpected fields %v", r.MultipartForm.Value)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("expected file part: %v", err)
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if header.Filename != "bukti.jpg" || string(data) != "jpegdata" {
			t.Errorf("unexpected file %s %q", header.Filename, data)
		}
		if header.Header.Get("Content-Type") != "image/jpeg" {
			t.Errorf("unexpected content type %s", header.Header.Get("Content-Type"))
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":12,"title":"Keran bocor","status":"Pending"}`))
	})

	created, err := c.CreateReport(context.Background(), "tok", models.NewReport{
		Title:       "Keran bocor",
		Facility:    "Toilet",
		Description: "Air menetes terus",
		FileName:    "bukti.jpg",
		ContentType: "image/jpeg",
		File:        []byte("jpegdata"),
	})
	if err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}
	if created.ID != 12 {
		t.Errorf("expected id 12, got %d", created.ID)
	}
}

func TestCreateReportWithoutFile(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if _, _, err := r.FormFile("file"); err == nil {
			t.Errorf("no file part expected")
		}
		w.Write([]byte(`{"message":"report created"}`))
	})

	if _, err := c.CreateReport(context.Background(), "tok", models.NewReport{Title: "t", Facility: "f", Description: "d"}); err != nil {
		t.Fatalf("CreateReport failed: %v", err)
	}
}

func TestUpdateVariants(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/reports/5" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if status := r.URL.Query().Get("new_status"); status != "" {
			w.Write([]byte(`{"id":5,"status":"` + status + `"}`))
			return
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON body")
		}
		var update models.ReportUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.Write([]byte(`{"id":5,"status":"` + update.Status + `","priority":"` + update.Priority + `","admin_note":"` + update.AdminNote + `"}`))
	})

	updated, err := c.UpdateReport(context.Background(), "adm", 5, models.ReportUpdate{Status: "Proses", Priority: "Critical", AdminNote: "teknisi dikirim"})
	if err != nil {
		t.Fatalf("UpdateReport failed: %v", err)
	}
	if updated.Priority != "Critical" || updated.AdminNote != "teknisi dikirim" {
		t.Errorf("unexpected update result %+v", updated)
	}

	updated, err = c.UpdateStatus(context.Background(), "adm", 5, "Selesai")
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != "Selesai" {
		t.Errorf("expected Selesai, got %s", updated.Status)
	}
}

func TestLoginFallsBackToSubmittedUsername(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Username != "budi" || req.Password != "rahasia" {
			t.Errorf("unexpected credentials %+v", req)
		}
		w.Write([]byte(`{"access_token":"jwt","role":"user"}`))
	})

	res, err := c.Login(context.Background(), "budi", "rahasia")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if res.AccessToken != "jwt" || res.Username != "budi" || res.Role != "user" {
		t.Errorf("unexpected login result %+v", res)
	}
}

func TestUpvote(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = r.Method == http.MethodPost && r.URL.Path == "/reports/3/upvote"
		w.Write([]byte(`{"likes":4}`))
	})
	if err := c.Upvote(context.Background(), "tok", 3); err != nil {
		t.Fatalf("Upvote failed: %v", err)
	}
	if !called {
		t.Error("upvote endpoint not called")
	}
}

func TestThumbnailURL(t *testing.T) {
	tests := map[string]string{
		"":                                  "",
		"https://cdn/x/photo.png":           "https://cdn/x/photo_thumb.jpg",
		"https://cdn/x/photo.JPEG":          "https://cdn/x/photo_thumb.jpg",
		"https://cdn/x/photo_thumb.jpg":     "https://cdn/x/photo_thumb.jpg",
		"https://cdn/x/doc.pdf":             "https://cdn/x/doc.pdf",
		"https://cdn/x/photo.png?sig=abc":   "https://cdn/x/photo.png?sig=abc",
		"data:image/png;base64,iVBORw0KGgo": "data:image/png;base64,iVBORw0KGgo",
	}
	for in, want := range tests {
		if got := ThumbnailURL(in); got != want {
			t.Errorf("ThumbnailURL(%q) = %q, want %q", in, got, want)
		}
	}
}
