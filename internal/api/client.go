package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"facilitywatch/internal/models"
)

// Client talks to the Report API. It is safe for concurrent use.
// Requests are never retried: a failed call is reported to the user.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New returns a client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListReports fetches every report. sortBy is passed through as sort_by when set.
func (c *Client) ListReports(ctx context.Context, token, sortBy string) ([]models.Report, error) {
	path := "/reports"
	if sortBy != "" {
		path += "?" + url.Values{"sort_by": {sortBy}}.Encode()
	}
	var reports []models.Report
	if err := c.doJSON(ctx, http.MethodGet, path, token, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetReport fetches a single report.
func (c *Client) GetReport(ctx context.Context, token string, id int) (*models.Report, error) {
	var report models.Report
	if err := c.doJSON(ctx, http.MethodGet, reportPath(id), token, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// MyReports fetches the reports owned by the token's user.
func (c *Client) MyReports(ctx context.Context, token string) ([]models.Report, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	var reports []models.Report
	if err := c.doJSON(ctx, http.MethodGet, "/my-reports", token, nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// CreateReport submits a new report as multipart form data, the only
// encoding the API's form handler reads.
func (c *Client) CreateReport(ctx context.Context, token string, in models.NewReport) (*models.Report, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	fields := [][2]string{
		{"title", in.Title},
		{"facility", in.Facility},
		{"description", in.Description},
	}
	for _, f := range fields {
		if err := writer.WriteField(f[0], f[1]); err != nil {
			return nil, fmt.Errorf("write field %s: %w", f[0], err)
		}
	}

	if in.HasFile() {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(in.FileName)))
		contentType := in.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		h.Set("Content-Type", contentType)
		part, err := writer.CreatePart(h)
		if err != nil {
			return nil, fmt.Errorf("create file part: %w", err)
		}
		if _, err := part.Write(in.File); err != nil {
			return nil, fmt.Errorf("write file part: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/reports", token, &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var created models.Report
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateReport applies an admin triage change. This JSON form is the
// canonical contract; UpdateStatus is kept for older deployments.
func (c *Client) UpdateReport(ctx context.Context, token string, id int, update models.ReportUpdate) (*models.Report, error) {
	var updated models.Report
	if err := c.doJSON(ctx, http.MethodPut, reportPath(id), token, update, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateStatus is the legacy status-only variant: PUT /reports/{id}?new_status=.
func (c *Client) UpdateStatus(ctx context.Context, token string, id int, status string) (*models.Report, error) {
	path := reportPath(id) + "?" + url.Values{"new_status": {status}}.Encode()
	var updated models.Report
	if err := c.doJSON(ctx, http.MethodPut, path, token, nil, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteReport removes a report. Admin only.
func (c *Client) DeleteReport(ctx context.Context, token string, id int) error {
	return c.doJSON(ctx, http.MethodDelete, reportPath(id), token, nil, nil)
}

// Upvote increments the report's like counter.
func (c *Client) Upvote(ctx context.Context, token string, id int) error {
	return c.doJSON(ctx, http.MethodPost, reportPath(id)+"/upvote", token, nil, nil)
}

// Login exchanges credentials for a token. When the API leaves the username
// out of its answer the submitted one is used.
func (c *Client) Login(ctx context.Context, username, password string) (*models.LoginResult, error) {
	var result models.LoginResult
	body := models.LoginRequest{Username: username, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/login", "", body, &result); err != nil {
		return nil, err
	}
	if result.Username == "" {
		result.Username = username
	}
	return &result, nil
}

// Register creates an account. The API rejects requests without a valid secret code.
func (c *Client) Register(ctx context.Context, in models.RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/register", "", in, nil)
}

func reportPath(id int) string {
	return "/reports/" + strconv.Itoa(id)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func (c *Client) newRequest(ctx context.Context, method, path, token string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := c.newRequest(ctx, method, path, token, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	op := req.Method + " " + req.URL.Path

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(resp.StatusCode, data)}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

// errorDetail pulls "detail" out of the body. FastAPI validation errors put
// a list there instead of a string; those fall back to the status text.
func errorDetail(status int, data []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err == nil && len(body.Detail) > 0 {
		var s string
		if err := json.Unmarshal(body.Detail, &s); err == nil && s != "" {
			return s
		}
		var list []struct {
			Msg string `json:"msg"`
		}
		if err := json.Unmarshal(body.Detail, &list); err == nil && len(list) > 0 && list[0].Msg != "" {
			return list[0].Msg
		}
	}
	return http.StatusText(status)
}
