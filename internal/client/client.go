// Package client implements the Reocities HTTP API client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/reocities/cli/internal/version"
	"github.com/reocities/cli/pkg/models"
)

const (
	// DefaultBaseURL is the production Reocities endpoint.
	DefaultBaseURL = "https://reocities.xyz"

	// MaxBulkFiles is the server's limit on file parts per bulk upload.
	MaxBulkFiles = 10
)

// Client is a lightweight client for the Reocities HTTP API.
type Client struct {
	BaseURL    string
	httpClient *http.Client
	apiKey     string
	userAgent  string
}

// New constructs a client with an explicit base URL and API key. An empty
// key produces a client that can only serve unauthenticated calls.
func New(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		userAgent: "reocities-cli/" + version.Version,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// HasKey reports whether an API key is configured.
func (c *Client) HasKey() bool { return c.apiKey != "" }

// MaskedKey returns a redacted form of the API key for display.
func (c *Client) MaskedKey() string {
	if c.apiKey == "" {
		return ""
	}
	if len(c.apiKey) <= 4 {
		return "****"
	}
	return "****" + c.apiKey[len(c.apiKey)-4:]
}

// APIError is a failed API call: a non-2xx response, or a 2xx response
// whose body reports success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
	}
	return "api error: " + e.Message
}

// BulkFile pairs a local file with the path it should take on the site.
type BulkFile struct {
	LocalPath  string
	RemotePath string
}

func (c *Client) newRequest(ctx context.Context, method, pathWithQuery string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+pathWithQuery, body)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}

func (c *Client) doJSON(req *http.Request, out any) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// read up to 1KB of body for error message
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{StatusCode: resp.StatusCode, Message: apiMessage(errBody, resp.Status)}
	}
	if out == nil {
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	return dec.Decode(out)
}

func (c *Client) doForm(ctx context.Context, method, path string, form url.Values, out any) error {
	req, err := c.newRequest(ctx, method, path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.doJSON(req, out)
}

// apiMessage extracts the error or message field from a response body,
// falling back to the raw body and then the HTTP status line.
func apiMessage(body []byte, status string) string {
	var envelope models.APIStatus
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	if s := strings.TrimSpace(string(body)); s != "" {
		return s
	}
	return status
}

// UploadFile uploads a single local file. The remote name is the file's
// base name, placed under folder when one is given.
func (c *Client) UploadFile(ctx context.Context, localPath, folder string, overwrite bool) (*models.UploadResult, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer func() { _ = f.Close() }()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := createFilePart(w, "file", filepath.Base(localPath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", localPath, err)
	}
	if err := writeUploadFields(w, folder, overwrite); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var res models.UploadResult
	if err := c.doJSON(req, &res); err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, &APIError{Message: res.FailureMessage()}
	}
	return &res, nil
}

// UploadBulk uploads up to MaxBulkFiles files in one request. Each part's
// filename carries the slash-separated remote path, so files land in their
// original layout. Per-file outcomes are reported in the result; an error
// means the batch as a whole was rejected.
func (c *Client) UploadBulk(ctx context.Context, files []BulkFile, folder string, overwrite bool) (*models.BulkUploadResult, error) {
	if len(files) == 0 {
		return nil, errors.New("no files to upload")
	}
	if len(files) > MaxBulkFiles {
		return nil, fmt.Errorf("bulk upload accepts at most %d files, got %d", MaxBulkFiles, len(files))
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, bf := range files {
		if err := appendBulkPart(w, bf); err != nil {
			return nil, err
		}
	}
	if err := writeUploadFields(w, folder, overwrite); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/api/upload/bulk", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var res models.BulkUploadResult
	if err := c.doJSON(req, &res); err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, &APIError{Message: res.FailureMessage()}
	}
	return &res, nil
}

func appendBulkPart(w *multipart.Writer, bf BulkFile) error {
	f, err := os.Open(bf.LocalPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", bf.LocalPath, err)
	}
	defer func() { _ = f.Close() }()

	part, err := createFilePart(w, "files[]", bf.RemotePath)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("failed to read %s: %w", bf.LocalPath, err)
	}
	return nil
}

// ListFiles returns the files on the site, optionally scoped to a folder.
func (c *Client) ListFiles(ctx context.Context, folder string, recursive bool) ([]models.RemoteFile, error) {
	q := url.Values{}
	if folder != "" {
		q.Set("folder", folder)
	}
	if recursive {
		q.Set("recursive", "true")
	}
	path := "/api/files"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var res models.ListResult
	if err := c.doJSON(req, &res); err != nil {
		return nil, err
	}
	if !res.Success {
		return nil, &APIError{Message: res.FailureMessage()}
	}
	return res.Files, nil
}

// DeleteFile removes one remote file by path.
func (c *Client) DeleteFile(ctx context.Context, path string) error {
	form := url.Values{"path": {path}}
	var res models.APIStatus
	if err := c.doForm(ctx, http.MethodDelete, "/api/files", form, &res); err != nil {
		return err
	}
	if !res.Success {
		return &APIError{Message: res.FailureMessage()}
	}
	return nil
}

// CreateFolder creates a remote folder, nested under parent when given.
func (c *Client) CreateFolder(ctx context.Context, name, parent string) error {
	form := url.Values{"name": {name}}
	if parent != "" {
		form.Set("parent", parent)
	}
	var res models.APIStatus
	if err := c.doForm(ctx, http.MethodPost, "/api/folders", form, &res); err != nil {
		return err
	}
	if !res.Success {
		return &APIError{Message: res.FailureMessage()}
	}
	return nil
}

// Verify checks that the configured API key is accepted by the service.
func (c *Client) Verify(ctx context.Context) error {
	_, err := c.ListFiles(ctx, "", false)
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// createFilePart adds a file part with a content type derived from the
// filename extension. multipart.CreateFormFile would force
// application/octet-stream for everything.
func createFilePart(w *multipart.Writer, fieldName, fileName string) (io.Writer, error) {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(fieldName), quoteEscaper.Replace(fileName)))
	h.Set("Content-Type", contentTypeFor(fileName))
	return w.CreatePart(h)
}

func contentTypeFor(fileName string) string {
	if ct := mime.TypeByExtension(filepath.Ext(fileName)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func writeUploadFields(w *multipart.Writer, folder string, overwrite bool) error {
	if err := w.WriteField("overwrite", strconv.FormatBool(overwrite)); err != nil {
		return err
	}
	if folder != "" {
		if err := w.WriteField("folder", folder); err != nil {
			return err
		}
	}
	return nil
}
