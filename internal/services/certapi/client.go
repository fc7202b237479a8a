package certapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	pathUpload   = "/upload-files"
	pathGenerate = "/generate-certificates"
	pathSend     = "/send-emails"
	pathDownload = "/download-certificates"
	pathHealth   = "/health"

	defaultHTTPTimeout = 120 * time.Second

	userAgent = "certgen/0.1.0"
)

// HTTPDoer describes the HTTP client used by the backend client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the certificate backend endpoints.
type Client struct {
	baseURL    string
	httpClient HTTPDoer
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs a backend client for the given origin.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	client := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// UploadRequest carries the multipart payload for the ingestion endpoint.
type UploadRequest struct {
	ParticipantsPath string
	TemplatePath     string
	EmailBody        string
}

// UploadFiles transmits the participant roster, template image, and optional
// email body to the ingestion endpoint.
func (c *Client) UploadFiles(ctx context.Context, req UploadRequest) error {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := attachFile(writer, "participants", req.ParticipantsPath); err != nil {
		return err
	}
	if err := attachFile(writer, "template", req.TemplatePath); err != nil {
		return err
	}
	if strings.TrimSpace(req.EmailBody) != "" {
		if err := writer.WriteField("emailBody", req.EmailBody); err != nil {
			return fmt.Errorf("write emailBody field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalize multipart payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathUpload, body)
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("User-Agent", userAgent)

	return c.do(httpReq, pathUpload, nil)
}

// GenerateRequest carries placement and formatting parameters for rendering.
// Nil coordinates mean the backend auto-centers the name.
type GenerateRequest struct {
	X        *int   `json:"x"`
	Y        *int   `json:"y"`
	FontSize int    `json:"fontsize"`
	Color    string `json:"color"`
	Outline  bool   `json:"outline"`
	DPI      int    `json:"dpi"`
}

// GenerateCertificates asks the backend to render certificates from the
// previously uploaded files.
func (c *Client) GenerateCertificates(ctx context.Context, req GenerateRequest) error {
	return c.postJSON(ctx, pathGenerate, req)
}

// SendRequest carries sender identity and delivery options for dispatch.
type SendRequest struct {
	SenderEmail    string `json:"senderEmail"`
	SenderPassword string `json:"senderPassword"`
	CustomSubject  string `json:"customSubject"`
	DryRun         bool   `json:"dryRun"`
}

// SendEmails asks the backend to email the generated certificates.
func (c *Client) SendEmails(ctx context.Context, req SendRequest) error {
	return c.postJSON(ctx, pathSend, req)
}

// DownloadCertificates streams the generated archive into w and returns the
// number of bytes written.
func (c *Client) DownloadCertificates(ctx context.Context, w io.Writer) (int64, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathDownload, nil)
	if err != nil {
		return 0, fmt.Errorf("build download request: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("download certificates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return 0, newStatusError(pathDownload, resp)
	}

	written, err := io.Copy(w, resp.Body)
	if err != nil {
		return written, fmt.Errorf("stream archive: %w", err)
	}
	return written, nil
}

// HealthStatus is the decoded payload of the diagnostic endpoint.
type HealthStatus struct {
	Status string `json:"status"`
	Env    string `json:"env"`
}

// Health calls the diagnostic endpoint. The result is observational only.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var status HealthStatus

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+pathHealth, nil)
	if err != nil {
		return status, fmt.Errorf("build health request: %w", err)
	}
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return status, fmt.Errorf("health check: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return status, newStatusError(pathHealth, resp)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, 4096)).Decode(&status); err != nil {
		return status, fmt.Errorf("decode health response: %w", err)
	}
	return status, nil
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) error {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", path, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)

	return c.do(httpReq, path, nil)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newStatusError(path, resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func attachFile(writer *multipart.Writer, field, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s file: %w", field, err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create %s form part: %w", field, err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("copy %s contents: %w", field, err)
	}
	return nil
}
