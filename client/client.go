// Package client is a small HTTP client for the Akeray API, used by CLI
// tooling to trigger document exports. Authentication is an explicit
// Session value passed per call rather than process-wide state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Session carries the authenticated user and the bearer token returned by
// Login. Callers hold as many sessions as they need; the client itself is
// stateless.
type Session struct {
	User  User
	Token string
}

// User is the identity block returned by the login endpoint.
type User struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
}

// Client talks to a running Akeray API server.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Login authenticates and returns a session for subsequent calls.
func (c *Client) Login(ctx context.Context, email, password, role string) (*Session, error) {
	body, err := json.Marshal(map[string]string{
		"email":    email,
		"password": password,
		"role":     role,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}
	var out struct {
		Token string `json:"token"`
		User  User   `json:"user"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	return &Session{User: out.User, Token: out.Token}, nil
}

// Document is an exported file streamed from the server. Filename comes
// from the Content-Disposition header when present.
type Document struct {
	Filename    string
	ContentType string
	Body        io.ReadCloser
}

// SaveTo writes the document into dir using the server-provided filename
// and closes the body. It returns the full path written.
func (d *Document) SaveTo(dir string) (string, error) {
	defer d.Body.Close()
	if d.Filename == "" {
		return "", fmt.Errorf("document has no filename")
	}
	path := filepath.Join(dir, filepath.Base(d.Filename))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, d.Body); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// ExportPropertiesPDF fetches the property portfolio report as a PDF.
func (c *Client) ExportPropertiesPDF(ctx context.Context, s *Session, w io.Writer) error {
	doc, err := c.download(ctx, s, "/export/properties/pdf")
	if err != nil {
		return err
	}
	defer doc.Body.Close()
	_, err = io.Copy(w, doc.Body)
	return err
}

// ExportPropertiesExcel fetches the property portfolio report as xlsx.
func (c *Client) ExportPropertiesExcel(ctx context.Context, s *Session, w io.Writer) error {
	doc, err := c.download(ctx, s, "/export/properties/excel")
	if err != nil {
		return err
	}
	defer doc.Body.Close()
	_, err = io.Copy(w, doc.Body)
	return err
}

// ExportLeasePDF fetches the report for a single lease.
func (c *Client) ExportLeasePDF(ctx context.Context, s *Session, leaseID uint, w io.Writer) error {
	doc, err := c.download(ctx, s, fmt.Sprintf("/export/leases/%d/pdf", leaseID))
	if err != nil {
		return err
	}
	defer doc.Body.Close()
	_, err = io.Copy(w, doc.Body)
	return err
}

// Download fetches an export endpoint and returns the document with its
// server-provided filename, leaving the body open for the caller.
func (c *Client) Download(ctx context.Context, s *Session, path string) (*Document, error) {
	return c.download(ctx, s, path)
}

func (c *Client) download(ctx context.Context, s *Session, path string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if s != nil && s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		return nil, apiError(resp)
	}
	return &Document{
		Filename:    dispositionFilename(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        resp.Body,
	}, nil
}

func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}

func apiError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
