package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if body["password"] != "secret123" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid_credentials"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-123",
			"user":  map[string]any{"id": 7, "email": body["email"], "role": body["role"], "name": "Admin"},
		})
	})
	mux.HandleFunc("GET /export/properties/pdf", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="properties-report-1750000000000.pdf"`)
		w.Write([]byte("%PDF-1.4 stub"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientLogin(t *testing.T) {
	srv := newStubServer(t)
	c := New(srv.URL)

	session, err := c.Login(context.Background(), "admin@akeray.et", "secret123", "admin")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, uint(7), session.User.ID)
	assert.Equal(t, "admin", session.User.Role)
}

func TestClientLoginRejected(t *testing.T) {
	srv := newStubServer(t)
	c := New(srv.URL)

	_, err := c.Login(context.Background(), "admin@akeray.et", "wrong", "admin")
	require.Error(t, err)
	assert.EqualError(t, err, "server returned 401: invalid_credentials")
}

func TestClientExportPropertiesPDF(t *testing.T) {
	srv := newStubServer(t)
	c := New(srv.URL)
	session := &Session{Token: "tok-123"}

	var buf bytes.Buffer
	require.NoError(t, c.ExportPropertiesPDF(context.Background(), session, &buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestClientExportRequiresSession(t *testing.T) {
	srv := newStubServer(t)
	c := New(srv.URL)

	var buf bytes.Buffer
	err := c.ExportPropertiesPDF(context.Background(), nil, &buf)
	require.Error(t, err)
}

func TestClientDownloadSaveTo(t *testing.T) {
	srv := newStubServer(t)
	c := New(srv.URL)
	session := &Session{Token: "tok-123"}

	doc, err := c.Download(context.Background(), session, "/export/properties/pdf")
	require.NoError(t, err)
	assert.Equal(t, "properties-report-1750000000000.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)

	dir := t.TempDir()
	path, err := doc.SaveTo(dir)
	require.NoError(t, err)
	assert.Equal(t, doc.Filename, filepath.Base(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
