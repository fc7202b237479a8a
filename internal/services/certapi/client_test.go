package certapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestUploadFilesSendsMultipart(t *testing.T) {
	var gotParticipants, gotTemplate, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/upload-files" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		readPart := func(field string) string {
			file, _, err := r.FormFile(field)
			if err != nil {
				t.Fatalf("missing %s part: %v", field, err)
			}
			defer file.Close()
			buf := &bytes.Buffer{}
			if _, err := buf.ReadFrom(file); err != nil {
				t.Fatalf("read %s part: %v", field, err)
			}
			return buf.String()
		}
		gotParticipants = readPart("participants")
		gotTemplate = readPart("template")
		gotBody = r.FormValue("emailBody")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.UploadFiles(context.Background(), UploadRequest{
		ParticipantsPath: writeTempFile(t, "participants.csv", "Ada Lovelace\nAlan Turing\n"),
		TemplatePath:     writeTempFile(t, "template.png", "not-a-real-png"),
		EmailBody:        "Hello {name}!",
	})
	if err != nil {
		t.Fatalf("UploadFiles returned error: %v", err)
	}
	if gotParticipants != "Ada Lovelace\nAlan Turing\n" {
		t.Fatalf("unexpected participants payload: %q", gotParticipants)
	}
	if gotTemplate != "not-a-real-png" {
		t.Fatalf("unexpected template payload: %q", gotTemplate)
	}
	if gotBody != "Hello {name}!" {
		t.Fatalf("unexpected email body: %q", gotBody)
	}
}

func TestUploadFilesMissingFile(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", time.Second)
	err := client.UploadFiles(context.Background(), UploadRequest{
		ParticipantsPath: filepath.Join(t.TempDir(), "missing.csv"),
		TemplatePath:     filepath.Join(t.TempDir(), "missing.png"),
	})
	if err == nil {
		t.Fatal("expected error for missing participants file")
	}
}

func TestGenerateCertificatesPayload(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/generate-certificates" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Fatalf("unexpected content type %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	x, y := 1000, 707
	client := NewClient(server.URL, time.Second)
	err := client.GenerateCertificates(context.Background(), GenerateRequest{
		X: &x, Y: &y, FontSize: 90, Color: "#000000", Outline: true, DPI: 600,
	})
	if err != nil {
		t.Fatalf("GenerateCertificates returned error: %v", err)
	}
	if got["x"] != float64(1000) || got["y"] != float64(707) {
		t.Fatalf("unexpected coordinates: %+v", got)
	}
	if got["fontsize"] != float64(90) || got["color"] != "#000000" || got["outline"] != true || got["dpi"] != float64(600) {
		t.Fatalf("unexpected formatting payload: %+v", got)
	}
}

func TestGenerateCertificatesNilCoordinates(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	if err := client.GenerateCertificates(context.Background(), GenerateRequest{FontSize: 90, Color: "#000000", DPI: 600}); err != nil {
		t.Fatalf("GenerateCertificates returned error: %v", err)
	}
	// Absent coordinates serialize as null so the backend auto-centers.
	if v, present := got["x"]; !present || v != nil {
		t.Fatalf("expected x to be null, got %v", got["x"])
	}
}

func TestSendEmailsPayload(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/send-emails" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.SendEmails(context.Background(), SendRequest{
		SenderEmail:    "ops@example.com",
		SenderPassword: "app-password",
		CustomSubject:  "Congrats {name}",
		DryRun:         false,
	})
	if err != nil {
		t.Fatalf("SendEmails returned error: %v", err)
	}
	if got["senderEmail"] != "ops@example.com" || got["senderPassword"] != "app-password" {
		t.Fatalf("unexpected sender payload: %+v", got)
	}
	if got["customSubject"] != "Congrats {name}" || got["dryRun"] != false {
		t.Fatalf("unexpected delivery payload: %+v", got)
	}
}

func TestDownloadCertificatesStreams(t *testing.T) {
	archive := []byte("PK\x03\x04 pretend zip contents")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/download-certificates" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write(archive)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	buf := &bytes.Buffer{}
	written, err := client.DownloadCertificates(context.Background(), buf)
	if err != nil {
		t.Fatalf("DownloadCertificates returned error: %v", err)
	}
	if written != int64(len(archive)) || !bytes.Equal(buf.Bytes(), archive) {
		t.Fatalf("unexpected archive bytes: wrote %d", written)
	}
}

func TestHealthDecodesStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "Server running", "env": "development"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	status, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("Health returned error: %v", err)
	}
	if status.Status != "Server running" || status.Env != "development" {
		t.Fatalf("unexpected health payload: %+v", status)
	}
}

func TestStatusErrorSurfacesCodeAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Certificate generation failed"})
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.GenerateCertificates(context.Background(), GenerateRequest{FontSize: 90, Color: "#000000", DPI: 600})
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
	code, ok := StatusCodeOf(err)
	if !ok || code != http.StatusInternalServerError {
		t.Fatalf("expected status 500 in error, got %v (%v)", code, err)
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T", err)
	}
}
