package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

type cliTestEnv struct {
	backend    *stubBackend
	configPath string
	stateDir   string
	baseDir    string
}

// stubBackend mimics the rendering backend's five endpoints.
type stubBackend struct {
	mu     sync.Mutex
	calls  map[string]int
	fail   map[string]bool
	server *httptest.Server
}

func newStubBackend(t *testing.T) *stubBackend {
	t.Helper()
	b := &stubBackend{calls: map[string]int{}, fail: map[string]bool{}}
	b.server = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.server.Close)
	return b
}

func (b *stubBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.calls[r.URL.Path]++
	fail := b.fail[r.URL.Path]
	b.mu.Unlock()

	if fail {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "stub failure"})
		return
	}
	switch r.URL.Path {
	case "/download-certificates":
		_, _ = w.Write([]byte("PK\x03\x04stub-archive"))
	case "/health":
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "Server running", "env": "test"})
	default:
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "ok"})
	}
}

func (b *stubBackend) callCount(path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[path]
}

func (b *stubBackend) failPath(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail[path] = true
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("CERTGEN_API_URL", "")
	t.Setenv("CERTGEN_APP_PASSWORD", "")

	backend := newStubBackend(t)
	stateDir := filepath.Join(base, "state")

	configPath := filepath.Join(homeDir, ".config", "certgen", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := fmt.Sprintf(
		"[paths]\nstate_dir = %q\nlog_dir = %q\ndownload_dir = %q\n\n[api]\nbase_url = %q\n",
		stateDir,
		filepath.Join(base, "logs"),
		filepath.Join(base, "downloads"),
		backend.server.URL,
	)
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return &cliTestEnv{
		backend:    backend,
		configPath: configPath,
		stateDir:   stateDir,
		baseDir:    base,
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
