package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile creates the target path with the given content, creating parent
// directories as needed.
func WriteFile(t testing.TB, path string, content []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// RosterFiles writes a minimal participants CSV and template image pair into
// dir and returns their paths.
func RosterFiles(t testing.TB, dir string) (participants, template string) {
	t.Helper()

	participants = filepath.Join(dir, "participants.csv")
	template = filepath.Join(dir, "template.png")
	WriteFile(t, participants, []byte("Ada Lovelace\nGrace Hopper\n"))
	WriteFile(t, template, []byte("\x89PNG\r\n\x1a\n"))
	return participants, template
}
