package testsupport

import (
	"path/filepath"
	"testing"

	"certgen/internal/config"
	"certgen/internal/journal"
)

// MustOpenJournal opens a journal.Store under the config's state directory
// and registers cleanup.
func MustOpenJournal(t testing.TB, cfg *config.Config) *journal.Store {
	t.Helper()

	store, err := journal.Open(filepath.Join(cfg.Paths.StateDir, "journal.db"))
	if err != nil {
		t.Fatalf("journal.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
