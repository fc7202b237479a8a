package fileutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// AtomicWriter stages writes into a temporary file and renames it into place
// on Commit. Abort (or a Commit failure) removes the temporary file, so no
// partial output is ever left behind. Abort after Commit is a no-op.
type AtomicWriter struct {
	dst  string
	tmp  *os.File
	done bool
}

// NewAtomicWriter prepares a temporary file next to dst.
func NewAtomicWriter(dst string) (*AtomicWriter, error) {
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create target directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(dst)+".partial-*")
	if err != nil {
		return nil, fmt.Errorf("create temporary file: %w", err)
	}
	return &AtomicWriter{dst: dst, tmp: tmp}, nil
}

func (w *AtomicWriter) Write(p []byte) (int, error) {
	return w.tmp.Write(p)
}

// Commit finalizes the temporary file and moves it to the destination.
func (w *AtomicWriter) Commit() error {
	if w.done {
		return nil
	}
	w.done = true
	tmpPath := w.tmp.Name()
	if err := w.tmp.Sync(); err != nil {
		w.tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("sync temporary file: %w", err)
	}
	if err := w.tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, w.dst); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("move into place: %w", err)
	}
	return nil
}

// Abort discards the staged contents.
func (w *AtomicWriter) Abort() {
	if w.done {
		return
	}
	w.done = true
	tmpPath := w.tmp.Name()
	w.tmp.Close()
	os.Remove(tmpPath)
}

// WriteAtomic streams r into dst via an AtomicWriter and returns the number
// of bytes written.
func WriteAtomic(dst string, r io.Reader) (int64, error) {
	writer, err := NewAtomicWriter(dst)
	if err != nil {
		return 0, err
	}
	written, err := io.Copy(writer, r)
	if err != nil {
		writer.Abort()
		return written, fmt.Errorf("write temporary file: %w", err)
	}
	if err := writer.Commit(); err != nil {
		return written, err
	}
	return written, nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
