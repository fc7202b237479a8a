package main

import (
	"encoding/json"
	"io"
	"time"

	"certgen/internal/journal"
)

// writeJSON encodes v as indented JSON to the given writer.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type entryJSON struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	Status     string     `json:"status"`
	Message    string     `json:"message"`
	Stage      string     `json:"stage,omitempty"`
	StartedAt  time.Time  `json:"startedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	DurationMS int64      `json:"durationMs,omitempty"`
}

func entryView(e journal.Entry) entryJSON {
	view := entryJSON{
		ID:         e.ID,
		Kind:       string(e.Kind),
		Status:     e.Status,
		Message:    e.Message,
		Stage:      e.Stage,
		StartedAt:  e.StartedAt,
		FinishedAt: e.FinishedAt,
	}
	if e.FinishedAt != nil {
		view.DurationMS = e.Duration().Milliseconds()
	}
	return view
}
