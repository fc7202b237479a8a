package operation

import "strings"

// Rendering defaults applied when the operator leaves a field unset. They
// match the backend's own fallbacks so an empty input renders identically
// whether the default is resolved locally or server-side.
const (
	DefaultFontSize = 90
	DefaultColor    = "#000000"
	DefaultDPI      = 600
)

// Input is the full payload of one workflow invocation. The orchestrator
// reads a snapshot at invocation time and never mutates the caller's value.
type Input struct {
	// ParticipantsPath is the roster CSV on local disk. Required.
	ParticipantsPath string
	// TemplatePath is the certificate template image on local disk. Required.
	TemplatePath string
	// EmailBody is an optional message template; {name} is replaced per
	// recipient by the backend.
	EmailBody string

	// X and Y position the name on the template. Nil means the backend
	// auto-centers; the orchestrator never resolves placement itself.
	X        *int
	Y        *int
	FontSize int
	Color    string
	Outline  bool
	DPI      int

	// SenderEmail is required only when the send stage runs.
	SenderEmail    string
	SenderPassword string
	CustomSubject  string

	// SkipSend stops the pipeline after generation, for operators who only
	// want the rendered files. DryRun runs the send stage without actually
	// dispatching mail.
	SkipSend bool
	DryRun   bool
}

// Normalize fills zero-valued formatting fields with the rendering defaults
// and trims identity fields. It does not validate.
func (in *Input) Normalize() {
	if in.FontSize <= 0 {
		in.FontSize = DefaultFontSize
	}
	in.Color = strings.TrimSpace(in.Color)
	if in.Color == "" {
		in.Color = DefaultColor
	}
	if in.DPI <= 0 {
		in.DPI = DefaultDPI
	}
	in.ParticipantsPath = strings.TrimSpace(in.ParticipantsPath)
	in.TemplatePath = strings.TrimSpace(in.TemplatePath)
	in.SenderEmail = strings.TrimSpace(in.SenderEmail)
	in.CustomSubject = strings.TrimSpace(in.CustomSubject)
}

// Snapshot returns a copy the orchestrator can hold across stages without
// observing later edits by the caller.
func (in Input) Snapshot() Input {
	cp := in
	if in.X != nil {
		x := *in.X
		cp.X = &x
	}
	if in.Y != nil {
		y := *in.Y
		cp.Y = &y
	}
	return cp
}
