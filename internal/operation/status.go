package operation

// StatusType enumerates the four user-visible workflow states.
type StatusType string

const (
	StatusIdle    StatusType = "idle"
	StatusLoading StatusType = "loading"
	StatusSuccess StatusType = "success"
	StatusError   StatusType = "error"
)

// Status pairs the active state with its display message. Exactly one value
// is active at a time; only the orchestrator writes it.
type Status struct {
	Type    StatusType
	Message string
}

// Idle is the status a fresh orchestrator starts in.
func Idle() Status {
	return Status{Type: StatusIdle}
}

// Loading builds an in-progress status with the given display message.
func Loading(message string) Status {
	return Status{Type: StatusLoading, Message: message}
}

// Success builds a terminal success status.
func Success(message string) Status {
	return Status{Type: StatusSuccess, Message: message}
}

// Error builds a terminal error status.
func Error(message string) Status {
	return Status{Type: StatusError, Message: message}
}

// Terminal reports whether the status ends an invocation.
func (s Status) Terminal() bool {
	return s.Type == StatusSuccess || s.Type == StatusError
}
