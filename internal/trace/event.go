package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	// KindSpanBegin marks the start of a logical operation.
	KindSpanBegin Kind = iota + 1
	// KindSpanEnd marks the end of a logical operation.
	KindSpanEnd
	// KindPoint represents an instant event.
	KindPoint
)

// String returns the string representation of Kind.
func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Scope indicates the granularity of the event.
// Lower values are coarser.
type Scope uint8

const (
	// ScopeSession covers one whole read-solve-print cycle.
	ScopeSession Scope = iota + 1
	// ScopeStep covers prompt/read/solve/render.
	ScopeStep
	// ScopeDetail covers token-level events.
	ScopeDetail
	// ScopeFailure marks read failures; emitted from LevelError up.
	ScopeFailure
)

// String returns the string representation of Scope.
func (s Scope) String() string {
	switch s {
	case ScopeSession:
		return "session"
	case ScopeStep:
		return "step"
	case ScopeDetail:
		return "detail"
	case ScopeFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time         // wall-clock timestamp
	Seq      uint64            // sequence number, assigned on emit
	Kind     Kind              // event kind
	Scope    Scope             // granularity level
	SpanID   uint64            // unique span identifier
	ParentID uint64            // parent span (0 if root)
	Name     string            // e.g. "session", "read:a", "solve"
	Detail   string            // optional detail message
	Extra    map[string]string // extensible key-value pairs
}
