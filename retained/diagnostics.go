package retained

import (
	"fmt"
	"log"
)

var layoutDebug = false // Set to true for solver tracing

var debugLogger *log.Logger

// SetDebug toggles solver tracing. A nil logger writes through the standard
// logger.
func SetDebug(enabled bool, logger *log.Logger) {
	layoutDebug = enabled
	debugLogger = logger
}

func debugLog(format string, args ...interface{}) {
	if !layoutDebug {
		return
	}
	if debugLogger != nil {
		debugLogger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Severity classifies a Diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Diagnostic is a recoverable condition surfaced by a solve.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`

	// Items removed from the container by the solve that raised this.
	Dropped []*Item `json:"-"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// DiagnosticSink receives diagnostics from the container that raised them.
// It is called synchronously, after geometry has been committed.
type DiagnosticSink func(Diagnostic)

// LogSink writes diagnostics to l, or to the standard logger when l is nil.
func LogSink(l *log.Logger) DiagnosticSink {
	return func(d Diagnostic) {
		if l == nil {
			log.Printf("[layout] %s", d)
			return
		}
		l.Printf("[layout] %s", d)
	}
}

// CollectSink appends every diagnostic to *dst.
func CollectSink(dst *[]Diagnostic) DiagnosticSink {
	return func(d Diagnostic) {
		*dst = append(*dst, d)
	}
}
