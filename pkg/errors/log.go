package errors

import (
	"github.com/go-logr/logr"

	"github.com/go-drift/segmented/pkg/logger"
)

// LogHandler is an ErrorHandler that writes errors through a logr.Logger.
type LogHandler struct {
	// Logger receives the entries. Nil means the global logger.
	Logger *logr.Logger
	// Verbose adds stack traces to panic entries.
	Verbose bool
}

func (h *LogHandler) log() logr.Logger {
	if h.Logger != nil {
		return *h.Logger
	}
	return *logger.GetGlobalLogger()
}

// HandleError logs a WidgetError.
func (h *LogHandler) HandleError(err *WidgetError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "kind", err.Kind.String()}
	if err.Index >= 0 {
		kv = append(kv, "index", err.Index)
	}
	h.log().Error(err.Err, "widget error", kv...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	kv := []any{"op", err.Op, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		kv = append(kv, "stack", err.StackTrace)
	}
	h.log().Error(err, "recovered panic", kv...)
}
