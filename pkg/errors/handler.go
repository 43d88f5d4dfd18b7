package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// stackDepth bounds the frames kept in a PanicError stack trace.
const stackDepth = 32

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// SetHandler replaces the process-wide handler that receives reported
// widget errors and recovered panics. Nil restores the LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	handler = h
	handlerMu.Unlock()
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// Report stamps err and hands it to the handler. Nil is ignored.
func Report(err *WidgetError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	getHandler().HandleError(err)
}

// ReportPanic stamps err and hands it to the handler. Nil is ignored.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	getHandler().HandlePanic(err)
}

// Recover reports a panic in progress as a PanicError for op and stops it.
// It must be called directly by a deferred statement:
//
//	defer errors.Recover("segmented.Control.notify")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line" entry
// per frame, starting above CaptureStack and its immediate caller.
func CaptureStack() string {
	pcs := make([]uintptr, stackDepth)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}
	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for frame, more := frames.Next(); ; frame, more = frames.Next() {
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			break
		}
	}
	return b.String()
}
