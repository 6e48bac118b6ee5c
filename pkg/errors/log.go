package errors

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogTag is attached to every log line written by LogHandler.
const LogTag = "HexagonImageView"

// LogHandler is an ErrorHandler that writes errors through zerolog.
type LogHandler struct {
	// Logger receives the events. Nil uses the global zerolog logger.
	Logger *zerolog.Logger
	// Verbose adds stack traces to the output.
	Verbose bool
}

func (h *LogHandler) logger() *zerolog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return &log.Logger
}

// HandleError logs a ViewError at error level.
func (h *LogHandler) HandleError(err *ViewError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().
		Str("tag", LogTag).
		Str("op", err.Op).
		Stringer("kind", err.Kind).
		Err(err.Err)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("view error")
}

// HandlePanic logs a PanicError at error level.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	ev := h.logger().Error().
		Str("tag", LogTag).
		Str("op", err.Op).
		Interface("value", err.Value)
	if h.Verbose && err.StackTrace != "" {
		ev = ev.Str("stack", err.StackTrace)
	}
	ev.Msg("recovered panic")
}
