package testing

import (
	"sync"

	"github.com/playdraft/hexagonview/pkg/errors"
)

// RecordingHandler is an errors.ErrorHandler that keeps every report so
// tests can assert on them.
type RecordingHandler struct {
	mu     sync.Mutex
	errs   []*errors.ViewError
	panics []*errors.PanicError
}

// HandleError records err.
func (h *RecordingHandler) HandleError(err *errors.ViewError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.errs = append(h.errs, err)
}

// HandlePanic records err.
func (h *RecordingHandler) HandlePanic(err *errors.PanicError) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.panics = append(h.panics, err)
}

// Errors returns the recorded errors.
func (h *RecordingHandler) Errors() []*errors.ViewError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.ViewError(nil), h.errs...)
}

// Panics returns the recorded panics.
func (h *RecordingHandler) Panics() []*errors.PanicError {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]*errors.PanicError(nil), h.panics...)
}
