package torch

import (
	"errors"
	"fmt"

	"github.com/gogpu/torch/event"
)

// ErrSingularMatrix is returned when a transform cannot be inverted.
var ErrSingularMatrix = errors.New("torch: matrix is not invertible")

// MathError reports a degenerate transform. It wraps ErrSingularMatrix.
type MathError struct {
	Op  string
	Det float64
}

func (e *MathError) Error() string {
	return fmt.Sprintf("torch: %s: singular matrix (det=%g)", e.Op, e.Det)
}

func (e *MathError) Unwrap() error { return ErrSingularMatrix }

// Phase names the part of the pipeline in which a consumer callback failed.
type Phase uint8

const (
	PhaseHitTest Phase = iota + 1
	PhaseHandler
	PhaseDraw
	PhaseTick
	PhaseHook
)

func (p Phase) String() string {
	switch p {
	case PhaseHitTest:
		return "hit-test"
	case PhaseHandler:
		return "handler"
	case PhaseDraw:
		return "draw"
	case PhaseTick:
		return "tick"
	case PhaseHook:
		return "hook"
	}
	return "unknown"
}

// HandlerError describes a panic recovered from consumer code. The object
// involved is skipped for the rest of the dispatch pass.
type HandlerError struct {
	Phase Phase
	Kind  event.Kind
	Value any
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("torch: %s failed during %v: %v", e.Phase, e.Kind, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *HandlerError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
