package internal

import (
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrNoBoundary is matched by every UnhandledError.
	ErrNoBoundary = errors.New("no error boundary")

	// ErrBoundaryReentered is returned when an error is acknowledged by a
	// boundary whose handler is still running.
	ErrBoundaryReentered = errors.New("error boundary re-entered while handling an error")
)

// ErrorBoundary is implemented by class component instances that handle
// errors thrown by their descendants.
type ErrorBoundary interface {
	HandleError(err any)
}

type BoundaryFunc func(err any)

func (f BoundaryFunc) HandleError(err any) { f(err) }

type TrappedError struct {
	Boundary *Fiber // nil when no ancestor can handle the error
	Error    any
}

// UnhandledError is a render error no boundary could take.
// It is fatal for the tree it was thrown in.
type UnhandledError struct {
	Node  *Fiber
	Value any
}

func (e *UnhandledError) Error() string {
	return fmt.Sprintf("unhandled render error in %s: %v", e.Node, e.Value)
}

func (e *UnhandledError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func (e *UnhandledError) Is(target error) bool {
	return target == ErrNoBoundary
}

func boundaryOf(fiber *Fiber) (ErrorBoundary, bool) {
	if fiber == nil || fiber.Tag != ClassComponent {
		return nil, false
	}

	instance, ok := fiber.StateNode.(ErrorBoundary)
	return instance, ok
}

// FindClosestErrorBoundary returns the nearest ancestor of fiber that can
// handle an error, skipping boundaries that are handling one already.
func (r *Runtime) FindClosestErrorBoundary(fiber *Fiber) *Fiber {
	for ancestor := range fiber.Ancestors() {
		if _, ok := boundaryOf(ancestor); ok && !r.tracker.IsHandling(ancestor) {
			return ancestor
		}
	}

	return nil
}

func (r *Runtime) TrapError(fiber *Fiber, err any) TrappedError {
	return TrappedError{
		Boundary: r.FindClosestErrorBoundary(fiber),
		Error:    err,
	}
}

// AcknowledgeErrorInBoundary hands err to the boundary's handler, unchanged.
// A missing boundary is reported as an *UnhandledError.
func (r *Runtime) AcknowledgeErrorInBoundary(boundary *Fiber, err any) error {
	instance, ok := boundaryOf(boundary)
	if !ok {
		r.logger.Warn("render error has no boundary", slog.Any("error", err))
		return &UnhandledError{Node: boundary, Value: err}
	}

	if r.tracker.IsHandling(boundary) {
		r.logger.Warn("error boundary re-entered",
			slog.Any("boundary", boundary),
			slog.Any("error", err))
		return fmt.Errorf("%s: %w", boundary, ErrBoundaryReentered)
	}

	// a panic in the handler belongs to the boundaries above this one
	var escalated error
	r.tracker.RunWithBoundary(boundary, func() {
		escalated = r.RunWork(boundary, func() { instance.HandleError(err) })
	})

	return escalated
}

// RunWork runs the work of fiber. A panic raised by fn is trapped at fiber
// and acknowledged by the closest boundary; without one, it comes back as
// an *UnhandledError.
func (r *Runtime) RunWork(fiber *Fiber, fn func()) (err error) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		trapped := r.TrapError(fiber, rec)
		if trapped.Boundary == nil {
			r.logger.Warn("render error has no boundary",
				slog.Any("fiber", fiber),
				slog.Any("error", rec))
			err = &UnhandledError{Node: fiber, Value: rec}
			return
		}

		err = r.AcknowledgeErrorInBoundary(trapped.Boundary, trapped.Error)
	}()

	r.tracker.RunWithFiber(fiber, fn)

	return nil
}
