package internal

import "log/slog"

// ReifiedYield is a yield materialized in the tree. Only the continuation
// fiber survives from one render to the next, props are always replaced.
type ReifiedYield struct {
	Continuation *Fiber
	Props        any
}

func (r *Runtime) CreateReifiedYield(yieldNode *Yield) ReifiedYield {
	fiber := CreateFiberFromElementType(yieldNode.Continuation(), yieldNode.Key())

	return ReifiedYield{
		Continuation: fiber,
		Props:        yieldNode.Props(),
	}
}

// CreateUpdatedReifiedYield keeps the previous continuation fiber when the
// yield still resumes with the same component type.
func (r *Runtime) CreateUpdatedReifiedYield(previousYield ReifiedYield, yieldNode *Yield) ReifiedYield {
	fiber := previousYield.Continuation

	if fiber == nil || !SameType(fiber.Type, yieldNode.Continuation()) {
		fiber = CreateFiberFromElementType(yieldNode.Continuation(), yieldNode.Key())
		r.logger.Debug("continuation replaced", slog.Any("fiber", fiber))
	} else {
		r.logger.Debug("continuation reused", slog.Any("fiber", fiber))
	}

	return ReifiedYield{
		Continuation: fiber,
		Props:        yieldNode.Props(),
	}
}
