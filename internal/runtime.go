package internal

import (
	"log/slog"

	"github.com/AnatoleLucet/fiber/internal/config"
)

type Runtime struct {
	logger *slog.Logger

	tracker   *Tracker
	scheduler *Scheduler

	// live roots by container
	roots map[any]*FiberRoot
}

func NewRuntime() *Runtime {
	return &Runtime{
		logger:    config.DefaultLogger(),
		tracker:   NewTracker(),
		scheduler: NewScheduler(),
		roots:     make(map[any]*FiberRoot),
	}
}

func (r *Runtime) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = config.DefaultLogger()
	}
	r.logger = logger
}

// CurrentFiber is the fiber whose work is running in RunWork, or nil.
func (r *Runtime) CurrentFiber() *Fiber {
	return r.tracker.CurrentFiber()
}
