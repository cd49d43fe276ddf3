package internal

import "log/slog"

type Scheduler struct {
	// incremented each time a scheduled pass runs
	clock int

	running bool

	// roots waiting for work, linked through FiberRoot.NextScheduledRoot
	firstScheduledRoot *FiberRoot
	lastScheduledRoot  *FiberRoot
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		clock:   0,
		running: false,
	}
}

// Run executes fn as one pass unless a pass is already running.
func (s *Scheduler) Run(fn func()) {
	if s.running {
		return
	}

	s.running = true
	defer func() {
		s.clock++
		s.running = false
	}()

	fn()
}

// Enqueue adds root to the end of the schedule. A root that is already
// scheduled keeps its position.
func (s *Scheduler) Enqueue(root *FiberRoot) bool {
	if root.IsScheduled {
		return false
	}

	root.IsScheduled = true
	root.NextScheduledRoot = nil

	if s.lastScheduledRoot == nil {
		s.firstScheduledRoot = root
	} else {
		s.lastScheduledRoot.NextScheduledRoot = root
	}
	s.lastScheduledRoot = root

	return true
}

// Dequeue pops the head of the schedule and unlinks it.
func (s *Scheduler) Dequeue() *FiberRoot {
	root := s.firstScheduledRoot
	if root == nil {
		return nil
	}

	s.firstScheduledRoot = root.NextScheduledRoot
	if s.firstScheduledRoot == nil {
		s.lastScheduledRoot = nil
	}

	root.NextScheduledRoot = nil
	root.IsScheduled = false

	return root
}

func (s *Scheduler) HasScheduledWork() bool {
	return s.firstScheduledRoot != nil
}

func (s *Scheduler) Time() int {
	return s.clock
}

func (r *Runtime) ScheduleRoot(root *FiberRoot) {
	if r.scheduler.Enqueue(root) {
		r.logger.Debug("fiber root scheduled", slog.String("root", root.ID.String()))
	}
}

func (r *Runtime) NextScheduledRoot() *FiberRoot {
	return r.scheduler.Dequeue()
}

func (r *Runtime) HasScheduledWork() bool {
	return r.scheduler.HasScheduledWork()
}

// PerformWork drains the schedule, handing each root to work.
// Roots scheduled by work itself are drained in the same pass.
func (r *Runtime) PerformWork(work func(*FiberRoot)) {
	r.scheduler.Run(func() {
		for root := r.NextScheduledRoot(); root != nil; root = r.NextScheduledRoot() {
			work(root)
		}
	})
}

// Time counts the work passes performed so far.
func (r *Runtime) Time() int {
	return r.scheduler.Time()
}
