package internal

type Tracker struct {
	currentFiber *Fiber // the fiber whose work is running

	// boundaries whose error handler is on the stack
	activeBoundaries map[*Fiber]int
}

func NewTracker() *Tracker {
	return &Tracker{
		activeBoundaries: make(map[*Fiber]int),
	}
}

func (t *Tracker) RunWithFiber(fiber *Fiber, fn func()) {
	prev := t.currentFiber
	t.currentFiber = fiber
	defer func() { t.currentFiber = prev }()

	fn()
}

// RunWithBoundary marks boundary as handling an error while fn runs.
func (t *Tracker) RunWithBoundary(boundary *Fiber, fn func()) {
	t.activeBoundaries[boundary]++
	defer func() {
		t.activeBoundaries[boundary]--
		if t.activeBoundaries[boundary] == 0 {
			delete(t.activeBoundaries, boundary)
		}
	}()

	fn()
}

func (t *Tracker) IsHandling(boundary *Fiber) bool {
	return t.activeBoundaries[boundary] > 0
}

func (t *Tracker) CurrentFiber() *Fiber {
	return t.currentFiber
}
