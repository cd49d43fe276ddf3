package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduler(t *testing.T) {
	t.Run("ignores re-entrant runs", func(t *testing.T) {
		s := NewScheduler()
		log := []string{}

		s.Run(func() {
			log = append(log, "outer")
			s.Run(func() { log = append(log, "inner") })
		})

		assert.Equal(t, []string{"outer"}, log)
		assert.Equal(t, 1, s.Time())
	})

	t.Run("keeps the clock moving when a pass panics", func(t *testing.T) {
		s := NewScheduler()

		assert.Panics(t, func() { s.Run(func() { panic("boom") }) })

		ran := false
		s.Run(func() { ran = true })

		assert.True(t, ran)
		assert.Equal(t, 2, s.Time())
	})

	t.Run("links roots through the root descriptors", func(t *testing.T) {
		s := NewScheduler()
		a, b, c := CreateFiberRoot("a"), CreateFiberRoot("b"), CreateFiberRoot("c")

		assert.True(t, s.Enqueue(a))
		assert.True(t, s.Enqueue(b))
		assert.False(t, s.Enqueue(a))
		assert.True(t, s.HasScheduledWork())

		assert.Same(t, a, s.Dequeue())
		assert.True(t, s.Enqueue(c))
		assert.True(t, s.Enqueue(a))

		assert.Same(t, b, s.Dequeue())
		assert.Same(t, c, s.Dequeue())
		assert.Same(t, a, s.Dequeue())
		assert.Nil(t, s.Dequeue())
		assert.False(t, s.HasScheduledWork())
	})
}

func TestTracker(t *testing.T) {
	tr := NewTracker()
	b := CreateHostContainerFiber()

	tr.RunWithBoundary(b, func() {
		assert.True(t, tr.IsHandling(b))

		tr.RunWithBoundary(b, func() {
			assert.True(t, tr.IsHandling(b))
		})

		assert.True(t, tr.IsHandling(b))
	})

	assert.False(t, tr.IsHandling(b))

	assert.Panics(t, func() {
		tr.RunWithBoundary(b, func() { panic("boom") })
	})
	assert.False(t, tr.IsHandling(b))

	f := CreateHostContainerFiber()
	tr.RunWithFiber(f, func() {
		assert.Same(t, f, tr.CurrentFiber())
	})
	assert.Nil(t, tr.CurrentFiber())
}
