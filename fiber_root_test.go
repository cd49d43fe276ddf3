package fiber

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hostContainer struct{ id string }

func TestFiberRoot(t *testing.T) {
	t.Run("root fiber points back at its root", func(t *testing.T) {
		container := &hostContainer{"app"}
		root := CreateFiberRoot(container)

		require.NotNil(t, root.Current)
		assert.Same(t, root, root.Current.StateNode)
		assert.Equal(t, HostContainer, root.Current.Tag)
		assert.Nil(t, root.Current.Return)

		assert.Same(t, container, root.ContainerInfo)
		assert.False(t, root.IsScheduled)
		assert.Nil(t, root.NextScheduledRoot)
		assert.Nil(t, root.CallbackList)
		assert.NotEqual(t, uuid.Nil, root.ID)
	})

	t.Run("accepts any container", func(t *testing.T) {
		for _, container := range []any{nil, 0, "", []int{1}, map[string]int{}} {
			root := CreateFiberRoot(container)
			assert.Same(t, root, root.Current.StateNode)
		}
	})

	t.Run("roots do not share fibers", func(t *testing.T) {
		a := CreateFiberRoot("a")
		b := CreateFiberRoot("a")

		assert.NotSame(t, a.Current, b.Current)
		assert.NotEqual(t, a.ID, b.ID)
	})
}

func TestMountRoot(t *testing.T) {
	t.Run("one live root per container", func(t *testing.T) {
		container := &hostContainer{"app"}

		root := MountRoot(container)
		assert.Same(t, root, MountRoot(container))

		found, ok := LookupRoot(container)
		assert.True(t, ok)
		assert.Same(t, root, found)

		other := MountRoot(&hostContainer{"app"})
		assert.NotSame(t, root, other)
	})

	t.Run("unmount frees the container", func(t *testing.T) {
		container := &hostContainer{"app"}
		root := MountRoot(container)

		assert.True(t, UnmountRoot(container))
		assert.False(t, UnmountRoot(container))

		_, ok := LookupRoot(container)
		assert.False(t, ok)

		assert.NotSame(t, root, MountRoot(container))
	})

	t.Run("uncomparable containers are not tracked", func(t *testing.T) {
		logs := captureLogs(t)

		container := []string{"app"}
		first := MountRoot(container)
		second := MountRoot(container)

		assert.NotSame(t, first, second)

		_, ok := LookupRoot(container)
		assert.False(t, ok)
		assert.False(t, UnmountRoot(container))

		assert.Contains(t, logs.String(), "container cannot be registered")
	})
}

func TestRelease(t *testing.T) {
	container := &hostContainer{"app"}
	root := MountRoot(container)
	ScheduleRoot(CreateFiberRoot("pending"))

	Release()

	_, ok := LookupRoot(container)
	assert.False(t, ok)
	assert.False(t, HasScheduledWork())
	assert.NotSame(t, root, MountRoot(container))
}

func TestScheduleRoot(t *testing.T) {
	t.Run("queues roots once, in order", func(t *testing.T) {
		a := CreateFiberRoot("a")
		b := CreateFiberRoot("b")

		ScheduleRoot(a)
		ScheduleRoot(b)
		ScheduleRoot(a)

		assert.True(t, a.IsScheduled)
		assert.True(t, b.IsScheduled)
		assert.Same(t, b, a.NextScheduledRoot)

		assert.Same(t, a, NextScheduledRoot())
		assert.False(t, a.IsScheduled)
		assert.Nil(t, a.NextScheduledRoot)

		assert.Same(t, b, NextScheduledRoot())
		assert.Nil(t, NextScheduledRoot())
	})

	t.Run("performs work for every scheduled root", func(t *testing.T) {
		log := []string{}

		a := CreateFiberRoot("a")
		b := CreateFiberRoot("b")

		ScheduleRoot(a)

		PerformWork(func(root *FiberRoot) {
			log = append(log, root.ContainerInfo.(string))

			// work can schedule more work
			if root == a {
				ScheduleRoot(b)
			}
		})

		assert.Equal(t, []string{"a", "b"}, log)
		assert.Equal(t, 1, Time())
		assert.False(t, HasScheduledWork())
		assert.Nil(t, NextScheduledRoot())
	})

	t.Run("runs post commit callbacks in order", func(t *testing.T) {
		log := []string{}

		root := CreateFiberRoot("app")
		root.CallbackList = NewUpdateQueue()
		root.CallbackList.Enqueue(func() { log = append(log, "first") })
		root.CallbackList.Enqueue(func() { log = append(log, "second") })

		assert.Equal(t, 2, root.CallbackList.Len())

		root.CallbackList.Commit()
		root.CallbackList.Commit()

		assert.Equal(t, []string{"first", "second"}, log)
		assert.Equal(t, 0, root.CallbackList.Len())
	})
}
