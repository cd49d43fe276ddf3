package internal

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/google/uuid"
)

type FiberRoot struct {
	ID uuid.UUID

	// any additional information from the host associated with this root
	ContainerInfo any

	// the currently active root fiber, the mutable root of the tree
	Current *Fiber

	// whether this root has already been added to the schedule for work
	IsScheduled bool

	// the schedule is a singly linked list of roots
	NextScheduledRoot *FiberRoot

	// callbacks to call after updates are committed
	CallbackList *UpdateQueue
}

// CreateFiberRoot builds the root for a container.
// The root fiber and the descriptor point at each other, so the fiber is
// allocated first and patched once the descriptor exists.
func CreateFiberRoot(containerInfo any) *FiberRoot {
	uninitializedFiber := CreateHostContainerFiber()

	root := &FiberRoot{
		ID:                uuid.New(),
		Current:           uninitializedFiber,
		ContainerInfo:     containerInfo,
		IsScheduled:       false,
		NextScheduledRoot: nil,
		CallbackList:      nil,
	}
	uninitializedFiber.StateNode = root

	return root
}

func (r *Runtime) CreateFiberRoot(containerInfo any) *FiberRoot {
	root := CreateFiberRoot(containerInfo)
	r.logger.Debug("fiber root created", rootAttrs(root)...)
	return root
}

// MountRoot returns the live root for container, creating it on first use.
func (r *Runtime) MountRoot(container any) *FiberRoot {
	if !registrable(container) {
		r.logger.Warn("container cannot be registered, root is not tracked",
			slog.String("container_type", fmt.Sprintf("%T", container)))
		return r.CreateFiberRoot(container)
	}

	if root, ok := r.roots[container]; ok {
		return root
	}

	root := r.CreateFiberRoot(container)
	r.roots[container] = root
	r.logger.Debug("fiber root mounted", rootAttrs(root)...)

	return root
}

func (r *Runtime) LookupRoot(container any) (*FiberRoot, bool) {
	if !registrable(container) {
		return nil, false
	}

	root, ok := r.roots[container]
	return root, ok
}

// UnmountRoot forgets the live root of container.
// It reports false if the container had no root.
func (r *Runtime) UnmountRoot(container any) bool {
	root, ok := r.LookupRoot(container)
	if !ok {
		return false
	}

	delete(r.roots, container)
	r.logger.Debug("fiber root unmounted", rootAttrs(root)...)

	return true
}

func registrable(container any) bool {
	if container == nil {
		return false
	}
	return reflect.TypeOf(container).Comparable() && SameType(container, container)
}

func rootAttrs(root *FiberRoot) []any {
	return []any{
		slog.String("root", root.ID.String()),
		slog.Any("container", root.ContainerInfo),
	}
}
