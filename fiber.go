package fiber

import (
	"log/slog"

	"github.com/AnatoleLucet/fiber/internal"
)

type (
	// Fiber is a node of the work tree.
	Fiber = internal.Fiber

	// TypeOfWork tells what kind of component a fiber holds.
	TypeOfWork = internal.TypeOfWork

	// Key is an element key, or the absence of one.
	Key = internal.Key

	// ClassComponentType is implemented by component types with an instance.
	ClassComponentType = internal.ClassComponentType

	// FiberRoot anchors the tree rendered into one container.
	FiberRoot = internal.FiberRoot

	// UpdateQueue holds the callbacks to run after a commit.
	UpdateQueue = internal.UpdateQueue

	ErrorBoundary  = internal.ErrorBoundary
	BoundaryFunc   = internal.BoundaryFunc
	TrappedError   = internal.TrappedError
	UnhandledError = internal.UnhandledError

	ReifiedYield     = internal.ReifiedYield
	Coroutine        = internal.Coroutine
	Yield            = internal.Yield
	CoroutineHandler = internal.CoroutineHandler
)

const (
	IndeterminateComponent = internal.IndeterminateComponent
	FunctionalComponent    = internal.FunctionalComponent
	ClassComponent         = internal.ClassComponent
	HostContainer          = internal.HostContainer
	HostComponent          = internal.HostComponent
	CoroutineComponent     = internal.CoroutineComponent
	CoroutineHandlerPhase  = internal.CoroutineHandlerPhase
	YieldComponent         = internal.YieldComponent
)

var (
	ErrNoBoundary        = internal.ErrNoBoundary
	ErrBoundaryReentered = internal.ErrBoundaryReentered
)

// NoKey is the key of elements created without one.
var NoKey = internal.NoKey

// KeyOf coerces v to a key. nil stays "no key".
func KeyOf(v any) Key { return internal.KeyOf(v) }

// CreateHostContainerFiber allocates the fiber at the top of a container's tree.
func CreateHostContainerFiber() *Fiber { return internal.CreateHostContainerFiber() }

// CreateFiberFromElementType allocates a fiber for a component type.
func CreateFiberFromElementType(typ any, key Key) *Fiber {
	return internal.CreateFiberFromElementType(typ, key)
}

// NewUpdateQueue creates an empty callback list.
func NewUpdateQueue() *UpdateQueue { return internal.NewUpdateQueue() }

// CreateFiberRoot builds the root descriptor for a container.
// The returned root's Current fiber has the root as its StateNode.
func CreateFiberRoot(containerInfo any) *FiberRoot {
	return internal.GetRuntime().CreateFiberRoot(containerInfo)
}

// MountRoot returns the live root for a container, creating it on first use.
func MountRoot(container any) *FiberRoot {
	return internal.GetRuntime().MountRoot(container)
}

// LookupRoot returns the live root for a container, if any.
func LookupRoot(container any) (*FiberRoot, bool) {
	return internal.GetRuntime().LookupRoot(container)
}

// UnmountRoot forgets the live root for a container.
func UnmountRoot(container any) bool {
	return internal.GetRuntime().UnmountRoot(container)
}

// ScheduleRoot adds root to the schedule unless it is already in it.
func ScheduleRoot(root *FiberRoot) { internal.GetRuntime().ScheduleRoot(root) }

// NextScheduledRoot pops the next root waiting for work, or nil.
func NextScheduledRoot() *FiberRoot { return internal.GetRuntime().NextScheduledRoot() }

// HasScheduledWork reports whether any root is waiting for work.
func HasScheduledWork() bool { return internal.GetRuntime().HasScheduledWork() }

// PerformWork hands every scheduled root to work, in schedule order.
func PerformWork(work func(*FiberRoot)) { internal.GetRuntime().PerformWork(work) }

// Time counts the work passes performed by the calling goroutine's runtime.
func Time() int { return internal.GetRuntime().Time() }

// CurrentFiber returns the fiber whose work is running in RunWork, or nil.
func CurrentFiber() *Fiber { return internal.GetRuntime().CurrentFiber() }

// Release drops the calling goroutine's runtime: its mounted roots,
// schedule and logger. Call it when a goroutine stops driving renders.
func Release() { internal.ReleaseRuntime() }

// FindClosestErrorBoundary returns the nearest ancestor able to handle an
// error thrown by fiber, or nil.
func FindClosestErrorBoundary(fiber *Fiber) *Fiber {
	return internal.GetRuntime().FindClosestErrorBoundary(fiber)
}

// TrapError pairs err with the boundary that should handle it.
func TrapError(fiber *Fiber, err any) TrappedError {
	return internal.GetRuntime().TrapError(fiber, err)
}

// AcknowledgeErrorInBoundary gives err to the boundary's handler.
// A nil boundary is an unhandled error that the caller must escalate.
func AcknowledgeErrorInBoundary(boundary *Fiber, err any) error {
	return internal.GetRuntime().AcknowledgeErrorInBoundary(boundary, err)
}

// RunWork runs fn as the work of fiber, routing a panic to the closest boundary.
func RunWork(fiber *Fiber, fn func()) error {
	return internal.GetRuntime().RunWork(fiber, fn)
}

// CreateReifiedYield materializes a yield with a new continuation fiber.
func CreateReifiedYield(yieldNode *Yield) ReifiedYield {
	return internal.GetRuntime().CreateReifiedYield(yieldNode)
}

// CreateUpdatedReifiedYield materializes a yield, keeping the previous
// continuation fiber if its type did not change.
func CreateUpdatedReifiedYield(previous ReifiedYield, yieldNode *Yield) ReifiedYield {
	return internal.GetRuntime().CreateUpdatedReifiedYield(previous, yieldNode)
}

// CreateCoroutine creates a coroutine element. key may be nil.
func CreateCoroutine(children any, handler CoroutineHandler, props any, key any) *Coroutine {
	return internal.CreateCoroutine(children, handler, props, key)
}

// CreateYield creates a yield element. key may be nil.
func CreateYield(props any, continuation any, key any) *Yield {
	return internal.CreateYield(props, continuation, key)
}

// IsCoroutine reports whether v is a coroutine element.
func IsCoroutine(v any) bool { return internal.IsCoroutine(v) }

// IsYield reports whether v is a yield element.
func IsYield(v any) bool { return internal.IsYield(v) }

// SetLogger replaces the logger of the calling goroutine's runtime.
// A nil logger restores the one configured from the environment.
func SetLogger(logger *slog.Logger) { internal.GetRuntime().SetLogger(logger) }
