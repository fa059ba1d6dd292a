package collections

import (
	"github.com/wandb/wandb/containers/pkg/observability"
)

// GrowthReason is the operation that caused a DynamicArray to reallocate.
type GrowthReason int

const (
	ReasonReserve GrowthReason = iota
	ReasonResize
	ReasonPushBack
)

func (r GrowthReason) String() string {
	switch r {
	case ReasonReserve:
		return "reserve"
	case ReasonResize:
		return "resize"
	case ReasonPushBack:
		return "push_back"
	default:
		return "unknown"
	}
}

// GrowthEvent describes one attempt to replace an array's buffer.
type GrowthEvent struct {
	Reason GrowthReason

	// OldCapacity is the capacity before the attempt.
	OldCapacity int

	// NewCapacity is the requested capacity.
	NewCapacity int

	// Size is the number of live elements relocated.
	Size int
}

//go:generate mockgen -destination=collectionstest/mock_growthobserver.go -package=collectionstest . GrowthObserver

// GrowthObserver is notified whenever a DynamicArray replaces its buffer.
//
// Observers are called synchronously from the array's methods.
type GrowthObserver interface {
	// Reallocated is called after live elements were moved into a new
	// buffer.
	Reallocated(event GrowthEvent)

	// AllocationFailed is called when a new buffer could not be created.
	// The array is unchanged.
	AllocationFailed(event GrowthEvent, err error)
}

type noopObserver struct{}

func (noopObserver) Reallocated(GrowthEvent)             {}
func (noopObserver) AllocationFailed(GrowthEvent, error) {}

// ArrayOption configures a DynamicArray.
type ArrayOption func(*arrayConfig)

type arrayConfig struct {
	observer    GrowthObserver
	logger      *observability.CoreLogger
	maxCapacity int
}

var noopLogger = observability.NewNoOpLogger()

func (c *arrayConfig) growthObserver() GrowthObserver {
	if c.observer == nil {
		return noopObserver{}
	}
	return c.observer
}

func (c *arrayConfig) coreLogger() *observability.CoreLogger {
	if c.logger == nil {
		return noopLogger
	}
	return c.logger
}

// WithGrowthObserver reports every reallocation to the observer.
func WithGrowthObserver(observer GrowthObserver) ArrayOption {
	return func(c *arrayConfig) {
		if observer != nil {
			c.observer = observer
		}
	}
}

// WithLogger sets the logger used for reallocation and failure messages.
func WithLogger(logger *observability.CoreLogger) ArrayOption {
	return func(c *arrayConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxCapacity limits the capacity the array may allocate.
//
// Growth beyond the limit fails with ErrAllocationFailed. Zero or a negative
// value means no limit.
func WithMaxCapacity(maxCapacity int) ArrayOption {
	return func(c *arrayConfig) {
		c.maxCapacity = max(maxCapacity, 0)
	}
}
