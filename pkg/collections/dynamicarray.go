package collections

import (
	"iter"
	"log/slog"
	"math"
	"runtime"
	"slices"

	"github.com/wandb/wandb/containers/pkg/observability/wberrors"
)

// SpareCapacity is the number of extra slots NewDynamicArray allocates
// beyond the requested size.
const SpareCapacity = 16

// DynamicArray is a contiguous buffer with amortized O(1) append.
//
// The buffer always has Cap() slots, of which the first Len() are live.
// Appending to a full buffer grows it to 2*Cap()+1; the +1 guarantees
// progress from a capacity of zero.
//
// The zero value is an empty array with no capacity, ready to use. A
// DynamicArray must not be copied by value; use Clone, Move or MoveFrom.
// It is not safe for concurrent use.
type DynamicArray[T any] struct {
	// objects is the buffer; len(objects) is the capacity.
	objects []T

	// size is the number of live elements at the front of objects.
	size int

	config arrayConfig
}

// NewDynamicArray returns an array of initSize zero values with capacity
// initSize + SpareCapacity.
func NewDynamicArray[T any](initSize int, opts ...ArrayOption) (*DynamicArray[T], error) {
	if initSize < 0 {
		return nil, indexError(initSize, 0)
	}

	array := &DynamicArray[T]{}
	for _, opt := range opts {
		opt(&array.config)
	}

	objects, err := array.allocate(initSize + SpareCapacity)
	if err != nil {
		return nil, err
	}

	array.objects = objects
	array.size = initSize
	return array, nil
}

// NewDynamicArrayOf returns an array holding the values, with
// SpareCapacity slots to spare.
func NewDynamicArrayOf[T any](values ...T) *DynamicArray[T] {
	objects := make([]T, len(values)+SpareCapacity)
	copy(objects, values)
	return &DynamicArray[T]{objects: objects, size: len(values)}
}

// Len returns the number of live elements.
func (a *DynamicArray[T]) Len() int {
	return a.size
}

// Cap returns the number of allocated slots.
func (a *DynamicArray[T]) Cap() int {
	return len(a.objects)
}

// Empty reports whether the array has no live elements.
func (a *DynamicArray[T]) Empty() bool {
	return a.size == 0
}

// At returns the element at index i without checking it against Len().
//
// Indices in [Len(), Cap()) return unspecified values; larger ones panic.
func (a *DynamicArray[T]) At(i int) T {
	return a.objects[i]
}

// Set stores the value at index i without checking it against Len().
func (a *DynamicArray[T]) Set(i int, value T) {
	a.objects[i] = value
}

// Ref returns a pointer to the slot at index i without checking it
// against Len().
//
// The pointer is only valid until the next reallocation.
func (a *DynamicArray[T]) Ref(i int) *T {
	return &a.objects[i]
}

// Get returns the element at index i, or ErrOutOfRange.
func (a *DynamicArray[T]) Get(i int) (T, error) {
	if i < 0 || i >= a.size {
		var zero T
		return zero, indexError(i, a.size)
	}
	return a.objects[i], nil
}

// Put stores the value at index i, or returns ErrOutOfRange.
func (a *DynamicArray[T]) Put(i int, value T) error {
	if i < 0 || i >= a.size {
		return indexError(i, a.size)
	}
	a.objects[i] = value
	return nil
}

// Back returns the last live element. It panics if the array is empty.
func (a *DynamicArray[T]) Back() T {
	return a.objects[a.size-1]
}

// Last returns the last live element, or ErrEmpty.
func (a *DynamicArray[T]) Last() (T, error) {
	if a.size == 0 {
		var zero T
		return zero, emptyError("last")
	}
	return a.objects[a.size-1], nil
}

// Reserve sets the capacity to exactly newCapacity.
//
// A newCapacity that is not larger than Len() is ignored: live elements
// are never dropped. Otherwise a new buffer is allocated, live elements
// are moved into it and the old buffer is released. If allocation fails,
// ErrAllocationFailed is returned and the array is unchanged.
func (a *DynamicArray[T]) Reserve(newCapacity int) error {
	return a.reserve(newCapacity, ReasonReserve)
}

// Resize sets the number of live elements to newSize.
//
// If newSize exceeds the capacity, the capacity is doubled, starting from
// the current one (or 1 if it is 0), until it fits. Shrinking never
// changes the capacity.
//
// Growing within the current capacity exposes slots as they are, so
// elements dropped by an earlier shrink come back. Growing past it
// reallocates, copying only the live elements; every exposed slot is
// then the zero value.
func (a *DynamicArray[T]) Resize(newSize int) error {
	if newSize < 0 {
		return indexError(newSize, a.size)
	}

	if newSize > a.Cap() {
		newCapacity := max(a.Cap(), 1)
		for newCapacity < newSize {
			if newCapacity > math.MaxInt/2 {
				newCapacity = newSize
				break
			}
			newCapacity *= 2
		}

		if err := a.reserve(newCapacity, ReasonResize); err != nil {
			return err
		}
	}

	a.size = newSize
	return nil
}

// PushBack appends the value, growing the buffer to 2*Cap()+1 if full.
func (a *DynamicArray[T]) PushBack(value T) error {
	if a.size == a.Cap() {
		if err := a.reserve(2*a.Cap()+1, ReasonPushBack); err != nil {
			return err
		}
	}

	a.objects[a.size] = value
	a.size++
	return nil
}

// PopBack drops the last live element. It panics if the array is empty.
//
// The capacity is unchanged and the slot keeps its value until reused.
func (a *DynamicArray[T]) PopBack() {
	if a.size == 0 {
		panic(emptyError("pop back"))
	}
	a.size--
}

// RemoveLast drops and returns the last live element, or returns ErrEmpty.
func (a *DynamicArray[T]) RemoveLast() (T, error) {
	value, err := a.Last()
	if err != nil {
		return value, err
	}

	a.size--
	return value, nil
}

// Clear drops all live elements, keeping the capacity.
func (a *DynamicArray[T]) Clear() {
	a.size = 0
}

// Clone returns a deep copy with the same size and capacity.
//
// Elements are copied with assignment. The clone shares the options of
// the original.
func (a *DynamicArray[T]) Clone() *DynamicArray[T] {
	objects := make([]T, len(a.objects))
	copy(objects, a.objects[:a.size])
	return &DynamicArray[T]{objects: objects, size: a.size, config: a.config}
}

// Assign replaces the array's contents by a copy of src.
//
// The copy is built before the array is touched and then swapped in, so
// assigning an array to itself is safe. The receiver keeps its options.
func (a *DynamicArray[T]) Assign(src *DynamicArray[T]) {
	replacement := src.Clone()
	a.Swap(replacement)
}

// Move transfers the buffer into a new array in O(1).
//
// The receiver is left with size 0 and capacity 0.
func (a *DynamicArray[T]) Move() *DynamicArray[T] {
	moved := &DynamicArray[T]{objects: a.objects, size: a.size, config: a.config}
	a.objects, a.size = nil, 0
	return moved
}

// MoveFrom takes src's buffer in O(1), releasing the receiver's.
//
// src is left with size 0 and capacity 0. Moving an array into itself
// does nothing.
func (a *DynamicArray[T]) MoveFrom(src *DynamicArray[T]) {
	if src == a {
		return
	}

	a.objects, a.size = src.objects, src.size
	src.objects, src.size = nil, 0
}

// Swap exchanges the buffers of two arrays in O(1). Options stay put.
func (a *DynamicArray[T]) Swap(other *DynamicArray[T]) {
	a.objects, other.objects = other.objects, a.objects
	a.size, other.size = other.size, a.size
}

// Values returns a copy of the live elements.
func (a *DynamicArray[T]) Values() []T {
	return slices.Clone(a.objects[:a.size])
}

// Iter iterates over the live elements in index order.
//
// This is intended to be used with for-range syntax.
func (a *DynamicArray[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.size; i++ {
			if !yield(i, a.objects[i]) {
				return
			}
		}
	}
}

// Begin returns a cursor to index 0.
func (a *DynamicArray[T]) Begin() ArrayCursor[T] {
	return ArrayCursor[T]{array: a, index: 0}
}

// End returns a cursor one past the last live element.
func (a *DynamicArray[T]) End() ArrayCursor[T] {
	return ArrayCursor[T]{array: a, index: a.size}
}

// reserve implements Reserve, reporting the growth under reason.
func (a *DynamicArray[T]) reserve(newCapacity int, reason GrowthReason) error {
	if newCapacity <= a.size {
		return nil
	}

	event := GrowthEvent{
		Reason:      reason,
		OldCapacity: a.Cap(),
		NewCapacity: newCapacity,
		Size:        a.size,
	}

	objects, err := a.allocate(newCapacity)
	if err != nil {
		a.config.growthObserver().AllocationFailed(event, err)
		a.config.coreLogger().CaptureError(err, "reason", reason.String())
		return err
	}

	copy(objects, a.objects[:a.size])
	a.objects = objects

	a.config.growthObserver().Reallocated(event)
	a.config.coreLogger().Debug(
		"collections: reallocated",
		"reason", reason.String(),
		"from", event.OldCapacity,
		"to", event.NewCapacity,
		"size", event.Size,
	)
	return nil
}

// allocate returns a zeroed buffer of the given capacity.
//
// Requests above the configured maximum and requests the runtime rejects
// as too large fail with ErrAllocationFailed. Exhausting memory is fatal
// in Go and cannot be reported.
func (a *DynamicArray[T]) allocate(capacity int) (objects []T, err error) {
	if limit := a.config.maxCapacity; limit > 0 && capacity > limit {
		return nil, wberrors.Bubblef(ErrAllocationFailed, "capacity %d above limit %d", capacity, limit).
			Attr(slog.Int("requested", capacity)).
			Attr(slog.Int("limit", limit)).
			SkipSentryIf(true)
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		runtimeErr, ok := r.(runtime.Error)
		if !ok {
			panic(r)
		}

		objects = nil
		err = wberrors.Bubblef(ErrAllocationFailed, "capacity %d: %v", capacity, runtimeErr).
			Attr(slog.Int("requested", capacity))
	}()

	return make([]T, capacity), nil
}
