package collections

// ArrayCursor is a position in a DynamicArray's live range.
//
// It is invalidated by any call that reallocates the buffer or changes
// the array's size; this is not detected.
type ArrayCursor[T any] struct {
	array *DynamicArray[T]
	index int
}

// Index returns the cursor's position.
func (cur ArrayCursor[T]) Index() int {
	return cur.index
}

// Value returns the element under the cursor.
//
// It panics with ErrOutOfRange outside the live range.
func (cur ArrayCursor[T]) Value() T {
	value, err := cur.array.Get(cur.index)
	if err != nil {
		panic(err)
	}
	return value
}

// Set replaces the element under the cursor.
//
// It panics with ErrOutOfRange outside the live range.
func (cur ArrayCursor[T]) Set(value T) {
	if err := cur.array.Put(cur.index, value); err != nil {
		panic(err)
	}
}

// Next returns a cursor to the following index.
func (cur ArrayCursor[T]) Next() ArrayCursor[T] {
	return ArrayCursor[T]{array: cur.array, index: cur.index + 1}
}

// Prev returns a cursor to the preceding index.
func (cur ArrayCursor[T]) Prev() ArrayCursor[T] {
	return ArrayCursor[T]{array: cur.array, index: cur.index - 1}
}

// Advance moves the cursor forward in place.
func (cur *ArrayCursor[T]) Advance() {
	cur.index++
}

// Retreat moves the cursor back in place.
func (cur *ArrayCursor[T]) Retreat() {
	cur.index--
}

// Equal reports whether both cursors are at the same index of the same
// array.
func (cur ArrayCursor[T]) Equal(other ArrayCursor[T]) bool {
	return cur.array == other.array && cur.index == other.index
}
