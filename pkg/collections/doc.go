// Package collections implements generic sequence containers.
//
// List is a doubly linked list with head and tail sentinels and
// bidirectional cursors. DynamicArray is a contiguous buffer with
// amortized O(1) append through geometric growth.
//
// Both come in two flavours of element access: unchecked methods (At,
// Back, Front, cursor Value) that panic on misuse, and checked ones (Get,
// Last, First, TryValue) that return ErrOutOfRange, ErrEmpty or
// ErrInvalidCursor.
package collections
