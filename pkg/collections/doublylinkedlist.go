package collections

import (
	"iter"

	"github.com/wandb/wandb/containers/pkg/observability/wberrors"
)

// List is a doubly linked list with head and tail sentinels.
//
// Insert and Erase are O(1) at any cursor position and never special-case
// the ends of the list: the sentinels are always there to link to.
//
// The zero value is an empty list ready to use. A List must not be copied
// by value; use Clone for a deep copy and Move or MoveFrom to transfer
// ownership. It is not safe for concurrent use.
type List[T any] struct {
	// chain owns the nodes; nil until the list is first used.
	chain *chain[T]
}

// NewList returns an empty list.
func NewList[T any]() *List[T] {
	return &List[T]{chain: newChain[T]()}
}

// NewListOf returns a list holding the values in order.
func NewListOf[T any](values ...T) *List[T] {
	list := NewList[T]()
	for _, value := range values {
		list.PushBack(value)
	}
	return list
}

func (list *List[T]) lazyInit() *chain[T] {
	if list.chain == nil {
		list.chain = newChain[T]()
	}
	return list.chain
}

// Len returns the number of elements in the list.
func (list *List[T]) Len() int {
	if list.chain == nil {
		return 0
	}
	return list.chain.count
}

// Empty reports whether the list has no elements.
func (list *List[T]) Empty() bool {
	return list.Len() == 0
}

// Begin returns a cursor to the first element, or End() if the list is
// empty.
func (list *List[T]) Begin() Cursor[T] {
	c := list.lazyInit()
	return Cursor[T]{c.cursorAt(c.first())}
}

// End returns a cursor to the tail sentinel, one past the last element.
func (list *List[T]) End() Cursor[T] {
	return Cursor[T]{list.lazyInit().cursorAt(tailSlot)}
}

// CBegin is the read-only form of Begin.
func (list *List[T]) CBegin() ConstCursor[T] {
	return list.Begin().Const()
}

// CEnd is the read-only form of End.
func (list *List[T]) CEnd() ConstCursor[T] {
	return list.End().Const()
}

// Front returns the first element. It panics if the list is empty.
func (list *List[T]) Front() T {
	return list.Begin().Value()
}

// Back returns the last element. It panics if the list is empty.
func (list *List[T]) Back() T {
	return list.End().Prev().Value()
}

// First returns the first element, or ErrEmpty.
func (list *List[T]) First() (T, error) {
	if list.Empty() {
		var zero T
		return zero, emptyError("first")
	}
	return list.Front(), nil
}

// Last returns the last element, or ErrEmpty.
func (list *List[T]) Last() (T, error) {
	if list.Empty() {
		var zero T
		return zero, emptyError("last")
	}
	return list.Back(), nil
}

// Insert adds the value in front of pos and returns a cursor to it.
//
// Inserting at End() appends. Other cursors stay valid.
func (list *List[T]) Insert(pos Cursor[T], value T) (Cursor[T], error) {
	c := list.lazyInit()

	if err := list.checkOwned(pos.ConstCursor); err != nil {
		return Cursor[T]{}, err
	}
	if pos.slot == headSlot {
		return Cursor[T]{}, wberrors.Bubblef(ErrOutOfRange, "insert before head sentinel")
	}

	return Cursor[T]{c.cursorAt(c.insertBefore(pos.slot, value))}, nil
}

// Erase removes the element at pos and returns a cursor to the element
// that followed it.
//
// Cursors to the erased element become invalid.
func (list *List[T]) Erase(pos Cursor[T]) (Cursor[T], error) {
	c := list.lazyInit()

	if err := list.checkOwned(pos.ConstCursor); err != nil {
		return Cursor[T]{}, err
	}
	if pos.slot == headSlot || pos.slot == tailSlot {
		return Cursor[T]{}, wberrors.Bubblef(ErrOutOfRange, "erase of sentinel")
	}

	return Cursor[T]{c.cursorAt(c.remove(pos.slot))}, nil
}

// EraseRange removes the elements in [from, to) and returns to.
//
// If to is not reachable from from, nothing is erased and ErrOutOfRange
// is returned.
func (list *List[T]) EraseRange(from, to Cursor[T]) (Cursor[T], error) {
	if err := list.checkOwned(from.ConstCursor); err != nil {
		return Cursor[T]{}, err
	}
	if err := list.checkOwned(to.ConstCursor); err != nil {
		return Cursor[T]{}, err
	}

	// Walk first so that a bad range leaves the list untouched.
	for cur := from.ConstCursor; !cur.Equal(to.ConstCursor); cur.Advance() {
		if cur.slot == tailSlot || cur.slot == headSlot {
			return Cursor[T]{}, wberrors.Bubblef(ErrOutOfRange, "range end not reachable")
		}
	}

	for !from.Equal(to.ConstCursor) {
		var err error
		if from, err = list.Erase(from); err != nil {
			return Cursor[T]{}, err
		}
	}

	return to, nil
}

// PushFront inserts the value at the front of the list.
func (list *List[T]) PushFront(value T) Cursor[T] {
	c := list.lazyInit()
	return Cursor[T]{c.cursorAt(c.insertBefore(c.first(), value))}
}

// PushBack inserts the value at the back of the list.
func (list *List[T]) PushBack(value T) Cursor[T] {
	c := list.lazyInit()
	return Cursor[T]{c.cursorAt(c.insertBefore(tailSlot, value))}
}

// PopFront removes and returns the first element, or returns ErrEmpty.
func (list *List[T]) PopFront() (T, error) {
	if list.Empty() {
		var zero T
		return zero, emptyError("pop front")
	}

	c := list.chain
	slot := c.first()
	value := c.nodes[slot].value
	c.remove(slot)
	return value, nil
}

// PopBack removes and returns the last element, or returns ErrEmpty.
func (list *List[T]) PopBack() (T, error) {
	if list.Empty() {
		var zero T
		return zero, emptyError("pop back")
	}

	c := list.chain
	slot := c.last()
	value := c.nodes[slot].value
	c.remove(slot)
	return value, nil
}

// Clear removes all elements.
//
// All cursors into the list become unusable with it.
func (list *List[T]) Clear() {
	list.chain = nil
}

// Clone returns a deep copy of the list.
//
// Elements are copied with assignment, in order, into new nodes.
func (list *List[T]) Clone() *List[T] {
	clone := NewList[T]()
	for _, value := range list.Iter() {
		clone.PushBack(value)
	}
	return clone
}

// Assign replaces the list's contents by a copy of src.
//
// The copy is built before the list is touched and then swapped in, so
// assigning a list to itself is safe.
func (list *List[T]) Assign(src *List[T]) {
	replacement := src.Clone()
	list.Swap(replacement)
}

// Move transfers the list's elements into a new list in O(1).
//
// The receiver is left empty. Cursors follow the elements into the new
// list.
func (list *List[T]) Move() *List[T] {
	moved := &List[T]{chain: list.lazyInit()}
	list.chain = nil
	return moved
}

// MoveFrom replaces the list's contents by src's elements in O(1).
//
// src is left empty. Moving a list into itself does nothing.
func (list *List[T]) MoveFrom(src *List[T]) {
	if src == list {
		return
	}

	list.chain = src.chain
	src.chain = nil
}

// Swap exchanges the contents of two lists in O(1).
func (list *List[T]) Swap(other *List[T]) {
	list.chain, other.chain = other.chain, list.chain
}

// Iter iterates over the list from front to back.
//
// This is intended to be used with for-range syntax.
func (list *List[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if list.chain == nil {
			return
		}

		c := list.chain
		i := 0
		for slot := c.first(); slot != tailSlot; slot = c.nodes[slot].next {
			if !yield(i, c.nodes[slot].value) {
				return
			}
			i++
		}
	}
}

// Backward iterates over the list from back to front.
//
// Indices count down from Len()-1.
func (list *List[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if list.chain == nil {
			return
		}

		c := list.chain
		i := c.count - 1
		for slot := c.last(); slot != headSlot; slot = c.nodes[slot].prev {
			if !yield(i, c.nodes[slot].value) {
				return
			}
			i--
		}
	}
}

// Values returns the elements in order as a new slice.
func (list *List[T]) Values() []T {
	values := make([]T, 0, list.Len())
	for _, value := range list.Iter() {
		values = append(values, value)
	}
	return values
}

// checkOwned verifies the cursor is a live position of this list.
func (list *List[T]) checkOwned(cur ConstCursor[T]) error {
	if cur.chain != list.chain {
		return wberrors.Bubblef(ErrInvalidCursor, "cursor belongs to another list")
	}

	_, err := cur.link()
	return err
}
