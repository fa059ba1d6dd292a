package collections

import (
	"log/slog"

	"github.com/wandb/wandb/containers/pkg/observability/wberrors"
)

// ConstCursor is a read-only position in a List.
//
// Cursors are small values; copying one copies the position. A cursor
// borrows from the list and stays usable across inserts. Erasing the
// element under a cursor invalidates it. Using an invalidated cursor
// panics with ErrInvalidCursor in the unchecked methods and returns it in
// the checked ones.
//
// The zero ConstCursor belongs to no list and is invalid.
type ConstCursor[T any] struct {
	chain *chain[T]
	slot  int32
	gen   uint32
}

// Value returns the element under the cursor.
//
// It panics if the cursor is on a sentinel (End(), or one step before
// Begin()) or is invalid.
func (cur ConstCursor[T]) Value() T {
	n, err := cur.element()
	if err != nil {
		panic(err)
	}
	return n.value
}

// TryValue is like Value but returns an error instead of panicking.
func (cur ConstCursor[T]) TryValue() (T, error) {
	n, err := cur.element()
	if err != nil {
		var zero T
		return zero, err
	}
	return n.value, nil
}

// Next returns a cursor to the following position.
//
// It panics at End().
func (cur ConstCursor[T]) Next() ConstCursor[T] {
	n := cur.mustLink()
	if cur.slot == tailSlot {
		panic(wberrors.Bubblef(ErrOutOfRange, "advance past end"))
	}
	return cur.chain.cursorAt(n.next)
}

// Prev returns a cursor to the preceding position.
//
// Stepping back from Begin() reaches the head sentinel, which can only be
// moved forward again. Prev panics on the head sentinel.
func (cur ConstCursor[T]) Prev() ConstCursor[T] {
	n := cur.mustLink()
	if cur.slot == headSlot {
		panic(wberrors.Bubblef(ErrOutOfRange, "retreat before begin"))
	}
	return cur.chain.cursorAt(n.prev)
}

// Advance moves the cursor forward in place.
func (cur *ConstCursor[T]) Advance() {
	*cur = cur.Next()
}

// Retreat moves the cursor back in place.
func (cur *ConstCursor[T]) Retreat() {
	*cur = cur.Prev()
}

// Equal reports whether both cursors are on the same node.
func (cur ConstCursor[T]) Equal(other ConstCursor[T]) bool {
	return cur.chain == other.chain &&
		cur.slot == other.slot &&
		cur.gen == other.gen
}

// IsEnd reports whether the cursor is on the tail sentinel.
func (cur ConstCursor[T]) IsEnd() bool {
	return cur.chain != nil && cur.slot == tailSlot
}

// link returns the node under the cursor, sentinels included.
func (cur ConstCursor[T]) link() (*node[T], error) {
	if cur.chain == nil {
		return nil, wberrors.Bubblef(ErrInvalidCursor, "cursor belongs to no list")
	}

	if cur.slot < 0 || int(cur.slot) >= len(cur.chain.nodes) {
		return nil, wberrors.Bubblef(ErrInvalidCursor, "slot %d", cur.slot).
			Attr(slog.Int("slot", int(cur.slot)))
	}

	n := &cur.chain.nodes[cur.slot]
	if n.gen != cur.gen {
		return nil, wberrors.Bubblef(ErrInvalidCursor, "element was erased").
			Attr(slog.Int("slot", int(cur.slot)))
	}

	return n, nil
}

func (cur ConstCursor[T]) mustLink() *node[T] {
	n, err := cur.link()
	if err != nil {
		panic(err)
	}
	return n
}

// element returns the real node under the cursor.
func (cur ConstCursor[T]) element() (*node[T], error) {
	n, err := cur.link()
	if err != nil {
		return nil, err
	}

	if !n.live {
		return nil, wberrors.Bubblef(ErrOutOfRange, "dereference of sentinel")
	}

	return n, nil
}

// Cursor is a position in a List that can also modify the element.
//
// A Cursor can be used wherever a ConstCursor is expected through Const()
// or its embedded field; the reverse conversion does not exist.
type Cursor[T any] struct {
	ConstCursor[T]
}

// Const returns the read-only view of the cursor.
func (cur Cursor[T]) Const() ConstCursor[T] {
	return cur.ConstCursor
}

// Next returns a cursor to the following position.
//
// It panics at End().
func (cur Cursor[T]) Next() Cursor[T] {
	return Cursor[T]{cur.ConstCursor.Next()}
}

// Prev returns a cursor to the preceding position.
//
// It panics on the head sentinel.
func (cur Cursor[T]) Prev() Cursor[T] {
	return Cursor[T]{cur.ConstCursor.Prev()}
}

// Set replaces the element under the cursor.
//
// It panics on a sentinel or an invalid cursor.
func (cur Cursor[T]) Set(value T) {
	if err := cur.TrySet(value); err != nil {
		panic(err)
	}
}

// TrySet is like Set but returns an error instead of panicking.
func (cur Cursor[T]) TrySet(value T) error {
	n, err := cur.element()
	if err != nil {
		return err
	}

	n.value = value
	return nil
}

// Update calls fn with a pointer to the element under the cursor.
//
// The pointer must not be retained: inserts may move the arena.
func (cur Cursor[T]) Update(fn func(*T)) {
	n, err := cur.element()
	if err != nil {
		panic(err)
	}

	fn(&n.value)
}
