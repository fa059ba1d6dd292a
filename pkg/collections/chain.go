package collections

const (
	headSlot int32 = 0 // sentinel before the first element
	tailSlot int32 = 1 // sentinel after the last element

	noSlot int32 = -1
)

// node is a slot in a chain's arena.
type node[T any] struct {
	value T

	prev int32 // slot of the predecessor, or noSlot
	next int32 // slot of the successor, or noSlot

	// gen is bumped every time the slot is released, so that cursors
	// created for an earlier occupant can be told apart.
	gen uint32

	// live is true if the slot holds a real element.
	live bool
}

// chain owns the nodes of a List.
//
// Nodes are kept in an arena and linked by slot index. Slots 0 and 1 are
// the head and tail sentinels; they are never released. Released slots are
// reused by later inserts.
type chain[T any] struct {
	nodes []node[T]
	free  []int32
	count int
}

func newChain[T any]() *chain[T] {
	c := &chain[T]{nodes: make([]node[T], 2)}
	c.nodes[headSlot].prev = noSlot
	c.nodes[headSlot].next = tailSlot
	c.nodes[tailSlot].prev = headSlot
	c.nodes[tailSlot].next = noSlot
	return c
}

func (c *chain[T]) first() int32 {
	return c.nodes[headSlot].next
}

func (c *chain[T]) last() int32 {
	return c.nodes[tailSlot].prev
}

// alloc stores the value in a free slot and returns it.
//
// The slot is not linked yet.
func (c *chain[T]) alloc(value T) int32 {
	if n := len(c.free); n > 0 {
		slot := c.free[n-1]
		c.free = c.free[:n-1]

		c.nodes[slot].value = value
		c.nodes[slot].live = true
		return slot
	}

	c.nodes = append(c.nodes, node[T]{value: value, live: true})
	return int32(len(c.nodes) - 1)
}

// insertBefore links a new node holding the value in front of `at`.
func (c *chain[T]) insertBefore(at int32, value T) int32 {
	// alloc may grow the arena, so no node pointers are held across it.
	slot := c.alloc(value)
	prev := c.nodes[at].prev

	c.nodes[slot].prev = prev
	c.nodes[slot].next = at
	c.nodes[prev].next = slot
	c.nodes[at].prev = slot

	c.count++
	return slot
}

// remove unlinks and releases a real node, returning its successor.
func (c *chain[T]) remove(slot int32) int32 {
	n := &c.nodes[slot]
	prev, next := n.prev, n.next

	c.nodes[prev].next = next
	c.nodes[next].prev = prev

	var zero T
	n.value = zero
	n.prev, n.next = noSlot, noSlot
	n.live = false
	n.gen++

	c.free = append(c.free, slot)
	c.count--
	return next
}

// cursorAt returns a cursor positioned on the slot.
func (c *chain[T]) cursorAt(slot int32) ConstCursor[T] {
	return ConstCursor[T]{chain: c, slot: slot, gen: c.nodes[slot].gen}
}
