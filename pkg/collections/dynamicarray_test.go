package collections_test

import (
	"iter"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wandb/wandb/containers/pkg/collections"
)

func newArray[T any](t *testing.T, size int, opts ...collections.ArrayOption) *collections.DynamicArray[T] {
	t.Helper()

	array, err := collections.NewDynamicArray[T](size, opts...)
	require.NoError(t, err)
	return array
}

func TestNewDynamicArray_SizeAndCapacity(t *testing.T) {
	array := newArray[int](t, 4)

	assert.Equal(t, 4, array.Len())
	assert.Equal(t, 20, array.Cap())
}

func TestNewDynamicArray_Negative(t *testing.T) {
	_, err := collections.NewDynamicArray[int](-1)

	assert.ErrorIs(t, err, collections.ErrOutOfRange)
}

func TestZeroValueArray(t *testing.T) {
	var array collections.DynamicArray[int]

	assert.Equal(t, 0, array.Len())
	assert.Equal(t, 0, array.Cap())
	assert.True(t, array.Empty())

	require.NoError(t, array.PushBack(8))
	assert.Equal(t, 8, array.At(0))
	assert.Equal(t, 1, array.Cap())
}

func TestReserve_NotAboveSize_Noop(t *testing.T) {
	array := newArray[int](t, 5)

	require.NoError(t, array.Reserve(3))
	assert.Equal(t, 21, array.Cap())

	require.NoError(t, array.Reserve(5))
	assert.Equal(t, 21, array.Cap())
}

func TestReserve_SetsExactCapacity(t *testing.T) {
	array := newArray[int](t, 5)
	for i := range 5 {
		array.Set(i, i*10)
	}

	require.NoError(t, array.Reserve(8))

	assert.Equal(t, 8, array.Cap())
	assert.Equal(t, []int{0, 10, 20, 30, 40}, array.Values())
}

func TestResize_ShrinkKeepsCapacity(t *testing.T) {
	array := newArray[int](t, 10)

	require.NoError(t, array.Resize(3))

	assert.Equal(t, 3, array.Len())
	assert.Equal(t, 10+collections.SpareCapacity, array.Cap())
}

func TestResize_GrowsByDoubling(t *testing.T) {
	array := newArray[int](t, 3)
	require.Equal(t, 3+collections.SpareCapacity, array.Cap())

	require.NoError(t, array.Resize(100))

	// 19 -> 38 -> 76 -> 152
	assert.Equal(t, 2*2*2*(3+collections.SpareCapacity), array.Cap())
	assert.Equal(t, 152, array.Cap())
	assert.Equal(t, 100, array.Len())
}

func TestResize_FromZeroCapacity(t *testing.T) {
	var array collections.DynamicArray[int]

	require.NoError(t, array.Resize(5))

	// 1 -> 2 -> 4 -> 8
	assert.Equal(t, 8, array.Cap())
	assert.Equal(t, []int{0, 0, 0, 0, 0}, array.Values())
}

func TestResize_ShrinkThenGrowExposesOldSlots(t *testing.T) {
	array := collections.NewDynamicArrayOf(1, 2, 3)

	require.NoError(t, array.Resize(1))
	require.NoError(t, array.Resize(3))

	assert.Equal(t, []int{1, 2, 3}, array.Values())
}

func TestResize_PastCapacityZeroesExposedSlots(t *testing.T) {
	array := collections.NewDynamicArrayOf(1, 2, 3)

	require.NoError(t, array.Resize(1))
	require.NoError(t, array.Resize(array.Cap()+1))

	assert.Equal(t, []int{1, 0, 0}, array.Values()[:3])
}

func TestResize_Negative(t *testing.T) {
	array := newArray[int](t, 2)

	err := array.Resize(-1)

	assert.ErrorIs(t, err, collections.ErrOutOfRange)
	assert.Equal(t, 2, array.Len())
}

func TestPushBack_WhenSize0(t *testing.T) {
	array := newArray[int](t, 0)

	require.NoError(t, array.PushBack(8))

	assert.Equal(t, 8, array.At(0))
	assert.False(t, array.Empty())
}

func TestPushBack_WhenFull(t *testing.T) {
	array := newArray[int](t, 0)
	require.NoError(t, array.Resize(collections.SpareCapacity))
	for i := range collections.SpareCapacity {
		array.Set(i, i)
	}
	require.Equal(t, array.Len(), array.Cap())

	require.NoError(t, array.PushBack(collections.SpareCapacity))

	assert.Equal(t, 2*collections.SpareCapacity+1, array.Cap())
	assert.Equal(t, collections.SpareCapacity+1, array.Len())
	assert.Equal(t, collections.SpareCapacity, array.At(collections.SpareCapacity))
	assert.Equal(t, collections.SpareCapacity, array.Back())
}

func TestPushBack_Strings(t *testing.T) {
	array := newArray[string](t, 16)
	for i := range 16 {
		array.Set(i, strconv.Itoa(i))
	}

	require.NoError(t, array.PushBack("16"))

	assert.Equal(t, "16", array.At(16))
	assert.Equal(t, 17, array.Len())
	assert.Equal(t, 32, array.Cap())
	assert.Equal(t, "15", array.At(15))
}

func TestPopBack(t *testing.T) {
	array := collections.NewDynamicArrayOf(1, 2, 3)
	capacity := array.Cap()

	array.PopBack()

	assert.Equal(t, 2, array.Len())
	assert.Equal(t, capacity, array.Cap())
	assert.Equal(t, 2, array.Back())
}

func TestPopBack_EmptyPanics(t *testing.T) {
	var array collections.DynamicArray[int]

	assert.Panics(t, func() { array.PopBack() })
	assert.Panics(t, func() { array.Back() })
}

func TestRemoveLast(t *testing.T) {
	array := collections.NewDynamicArrayOf("a", "b")

	value, err := array.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, "b", value)

	_, err = array.RemoveLast()
	require.NoError(t, err)

	_, err = array.RemoveLast()
	assert.ErrorIs(t, err, collections.ErrEmpty)
	_, err = array.Last()
	assert.ErrorIs(t, err, collections.ErrEmpty)
}

func TestCheckedAccess(t *testing.T) {
	array := collections.NewDynamicArrayOf(1, 2, 3)

	value, err := array.Get(2)
	require.NoError(t, err)
	assert.Equal(t, 3, value)
	require.NoError(t, array.Put(0, 10))
	assert.Equal(t, 10, array.At(0))

	for _, index := range []int{-1, 3, array.Cap()} {
		_, err := array.Get(index)
		assert.ErrorIs(t, err, collections.ErrOutOfRange, "Get(%d)", index)
		assert.ErrorIs(t, array.Put(index, 0), collections.ErrOutOfRange, "Put(%d)", index)
	}
}

func TestRef(t *testing.T) {
	array := collections.NewDynamicArrayOf(1, 2)

	*array.Ref(1) = 5

	assert.Equal(t, []int{1, 5}, array.Values())
}

func TestClear_KeepsCapacity(t *testing.T) {
	array := collections.NewDynamicArrayOf(1, 2, 3)

	array.Clear()

	assert.True(t, array.Empty())
	assert.Equal(t, 3+collections.SpareCapacity, array.Cap())
}

func TestClone(t *testing.T) {
	array := newArray[int](t, 8)

	clone := array.Clone()

	assert.Equal(t, 8, clone.Len())
	assert.Equal(t, 24, clone.Cap())
}

func TestClone_ArrayIsIndependent(t *testing.T) {
	array := collections.NewDynamicArrayOf(1, 2, 3)

	clone := array.Clone()
	clone.Set(0, 100)
	require.NoError(t, clone.PushBack(4))

	assert.Equal(t, []int{1, 2, 3}, array.Values())
	assert.Equal(t, []int{100, 2, 3, 4}, clone.Values())
}

func TestAssign_Array(t *testing.T) {
	src := newArray[int](t, 4)
	dst := newArray[int](t, 5)

	dst.Assign(src)

	assert.Equal(t, 4, dst.Len())
	assert.Equal(t, 4, src.Len())
}

func TestAssign_ArraySelf(t *testing.T) {
	array := collections.NewDynamicArrayOf(1, 2)

	array.Assign(array)

	assert.Equal(t, []int{1, 2}, array.Values())
}

func TestMove_Array(t *testing.T) {
	src := newArray[int](t, 3)

	dst := src.Move()

	assert.Equal(t, 3, dst.Len())
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, src.Cap())
}

func TestMoveFrom_Array(t *testing.T) {
	src := newArray[int](t, 3)
	dst := newArray[int](t, 5)

	dst.MoveFrom(src)

	assert.Equal(t, 3, dst.Len())
	assert.Equal(t, 19, dst.Cap())
	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, src.Cap())

	// The moved-from array is still usable and grows from zero.
	require.NoError(t, src.PushBack(1))
	assert.Equal(t, 1, src.Cap())
}

func TestMoveFrom_ArraySelf(t *testing.T) {
	array := collections.NewDynamicArrayOf(1, 2)

	array.MoveFrom(array)

	assert.Equal(t, []int{1, 2}, array.Values())
}

func TestSwap_Array(t *testing.T) {
	a := collections.NewDynamicArrayOf(1)
	b := collections.NewDynamicArrayOf(2, 3)

	a.Swap(b)

	assert.Equal(t, []int{2, 3}, a.Values())
	assert.Equal(t, []int{1}, b.Values())
}

func TestArrayCursor_IteratesLiveRange(t *testing.T) {
	array := newArray[int](t, 10)
	for i := range 10 {
		array.Set(i, i)
	}

	counter := 0
	for cur := array.Begin(); !cur.Equal(array.End()); cur.Advance() {
		assert.Equal(t, counter, cur.Value())
		counter++
	}

	assert.Equal(t, array.Len(), counter)
	assert.Equal(t, array.Back(), array.End().Prev().Value())
}

func TestArrayCursor_Set(t *testing.T) {
	array := collections.NewDynamicArrayOf(1, 2)

	cur := array.Begin().Next()
	cur.Set(7)
	cur.Retreat()

	assert.Equal(t, 0, cur.Index())
	assert.Equal(t, []int{1, 7}, array.Values())
}

func TestArrayCursor_OutOfRangePanics(t *testing.T) {
	array := collections.NewDynamicArrayOf(1)

	assert.Panics(t, func() { array.End().Value() })
	assert.Panics(t, func() { array.Begin().Prev().Set(0) })
}

func TestArrayIter(t *testing.T) {
	array := collections.NewDynamicArrayOf("a", "b")

	next, stop := iter.Pull2(array.Iter())
	defer stop()

	i, x, ok := next()
	assert.Equal(t, 0, i)
	assert.Equal(t, "a", x)
	assert.True(t, ok)
	i, x, ok = next()
	assert.Equal(t, 1, i)
	assert.Equal(t, "b", x)
	assert.True(t, ok)
	_, _, ok = next()
	assert.False(t, ok)
}

func TestReserve_HugeCapacityFails(t *testing.T) {
	array := collections.NewDynamicArrayOf(1, 2, 3)
	capacity := array.Cap()

	err := array.Reserve(math.MaxInt)

	assert.ErrorIs(t, err, collections.ErrAllocationFailed)
	assert.Equal(t, capacity, array.Cap())
	assert.Equal(t, []int{1, 2, 3}, array.Values())
}
