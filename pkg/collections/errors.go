package collections

import (
	"log/slog"

	"github.com/wandb/wandb/containers/pkg/observability/wberrors"
)

var (
	// ErrOutOfRange is returned for an index outside [0, Len()) or an
	// operation on a sentinel position.
	ErrOutOfRange error = wberrors.Newf("collections: out of range")

	// ErrEmpty is returned when removing or reading from an empty container.
	ErrEmpty error = wberrors.Newf("collections: container is empty")

	// ErrInvalidCursor is returned for a cursor that does not belong to the
	// container or whose element was erased.
	ErrInvalidCursor error = wberrors.Newf("collections: invalid cursor")

	// ErrAllocationFailed is returned when a buffer could not be grown.
	//
	// The container is left as it was before the call.
	ErrAllocationFailed error = wberrors.Newf("collections: allocation failed")
)

func indexError(index, size int) error {
	return wberrors.Bubblef(ErrOutOfRange, "index %d with length %d", index, size).
		Attr(slog.Int("index", index)).
		Attr(slog.Int("size", size)).
		SkipSentryIf(true)
}

func emptyError(op string) error {
	return wberrors.Bubblef(ErrEmpty, "%s", op).SkipSentryIf(true)
}
