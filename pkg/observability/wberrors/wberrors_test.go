package wberrors_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wandb/wandb/containers/pkg/observability/wberrors"
)

var errSentinel = wberrors.Newf("sentinel")

func TestNewfFormat(t *testing.T) {
	assert.Equal(t,
		"index 3 out of range",
		wberrors.Newf("index %d out of range", 3).Error())
}

func TestWrapNil_Panics(t *testing.T) {
	t.Run("Enrichf", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = wberrors.Enrichf(nil, "text")
		})
	})

	t.Run("Bubblef", func(t *testing.T) {
		assert.Panics(t, func() {
			_ = wberrors.Bubblef(nil, "text")
		})
	})
}

func TestEnrichf(t *testing.T) {
	t.Run("no message", func(t *testing.T) {
		assert.Equal(t, "EOF", wberrors.Enrichf(io.EOF, "").Error())
	})

	t.Run("with format", func(t *testing.T) {
		err := wberrors.Enrichf(io.EOF, "reserve(%d)", 8)

		assert.Equal(t, "reserve(8): EOF", err.Error())
		assert.NotErrorIs(t, err, io.EOF)
	})
}

func TestBubblef(t *testing.T) {
	t.Run("no message", func(t *testing.T) {
		assert.Equal(t, "sentinel", wberrors.Bubblef(errSentinel, "").Error())
	})

	t.Run("with format", func(t *testing.T) {
		err := wberrors.Bubblef(errSentinel, "index %d", 7)

		assert.Equal(t, "index 7: sentinel", err.Error())
		assert.ErrorIs(t, err, errSentinel)
		assert.Same(t, errSentinel, errors.Unwrap(err))
	})
}

func TestAttrs(t *testing.T) {
	t.Run("none if not enriched", func(t *testing.T) {
		assert.Empty(t, wberrors.Attrs(io.EOF))
	})

	t.Run("sorted by key", func(t *testing.T) {
		err := wberrors.Newf("").
			Attr(slog.Int("size", 2)).
			Attr(slog.Int("index", 5))

		assert.Equal(t,
			[]slog.Attr{slog.Int("index", 5), slog.Int("size", 2)},
			wberrors.Attrs(err))
	})

	t.Run("copies when wrapping", func(t *testing.T) {
		inner := wberrors.Newf("").
			Attr(slog.String("key1", "value1")).
			Attr(slog.String("key2", "value2"))

		outer := wberrors.Enrichf(inner, "").
			Attr(slog.String("key2", "overwritten"))

		assert.ElementsMatch(t,
			[]slog.Attr{
				slog.String("key1", "value1"),
				slog.String("key2", "value2"),
			},
			wberrors.Attrs(inner))
		assert.ElementsMatch(t,
			[]slog.Attr{
				slog.String("key1", "value1"),
				slog.String("key2", "overwritten"),
			},
			wberrors.Attrs(outer))
	})
}

func TestTags(t *testing.T) {
	assert.Empty(t, wberrors.Tags(io.EOF))
	assert.Equal(t,
		map[string]string{"capacity": "21"},
		wberrors.Tags(wberrors.Newf("").Attr(slog.Int("capacity", 21))))
}

func TestSkipSentry(t *testing.T) {
	assert.False(t, wberrors.SkipSentry(io.EOF))
	assert.False(t, wberrors.SkipSentry(wberrors.Newf("x")))
	assert.True(t, wberrors.SkipSentry(wberrors.Newf("x").SkipSentryIf(true)))

	t.Run("inherited when wrapping", func(t *testing.T) {
		inner := wberrors.Newf("x").SkipSentryIf(true)

		assert.True(t, wberrors.SkipSentry(wberrors.Bubblef(inner, "y")))
	})
}
