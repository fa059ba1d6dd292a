// Package wberrors defines an error type that carries structured data.
//
// Errors are built with Newf, Enrichf and Bubblef:
//
//   - Newf constructs an error from a formatted message.
//   - Enrichf prefixes a message to an underlying error and keeps its data,
//     without exposing it through `errors.Unwrap`.
//   - Bubblef is like Enrichf, but the underlying error stays visible to
//     `errors.Is` and `errors.As`.
//
// Attr attaches slog attributes that are picked up by
// observability.CoreLogger when the error is captured:
//
//	return wberrors.Bubblef(ErrOutOfRange, "index %d", i).
//		Attr(slog.Int("index", i)).
//		Attr(slog.Int("size", size))
package wberrors

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// Attrs returns the slog attrs stored in the error, sorted by key.
func Attrs(err error) []slog.Attr {
	wberr, ok := err.(*Error)
	if !ok {
		return nil
	}

	attrs := make([]slog.Attr, 0, len(wberr.attrs))
	for _, key := range slices.Sorted(maps.Keys(wberr.attrs)) {
		attrs = append(attrs, slog.Attr{Key: key, Value: wberr.attrs[key]})
	}

	return attrs
}

// Tags returns the error's attrs formatted as Sentry tags.
func Tags(err error) map[string]string {
	wberr, ok := err.(*Error)
	if !ok {
		return nil
	}

	tags := make(map[string]string, len(wberr.attrs))
	for key, value := range wberr.attrs {
		tags[key] = value.String()
	}

	return tags
}

// SkipSentry reports whether the error was marked as not worth capturing.
func SkipSentry(err error) bool {
	if wberr, ok := err.(*Error); ok {
		return wberr.noSentry
	}

	return false
}

// Error is a Go error with structured data for logging and Sentry.
//
// Errors are not safe for concurrent use. Construct and enrich an error in
// a single statement using method chaining.
type Error struct {
	msg string // error message or context
	err error  // wrapped error or nil

	noSentry bool // whether to skip Sentry upload

	// attrs is structured data attached to the error.
	attrs map[string]slog.Value
}

// Newf creates a new error using Sprintf to construct the message.
func Newf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Enrichf prepends context to an error without exposing it to
// `errors.Unwrap`.
//
// With an empty format string, the message is the inner error's message.
// Attrs and the Sentry flag of an enriched inner error are copied over.
func Enrichf(err error, format string, args ...any) *Error {
	return wrap(fmt.Sprintf(format, args...), err, false)
}

// Bubblef is like Enrichf, but exposes the given error through
// `errors.Unwrap`, so the result matches it with `errors.Is`.
//
// Use it for sentinel errors that callers are expected to inspect.
func Bubblef(err error, format string, args ...any) *Error {
	return wrap(fmt.Sprintf(format, args...), err, true)
}

func wrap(msg string, err error, shouldWrap bool) *Error {
	if err == nil {
		panic("wberrors: cannot wrap nil error")
	}

	wrapped := &Error{}

	switch {
	case shouldWrap:
		wrapped.msg = msg
		wrapped.err = err
	case msg == "":
		wrapped.msg = err.Error()
	default:
		wrapped.msg = fmt.Sprintf("%s: %v", msg, err)
	}

	if wberr, ok := err.(*Error); ok {
		wrapped.noSentry = wberr.noSentry
		wrapped.attrs = maps.Clone(wberr.attrs)
	}

	return wrapped
}

// Attr associates structured data to the error and returns the error.
//
// An existing attr with the same key is overwritten.
func (e *Error) Attr(attr slog.Attr) *Error {
	if e.attrs == nil {
		e.attrs = make(map[string]slog.Value)
	}

	e.attrs[attr.Key] = attr.Value
	return e
}

// SkipSentryIf marks the error as not worth uploading if the condition is
// true, and returns it.
func (e *Error) SkipSentryIf(condition bool) *Error {
	e.noSentry = e.noSentry || condition
	return e
}

// Error implements error.Error.
func (e *Error) Error() string {
	switch {
	case e.err == nil:
		return e.msg
	case e.msg == "":
		return e.err.Error()
	default:
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
}

// Unwrap returns the inner error.
func (e *Error) Unwrap() error {
	return e.err
}
