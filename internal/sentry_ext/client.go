// Package sentry_ext forwards captured errors to Sentry.
package sentry_ext

import (
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

// Params configures a Client.
type Params struct {
	// DSN is the Sentry Data Source Name.
	//
	// An empty DSN creates a client that never sends anything.
	DSN string

	// Release is the version of the application.
	Release string

	// Environment is the environment the application is running in.
	Environment string

	// Transport overrides the Sentry transport. Used in tests.
	Transport sentry.Transport

	// LRUSize is the number of distinct messages remembered for
	// de-duplication.
	LRUSize int
}

// Client sends errors and messages to Sentry, dropping duplicates that
// were sent recently.
type Client struct {
	hub    *sentry.Hub
	recent *recentCache
}

// New creates a client with its own Sentry hub.
//
// Returns nil if the Sentry client or the de-duplication cache cannot be
// created; the error is logged.
func New(params Params) *Client {
	sentryClient, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         params.DSN,
		Release:     params.Release,
		Environment: params.Environment,
		Transport:   params.Transport,
	})
	if err != nil {
		slog.Error("sentry_ext: New: failed to initialize sentry", "error", err)
		return nil
	}

	if params.DSN == "" {
		slog.Debug("sentry_ext: New: sentry is disabled, no DSN provided")
	}

	return NewWithHub(sentry.NewHub(sentryClient, sentry.NewScope()), params.LRUSize)
}

// NewWithHub creates a client that captures through the given hub.
func NewWithHub(hub *sentry.Hub, lruSize int) *Client {
	recent, err := newRecentCache(lruSize)
	if err != nil {
		slog.Error("sentry_ext: NewWithHub: failed to create cache", "error", err)
		return nil
	}

	return &Client{hub: hub, recent: recent}
}

// CaptureException sends an error event tagged with the given tags.
func (s *Client) CaptureException(err error, tags map[string]string) {
	if !s.recent.shouldCapture(err.Error()) {
		return
	}

	s.withTags(tags).CaptureException(err)
}

// CaptureMessage sends an informational event tagged with the given tags.
func (s *Client) CaptureMessage(msg string, tags map[string]string) {
	if !s.recent.shouldCapture(msg) {
		return
	}

	s.withTags(tags).CaptureMessage(msg)
}

// Flush waits until buffered events are sent or the timeout expires.
func (s *Client) Flush(timeout time.Duration) bool {
	return s.hub.Flush(timeout)
}

func (s *Client) withTags(tags map[string]string) *sentry.Hub {
	localHub := s.hub.Clone()
	localHub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
	})
	return localHub
}
