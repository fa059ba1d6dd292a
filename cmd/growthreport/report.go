package main

import (
	"errors"
	"fmt"

	"github.com/wandb/wandb/containers/pkg/collections"
	"github.com/wandb/wandb/containers/pkg/observability"
)

// Settings is the sequence of operations applied to the array.
//
// Operations run in the order Reserve, Resize, PushBack; zero skips
// Reserve and Resize.
type Settings struct {
	InitialSize int
	Reserve     int
	Resize      int
	Pushes      int
	MaxCapacity int
}

func (s Settings) validate() error {
	for _, flag := range []struct {
		name  string
		value int
	}{
		{"initial-size", s.InitialSize},
		{"reserve", s.Reserve},
		{"resize", s.Resize},
		{"pushes", s.Pushes},
	} {
		if flag.value < 0 {
			return fmt.Errorf("--%s must not be negative, got %d", flag.name, flag.value)
		}
	}
	return nil
}

// Reallocation is one buffer growth in a Report.
type Reallocation struct {
	Reason      string `json:"reason" yaml:"reason"`
	OldCapacity int    `json:"oldCapacity" yaml:"oldCapacity"`
	NewCapacity int    `json:"newCapacity" yaml:"newCapacity"`
	Relocated   int    `json:"relocated" yaml:"relocated"`
}

// Report describes how the array grew.
type Report struct {
	RunID           string         `json:"runId,omitempty" yaml:"runId,omitempty"`
	InitialSize     int            `json:"initialSize" yaml:"initialSize"`
	InitialCapacity int            `json:"initialCapacity" yaml:"initialCapacity"`
	FinalSize       int            `json:"finalSize" yaml:"finalSize"`
	FinalCapacity   int            `json:"finalCapacity" yaml:"finalCapacity"`
	Reallocations   []Reallocation `json:"reallocations" yaml:"reallocations"`
	Relocated       int            `json:"relocated" yaml:"relocated"`
	Error           string         `json:"error,omitempty" yaml:"error,omitempty"`
}

// recorder collects reallocations for the report and forwards every event.
type recorder struct {
	next          collections.GrowthObserver
	reallocations []Reallocation
}

var _ collections.GrowthObserver = &recorder{}

func (r *recorder) Reallocated(event collections.GrowthEvent) {
	r.reallocations = append(r.reallocations, Reallocation{
		Reason:      event.Reason.String(),
		OldCapacity: event.OldCapacity,
		NewCapacity: event.NewCapacity,
		Relocated:   event.Size,
	})
	if r.next != nil {
		r.next.Reallocated(event)
	}
}

func (r *recorder) AllocationFailed(event collections.GrowthEvent, err error) {
	if r.next != nil {
		r.next.AllocationFailed(event, err)
	}
}

// runReport applies the settings to a new DynamicArray[int].
//
// An allocation failure stops the run and is recorded in the report;
// other errors are returned.
func runReport(
	settings Settings,
	observer collections.GrowthObserver,
	logger *observability.CoreLogger,
) (*Report, error) {
	rec := &recorder{next: observer}
	array, err := collections.NewDynamicArray[int](
		settings.InitialSize,
		collections.WithGrowthObserver(rec),
		collections.WithLogger(logger),
		collections.WithMaxCapacity(settings.MaxCapacity),
	)
	if err != nil {
		return nil, err
	}

	report := &Report{
		InitialSize:     array.Len(),
		InitialCapacity: array.Cap(),
	}

	err = apply(array, settings)
	switch {
	case errors.Is(err, collections.ErrAllocationFailed):
		report.Error = err.Error()
		logger.CaptureWarn(
			"growthreport: run stopped early",
			"size", array.Len(),
			"capacity", array.Cap(),
		)
	case err != nil:
		return nil, err
	}

	report.FinalSize = array.Len()
	report.FinalCapacity = array.Cap()
	report.Reallocations = rec.reallocations
	if report.Reallocations == nil {
		report.Reallocations = []Reallocation{}
	}
	for _, r := range rec.reallocations {
		report.Relocated += r.Relocated
	}

	return report, nil
}

func apply(array *collections.DynamicArray[int], settings Settings) error {
	if settings.Reserve > 0 {
		if err := array.Reserve(settings.Reserve); err != nil {
			return err
		}
	}

	if settings.Resize > 0 {
		if err := array.Resize(settings.Resize); err != nil {
			return err
		}
	}

	for i := range settings.Pushes {
		if err := array.PushBack(i); err != nil {
			return err
		}
	}

	return nil
}
