package collectionstest

import (
	"github.com/wandb/wandb/containers/pkg/collections"
)

// RecordingObserver is a GrowthObserver that remembers every event.
//
// The zero value is ready to use.
type RecordingObserver struct {
	Reallocations []collections.GrowthEvent
	Failures      []collections.GrowthEvent
	Errors        []error
}

var _ collections.GrowthObserver = &RecordingObserver{}

func (o *RecordingObserver) Reallocated(event collections.GrowthEvent) {
	o.Reallocations = append(o.Reallocations, event)
}

func (o *RecordingObserver) AllocationFailed(event collections.GrowthEvent, err error) {
	o.Failures = append(o.Failures, event)
	o.Errors = append(o.Errors, err)
}

// Capacities returns the capacity after each reallocation, in order.
func (o *RecordingObserver) Capacities() []int {
	capacities := make([]int, 0, len(o.Reallocations))
	for _, event := range o.Reallocations {
		capacities = append(capacities, event.NewCapacity)
	}
	return capacities
}
