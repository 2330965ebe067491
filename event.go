// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

// An Event identifies the event type when installing or running a
// Handler. Install event handlers in a Scheduler to observe the life
// cycle of the requests it schedules.
type Event int

const (
	// Submitted identifies the event that occurs when a request is
	// accepted by Submit or SubmitPlan and enters the pending queue.
	//
	// When Scheduler fires Submitted, the request's Execution is nil.
	Submitted Event = iota
	// Issued identifies the event that occurs when a request leaves
	// the pending queue and is handed to the transport.
	//
	// Issued fires before the transport's Issue method is called, so
	// it always precedes the request's outcome event.
	Issued
	// Succeeded identifies the event that occurs after a request
	// completed with a 2XX status and before its callback's OnSuccess
	// method runs.
	Succeeded
	// Failed identifies the event that occurs after a request ended in
	// a transport error or a non-2XX status, and before its callback's
	// OnFailure method runs.
	Failed
	// Cancelled identifies the event that occurs for each pending or
	// active request dropped by Cancel. No callback is ever called for
	// a cancelled request.
	Cancelled
	// Discarded identifies the event that occurs when the transport
	// reports a completion for a request the scheduler no longer
	// tracks, typically a transfer that was in flight when Cancel was
	// called. It also occurs instead of Succeeded or Failed when Cancel
	// is called after a completion was received but before its callback
	// ran.
	//
	// When Scheduler fires Discarded, the request's Execution is set
	// to the late execution.
	Discarded
	// CallbackPanicked identifies the event that occurs when a
	// callback method panics. The panic is recovered, its value is
	// stored in the request's Panic field, and scheduling continues.
	CallbackPanicked
	// eventSentinel provides the total number of events typed as an
	// Event.
	eventSentinel

	// numEvents provides the total number of events types as an int.
	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"Submitted",
	"Issued",
	"Succeeded",
	"Failed",
	"Cancelled",
	"Discarded",
	"CallbackPanicked",
}

// Events returns a slice containing all events which can occur in the
// life cycle of a scheduled request.
func Events() []Event {
	return []Event{
		Submitted,
		Issued,
		Succeeded,
		Failed,
		Cancelled,
		Discarded,
		CallbackPanicked,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	if evt < 0 || evt >= eventSentinel {
		return "Event(?)"
	}
	return eventNames[int(evt)]
}

// String returns the name of the event.
func (evt Event) String() string {
	return evt.Name()
}
