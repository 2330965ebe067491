// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvents(t *testing.T) {
	assert.Len(t, eventNames, numEvents)
	assert.Len(t, Events(), numEvents)
	events := Events()
	assert.Equal(t, Submitted, events[Submitted])
	assert.Equal(t, Issued, events[Issued])
	assert.Equal(t, Succeeded, events[Succeeded])
	assert.Equal(t, Failed, events[Failed])
	assert.Equal(t, Cancelled, events[Cancelled])
	assert.Equal(t, Discarded, events[Discarded])
	assert.Equal(t, CallbackPanicked, events[CallbackPanicked])
}

func TestEvent_Name(t *testing.T) {
	assert.Equal(t, "Submitted", Submitted.Name())
	assert.Equal(t, "Issued", Issued.Name())
	assert.Equal(t, "Succeeded", Succeeded.Name())
	assert.Equal(t, "Failed", Failed.Name())
	assert.Equal(t, "Cancelled", Cancelled.Name())
	assert.Equal(t, "Discarded", Discarded.Name())
	assert.Equal(t, "CallbackPanicked", CallbackPanicked.String())
	assert.Equal(t, "Event(?)", Event(-1).Name())
	assert.Equal(t, "Event(?)", eventSentinel.Name())
}
