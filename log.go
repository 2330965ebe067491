// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

import (
	"github.com/sirupsen/logrus"
)

// LogHandler returns a Handler that logs scheduler events to l with
// structured fields. Install it with HandlerGroup.PushBackAll.
//
// Failed events are logged at warning level, CallbackPanicked events
// at error level, and everything else at debug level.
func LogHandler(l logrus.FieldLogger) Handler {
	if l == nil {
		panic("reqq: nil logger")
	}
	return HandlerFunc(func(evt Event, r *Request) {
		fields := logrus.Fields{
			"event": evt.Name(),
			"id":    r.ID,
			"url":   r.Plan.URL.String(),
		}
		if e := r.Execution; e != nil {
			if status := e.StatusCode(); status != 0 {
				fields["status"] = status
			}
			if e.Err != nil {
				fields["error"] = e.Err
			}
			if e.Ended() {
				fields["duration"] = e.Duration()
			}
		}
		entry := l.WithFields(fields)
		switch evt {
		case Failed:
			entry.Warn("request failed")
		case CallbackPanicked:
			entry.WithField("panic", r.Panic).Error("callback panicked")
		default:
			entry.Debug("request " + evtVerb(evt))
		}
	})
}

func evtVerb(evt Event) string {
	switch evt {
	case Submitted:
		return "submitted"
	case Issued:
		return "issued"
	case Succeeded:
		return "succeeded"
	case Cancelled:
		return "cancelled"
	case Discarded:
		return "discarded"
	default:
		return evt.Name()
	}
}
