// Package telemetry carries the engine's diagnostic events to an
// observational sink. Events have no control-flow effect; a sink may drop
// them entirely.
package telemetry

import (
	"log"
	"sync"
)

// EventKind identifies a diagnostic event
type EventKind string

const (
	KindAmountChanged         EventKind = "amount_changed"
	KindModifierActivated     EventKind = "modifier_activated"
	KindModifierExpired       EventKind = "modifier_expired"
	KindModifierTick          EventKind = "modifier_tick"
	KindModifierCancelled     EventKind = "modifier_cancelled"
	KindRedundantActivation   EventKind = "redundant_activation"
	KindRedundantDeactivation EventKind = "redundant_deactivation"
)

// Event is a single diagnostic record
type Event struct {
	Kind   EventKind
	Stat   string // owning stat name, empty for unattached values
	Fields map[string]any
}

// Sink receives diagnostic events
type Sink interface {
	Emit(e Event)
}

// LogSink writes events to the standard logger
type LogSink struct{}

// NewLogSink creates a LogSink
func NewLogSink() *LogSink {
	return &LogSink{}
}

// Emit logs the event
func (s *LogSink) Emit(e Event) {
	if len(e.Fields) > 0 {
		log.Printf("statkit: %s stat=%q fields=%v", e.Kind, e.Stat, e.Fields)
		return
	}
	log.Printf("statkit: %s stat=%q", e.Kind, e.Stat)
}

// NopSink discards all events
type NopSink struct{}

// NewNopSink creates a NopSink
func NewNopSink() *NopSink {
	return &NopSink{}
}

// Emit discards the event
func (s *NopSink) Emit(Event) {}

// Recorder captures events for test assertions
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit appends the event to the recording
func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of all recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many events of the given kind were recorded
func (r *Recorder) Count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset clears the recording
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
