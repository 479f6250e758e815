package sim

// EventType tags a timeline entry as the first slice a process ever received
// ("complete") or a later one ("preempt").
type EventType string

const (
	EventComplete EventType = "complete"
	EventPreempt  EventType = "preempt"
)

// Event is derived from one TimelineEntry after the run.
type Event struct {
	Time      int64     `json:"time"` // end of the entry
	Type      EventType `json:"type"`
	ProcessID string    `json:"process_id"`
}

// deriveEvents scans the timeline in order; an entry is EventComplete iff no
// earlier entry shares its process ID.
func deriveEvents(timeline []TimelineEntry) []Event {
	events := make([]Event, len(timeline))
	seen := make(map[string]bool, len(timeline))
	for i, entry := range timeline {
		typ := EventComplete
		if seen[entry.ProcessID] {
			typ = EventPreempt
		}
		seen[entry.ProcessID] = true
		events[i] = Event{Time: entry.End, Type: typ, ProcessID: entry.ProcessID}
	}
	return events
}
