package intercept

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteEvent encodes one event onto the wire. The encoding is a single JSON
// document per connection; it is an internal contract between the stand-in
// processes and the collector.
func WriteEvent(w io.Writer, event *Event) error {
	if len(event.Execution.Arguments) == 0 {
		return fmt.Errorf("refusing to encode event with empty argument vector")
	}
	return json.NewEncoder(w).Encode(event)
}

// ReadEvent decodes one event from the wire.
func ReadEvent(r io.Reader) (*Event, error) {
	event := &Event{}
	if err := json.NewDecoder(r).Decode(event); err != nil {
		return nil, fmt.Errorf("malformed event payload: %w", err)
	}
	if len(event.Execution.Arguments) == 0 {
		return nil, fmt.Errorf("event with empty argument vector")
	}
	return event, nil
}
