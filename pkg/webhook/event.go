package webhook

import (
	"encoding/json"
	"fmt"
)

// Event is the body of a Storyblok story webhook.
// Only used to enrich the logs, the content is never trusted before verification.
type Event struct {
	Text     string `json:"text,omitempty"`
	Action   string `json:"action,omitempty"`
	SpaceID  int64  `json:"space_id,omitempty"`
	StoryID  int64  `json:"story_id,omitempty"`
	FullSlug string `json:"full_slug,omitempty"`
}

// Decode a verified payload, returns an error wrapping ErrMalformedPayload on failure
func ParseEvent(payload []byte) (Event, error) {
	var event Event
	err := json.Unmarshal(payload, &event)
	if err != nil {
		return Event{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return event, nil
}

// Return the action of the event, or "unknown" if none was sent
func (e Event) Type() string {
	if e.Action == "" {
		return "unknown"
	}
	return e.Action
}
