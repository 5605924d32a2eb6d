package config

import "slices"

// EventName is the logical name of a realtime event.
type EventName string

const (
	EventConnect          EventName = "CONNECT"
	EventDisconnect       EventName = "DISCONNECT"
	EventVideoFrame       EventName = "VIDEO_FRAME"
	EventDetectionResults EventName = "DETECTION_RESULTS"
	EventDetectionError   EventName = "DETECTION_ERROR"
	EventStatus           EventName = "STATUS"
)

// Wire identifiers are agreed with the backend. Changing one breaks the protocol.
var events = map[EventName]string{
	EventConnect:          "connect",
	EventDisconnect:       "disconnect",
	EventVideoFrame:       "video_frame",
	EventDetectionResults: "detection_results",
	EventDetectionError:   "detection_error",
	EventStatus:           "status",
}

var eventOrder = []EventName{
	EventConnect,
	EventDisconnect,
	EventVideoFrame,
	EventDetectionResults,
	EventDetectionError,
	EventStatus,
}

// WireEvent returns the identifier sent on the realtime channel for name
func WireEvent(name EventName) (string, bool) {
	id, ok := events[name]
	return id, ok
}

// Events returns a copy of the realtime event catalogue.
func Events() map[EventName]string {
	out := make(map[EventName]string, len(events))
	for name, id := range events {
		out[name] = id
	}
	return out
}

func EventNames() []EventName {
	return slices.Clone(eventOrder)
}
