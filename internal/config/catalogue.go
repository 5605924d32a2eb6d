package config

import "slices"

// EndpointName is the logical name of a backend REST operation
type EndpointName string

const (
	EndpointRunYolo     EndpointName = "RUN_YOLO"
	EndpointStopYolo    EndpointName = "STOP_YOLO"
	EndpointDetectFrame EndpointName = "DETECT_FRAME"
	EndpointModelInfo   EndpointName = "MODEL_INFO"
	EndpointHealth      EndpointName = "HEALTH"
	EndpointDetections  EndpointName = "DETECTIONS"
)

// Paths are host-relative and identical in every environment.
var endpoints = map[EndpointName]string{
	EndpointRunYolo:     "/run-yolo",
	EndpointStopYolo:    "/stop-yolo",
	EndpointDetectFrame: "/detect-frame",
	EndpointModelInfo:   "/model-info",
	EndpointHealth:      "/health",
	EndpointDetections:  "/detections",
}

var endpointOrder = []EndpointName{
	EndpointRunYolo,
	EndpointStopYolo,
	EndpointDetectFrame,
	EndpointModelInfo,
	EndpointHealth,
	EndpointDetections,
}

// EndpointPath returns the path registered for name.
func EndpointPath(name EndpointName) (string, bool) {
	path, ok := endpoints[name]
	return path, ok
}

// Endpoints returns a copy of the endpoint catalogue.
func Endpoints() map[EndpointName]string {
	out := make(map[EndpointName]string, len(endpoints))
	for name, path := range endpoints {
		out[name] = path
	}
	return out
}

// EndpointNames lists the catalogue in declaration order.
func EndpointNames() []EndpointName {
	return slices.Clone(endpointOrder)
}
