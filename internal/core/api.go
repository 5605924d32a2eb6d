package core

// Request types

type DetectFrameRequest struct {
	Image string `json:"image" validate:"required"` // base64 image, data-URL prefix allowed
}

// Response types

type HealthResponse struct {
	Status           string `json:"status"` // "healthy" or "error"
	Timestamp        string `json:"timestamp"`
	ModelAvailable   bool   `json:"model_available"`
	ModelLoaded      bool   `json:"model_loaded"`
	CameraAccessible bool   `json:"camera_accessible"`
	Version          string `json:"version,omitempty"`
	Error            string `json:"error,omitempty"`
}

// ControlResponse answers run-yolo and stop-yolo
type ControlResponse struct {
	Status  string `json:"status"` // "success" or "error"
	Message string `json:"message"`
}

type BBox struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

type Detection struct {
	Class      string  `json:"class"` // "Fire" or "Smoke"
	Confidence float64 `json:"confidence"`
	BBox       BBox    `json:"bbox"`
}

type DetectFrameResponse struct {
	Detections     []Detection `json:"detections"`
	Timestamp      string      `json:"timestamp,omitempty"`
	FrameProcessed bool        `json:"frame_processed,omitempty"`
	Error          string      `json:"error,omitempty"`
}

type DetectionsResponse struct {
	Detections []Detection `json:"detections"`
	Timestamp  string      `json:"timestamp,omitempty"`
}

// EndpointURLResponse is served by the client shell for a single catalogue entry
type EndpointURLResponse struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}
