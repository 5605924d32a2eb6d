package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"firewatch/internal/client/api"
	"firewatch/internal/config"
	"firewatch/internal/core"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient points the development profile at a test backend
func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	profiles := config.DefaultProfiles()
	profiles[config.Development] = config.Profile{APIBaseURL: srv.URL, WebSocketBaseURL: srv.URL}
	r, err := config.NewWithProfiles("", profiles)
	require.NoError(t, err)

	c := api.New(r)
	c.Out = io.Discard
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_Health(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/health", r.URL.Path)
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err)

		writeJSON(w, http.StatusOK, map[string]any{
			"status":            "healthy",
			"timestamp":         "2025-01-01T00:00:00",
			"model_available":   true,
			"model_loaded":      true,
			"camera_accessible": false,
			"version":           "2.0.0",
		})
	}))

	resp, err := c.Health()
	require.NoError(t, err)
	assert.Equal(t, "healthy", resp.Status)
	assert.True(t, resp.ModelLoaded)
	assert.False(t, resp.CameraAccessible)
	assert.Equal(t, "2.0.0", resp.Version)
}

func TestClient_RunAndStop(t *testing.T) {
	var paths []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		paths = append(paths, r.URL.Path)
		writeJSON(w, http.StatusOK, core.ControlResponse{Status: "success", Message: "ok"})
	}))

	run, err := c.RunYolo()
	require.NoError(t, err)
	assert.Equal(t, "success", run.Status)

	_, err = c.StopYolo()
	require.NoError(t, err)
	assert.Equal(t, []string{"/run-yolo", "/stop-yolo"}, paths)
}

func TestClient_RunYoloCameraUnavailable(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, core.ControlResponse{
			Status:  "error",
			Message: "Camera not found or already in use by another application.",
		})
	}))

	_, err := c.RunYolo()
	var se *api.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusServiceUnavailable, se.StatusCode)
	assert.Contains(t, se.Error(), "Camera not found")
}

func TestClient_DetectFrame(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/detect-frame", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req core.DetectFrameRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "data:image/jpeg;base64,AAAA", req.Image)

		writeJSON(w, http.StatusOK, core.DetectFrameResponse{
			Detections: []core.Detection{{
				Class:      "Fire",
				Confidence: 0.87,
				BBox:       core.BBox{X1: 10, Y1: 20, X2: 110, Y2: 220},
			}},
			FrameProcessed: true,
		})
	}))

	resp, err := c.DetectFrame("data:image/jpeg;base64,AAAA")
	require.NoError(t, err)
	require.Len(t, resp.Detections, 1)
	assert.Equal(t, "Fire", resp.Detections[0].Class)
	assert.InDelta(t, 0.87, resp.Detections[0].Confidence, 1e-9)
	assert.True(t, resp.FrameProcessed)
}

func TestClient_DetectFrameRejectsEmptyImage(t *testing.T) {
	called := false
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	_, err := c.DetectFrame("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Image")
	assert.False(t, called, "request must not be sent")
}

func TestClient_DetectFrameBackendError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":      "YOLO model not loaded",
			"detections": []any{},
		})
	}))

	_, err := c.DetectFrame("AAAA")
	var se *api.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "YOLO model not loaded", se.Message)
}

func TestClient_ModelInfoAndDetections(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/model-info":
			writeJSON(w, http.StatusOK, map[string]any{"model": "best_nano_111.pt"})
		case "/detections":
			writeJSON(w, http.StatusOK, core.DetectionsResponse{
				Detections: []core.Detection{{Class: "Smoke", Confidence: 0.4}},
			})
		default:
			http.NotFound(w, r)
		}
	}))

	info, err := c.ModelInfo()
	require.NoError(t, err)
	assert.Equal(t, "best_nano_111.pt", info["model"])

	dets, err := c.Detections()
	require.NoError(t, err)
	require.Len(t, dets.Detections, 1)
	assert.Equal(t, "Smoke", dets.Detections[0].Class)
}

func TestClient_RawRequest(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/custom", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"a":1}`, string(body))
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.RawRequest(http.MethodPost, "/custom", `{"a":1}`))
}

func TestClient_UsesResolvedProductionURL(t *testing.T) {
	c := api.New(config.New("production"))
	assert.Equal(t, "https://fire-smoke-detection-api.onrender.com/health", c.Resolver.MustAPIURL(config.EndpointHealth))
}
