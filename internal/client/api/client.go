package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"firewatch/internal/client/display"
	"firewatch/internal/config"
	"firewatch/internal/core"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// StatusError is returned for any non-2xx backend response
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// Client talks to the detection backend. Every URL comes from the resolver,
// so the client never builds a host itself.
type Client struct {
	Resolver   *config.Resolver
	HTTPClient *http.Client
	Out        io.Writer
	Verbose    bool
}

func New(resolver *config.Resolver) *Client {
	return &Client{
		Resolver: resolver,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Out: os.Stdout,
	}
}

func (c *Client) SetVerbose(v bool) {
	c.Verbose = v
}

func (c *Client) do(method string, name config.EndpointName, body interface{}, result interface{}) error {
	url, err := c.Resolver.APIURL(name)
	if err != nil {
		return err
	}
	return c.doRequest(method, url, body, result)
}

func (c *Client) doRequest(method, url string, body interface{}, result interface{}) error {
	// Prepare body
	var bodyReader io.Reader
	var bodyStr string
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(jsonData)
		bodyStr = string(jsonData)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	fmt.Fprintf(c.Out, "\n%s[API] %s %s%s\n", display.Blue, method, url, display.Reset)
	if bodyStr != "" && c.Verbose {
		fmt.Fprintf(c.Out, "%sRequest Body:%s\n%s\n", display.Cyan, display.Reset, abbreviate(bodyStr, 512))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		fmt.Fprintf(c.Out, "%s[ERROR] %s%s\n", display.Red, err.Error(), display.Reset)
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	statusColor := display.Green
	if resp.StatusCode >= 400 {
		statusColor = display.Red
	}
	fmt.Fprintf(c.Out, "%s[%d %s]%s\n", statusColor, resp.StatusCode, http.StatusText(resp.StatusCode), display.Reset)

	if c.Verbose && len(respBody) > 0 {
		var prettyResp interface{}
		if err := json.Unmarshal(respBody, &prettyResp); err == nil {
			prettyJSON, _ := json.MarshalIndent(prettyResp, "", "  ")
			fmt.Fprintf(c.Out, "%sResponse Body:%s\n%s\n", display.Cyan, display.Reset, string(prettyJSON))
		} else {
			fmt.Fprintf(c.Out, "%sResponse:%s\n%s\n", display.Cyan, display.Reset, string(respBody))
		}
	}

	if resp.StatusCode >= 400 {
		return &StatusError{StatusCode: resp.StatusCode, Message: errorMessage(respBody)}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			fmt.Fprintf(c.Out, "%sResponse parse error: %s%s\n", display.Red, err.Error(), display.Reset)
			return fmt.Errorf("decode %s response: %w", url, err)
		}
	}

	return nil
}

// errorMessage pulls the human-readable text out of a backend error body.
// The backend uses {"error": ...} for detection failures and
// {"status": "error", "message": ...} for run/stop failures.
func errorMessage(body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return strings.TrimSpace(abbreviate(string(body), 200))
	}
	switch {
	case envelope.Error != "" && envelope.Details != "":
		return envelope.Error + ": " + envelope.Details
	case envelope.Error != "":
		return envelope.Error
	default:
		return envelope.Message
	}
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// API Methods

func (c *Client) Health() (*core.HealthResponse, error) {
	var resp core.HealthResponse
	err := c.do(http.MethodGet, config.EndpointHealth, nil, &resp)
	return &resp, err
}

func (c *Client) RunYolo() (*core.ControlResponse, error) {
	var resp core.ControlResponse
	err := c.do(http.MethodPost, config.EndpointRunYolo, nil, &resp)
	return &resp, err
}

func (c *Client) StopYolo() (*core.ControlResponse, error) {
	var resp core.ControlResponse
	err := c.do(http.MethodPost, config.EndpointStopYolo, nil, &resp)
	return &resp, err
}

// DetectFrame submits one base64-encoded frame for detection
func (c *Client) DetectFrame(image string) (*core.DetectFrameResponse, error) {
	req := &core.DetectFrameRequest{Image: image}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return nil, fmt.Errorf("invalid detect-frame request: %s failed %s", verrs[0].Field(), verrs[0].Tag())
		}
		return nil, err
	}

	var resp core.DetectFrameResponse
	err := c.do(http.MethodPost, config.EndpointDetectFrame, req, &resp)
	return &resp, err
}

func (c *Client) ModelInfo() (map[string]any, error) {
	resp := map[string]any{}
	err := c.do(http.MethodGet, config.EndpointModelInfo, nil, &resp)
	return resp, err
}

func (c *Client) Detections() (*core.DetectionsResponse, error) {
	var resp core.DetectionsResponse
	err := c.do(http.MethodGet, config.EndpointDetections, nil, &resp)
	return &resp, err
}

// RawRequest performs a raw request against the active API base URL, for debugging
func (c *Client) RawRequest(method, path string, body string) error {
	var bodyData interface{}
	if body != "" {
		if err := json.Unmarshal([]byte(body), &bodyData); err != nil {
			// Try as raw string
			bodyData = body
		}
	}

	return c.doRequest(method, c.Resolver.Profile().APIBaseURL+path, bodyData, nil)
}
