package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"firewatch/internal/core"
)

// PrettyPrintJSON prints formatted JSON
func PrettyPrintJSON(v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%sError formatting JSON: %s%s\n", Red, err.Error(), Reset)
		return
	}
	fmt.Println(string(data))
}

// ColorForClass returns the detection class colored by severity
func ColorForClass(class string) string {
	switch strings.ToLower(class) {
	case "fire":
		return Red + class + Reset
	case "smoke":
		return Yellow + class + Reset
	default:
		return class
	}
}

// RenderDetections writes one line per detection
func RenderDetections(w io.Writer, detections []core.Detection) {
	if len(detections) == 0 {
		fmt.Fprintf(w, "%sNo fire or smoke detected%s\n", Green, Reset)
		return
	}
	for i, d := range detections {
		fmt.Fprintf(w, "  %d. %-6s %5.1f%%  [%.0f,%.0f - %.0f,%.0f]\n",
			i+1, ColorForClass(d.Class), d.Confidence*100,
			d.BBox.X1, d.BBox.Y1, d.BBox.X2, d.BBox.Y2)
	}
}
