package commands

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"firewatch/internal/client/display"
	"firewatch/internal/client/history"
	"firewatch/internal/config"
)

const defaultHistoryLimit = 20

func (r *Registry) registerDetectionCommands() {
	r.Register(&Command{
		Name:        "health",
		ShortName:   ".",
		Description: "Check backend health",
		Usage:       "health",
		Handler:     healthHandler,
	})

	r.Register(&Command{
		Name:        "model",
		ShortName:   "m",
		Description: "Show model information",
		Usage:       "model",
		Handler:     modelHandler,
	})

	r.Register(&Command{
		Name:        "run",
		ShortName:   "r",
		Description: "Start camera detection on the backend",
		Usage:       "run",
		Handler:     runHandler,
	})

	r.Register(&Command{
		Name:        "stop",
		ShortName:   "s",
		Description: "Stop camera detection on the backend",
		Usage:       "stop",
		Handler:     stopHandler,
	})

	r.Register(&Command{
		Name:        "detect",
		ShortName:   "d",
		Description: "Send an image file for detection",
		Usage:       "detect <image-file>",
		Handler:     detectHandler,
	})

	r.Register(&Command{
		Name:        "detections",
		ShortName:   "l",
		Description: "List detections held by the backend",
		Usage:       "detections",
		Handler:     detectionsHandler,
	})

	r.Register(&Command{
		Name:        "history",
		ShortName:   "h",
		Description: "Show locally recorded detections",
		Usage:       "history [count]",
		Handler:     historyHandler,
	})
}

func healthHandler(s Session, args []string) error {
	resp, err := s.GetClient().Health()
	if err != nil {
		return err
	}

	out := s.GetOut()
	fmt.Fprintf(out, "%sBackend Health:%s\n", display.Cyan, display.Reset)
	fmt.Fprintf(out, "  Status:    %s\n", resp.Status)
	if resp.Timestamp != "" {
		fmt.Fprintf(out, "  Time:      %s\n", resp.Timestamp)
	}
	if resp.Version != "" {
		fmt.Fprintf(out, "  Version:   %s\n", resp.Version)
	}
	fmt.Fprintf(out, "  Model:     available=%t loaded=%t\n", resp.ModelAvailable, resp.ModelLoaded)
	fmt.Fprintf(out, "  Camera:    %t\n", resp.CameraAccessible)
	if resp.Error != "" {
		fmt.Fprintf(out, "  %sError:     %s%s\n", display.Red, resp.Error, display.Reset)
	}
	return nil
}

func modelHandler(s Session, args []string) error {
	info, err := s.GetClient().ModelInfo()
	if err != nil {
		return err
	}

	out := s.GetOut()
	fmt.Fprintf(out, "%sModel:%s\n", display.Cyan, display.Reset)
	keys := make([]string, 0, len(info))
	for k := range info {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %-18s %v\n", k+":", info[k])
	}
	return nil
}

func runHandler(s Session, args []string) error {
	resp, err := s.GetClient().RunYolo()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.GetOut(), "%s%s%s\n", display.Green, resp.Message, display.Reset)
	return nil
}

func stopHandler(s Session, args []string) error {
	resp, err := s.GetClient().StopYolo()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.GetOut(), "%s%s%s\n", display.Green, resp.Message, display.Reset)
	return nil
}

func detectHandler(s Session, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: detect <image-file>")
	}

	path := args[0]
	image, err := encodeImageFile(path)
	if err != nil {
		return err
	}

	resp, err := s.GetClient().DetectFrame(image)
	if err != nil {
		return err
	}

	out := s.GetOut()
	fmt.Fprintf(out, "%sDetections for %s:%s\n", display.Cyan, filepath.Base(path), display.Reset)
	display.RenderDetections(out, resp.Detections)

	if store := s.GetHistory(); store != nil {
		res := s.GetResolver()
		frame := history.FrameRecord{
			Source:      path,
			Environment: res.Environment().String(),
			APIURL:      res.MustAPIURL(config.EndpointDetectFrame),
		}
		if _, err := store.Record(frame, resp.Detections); err != nil {
			fmt.Fprintf(out, "%sHistory: %s%s\n", display.Yellow, err.Error(), display.Reset)
		}
	}
	return nil
}

// encodeImageFile reads an image and returns it as a data URL, the form the
// browser client sends frames in.
func encodeImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("image file is empty: %s", path)
	}

	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func detectionsHandler(s Session, args []string) error {
	resp, err := s.GetClient().Detections()
	if err != nil {
		return err
	}

	out := s.GetOut()
	fmt.Fprintf(out, "%sBackend detections:%s\n", display.Cyan, display.Reset)
	display.RenderDetections(out, resp.Detections)
	return nil
}

func historyHandler(s Session, args []string) error {
	store := s.GetHistory()
	if store == nil {
		return fmt.Errorf("history disabled (start the client with -history <path>)")
	}

	limit := defaultHistoryLimit
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid count: %s", args[0])
		}
		limit = n
	}

	records, err := store.Recent(limit)
	if err != nil {
		return err
	}

	out := s.GetOut()
	if len(records) == 0 {
		fmt.Fprintln(out, "No detections recorded")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(out, "  %s  %-11s %-6s %5.1f%%  %s\n",
			rec.ProcessedAtUTC.Local().Format("2006-01-02 15:04:05"),
			rec.Environment,
			display.ColorForClass(rec.Class),
			rec.Confidence*100,
			filepath.Base(rec.Source))
	}

	counts, err := store.CountByClass()
	if err == nil && len(counts) > 0 {
		fmt.Fprintf(out, "\nTotals:")
		classes := make([]string, 0, len(counts))
		for class := range counts {
			classes = append(classes, class)
		}
		sort.Strings(classes)
		for _, class := range classes {
			fmt.Fprintf(out, " %s=%d", class, counts[class])
		}
		fmt.Fprintln(out)
	}
	return nil
}
