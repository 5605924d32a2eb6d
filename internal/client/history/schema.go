package history

import "time"

// FrameRecord represents one frame submitted for detection
type FrameRecord struct {
	FrameID        string    `db:"frame_id"`
	Source         string    `db:"source"` // file path or "stream"
	Environment    string    `db:"environment"`
	APIURL         string    `db:"api_url"`
	ProcessedAtUTC time.Time `db:"processed_at_utc"`
}

// DetectionRecord represents one box returned for a frame, joined with its frame
type DetectionRecord struct {
	DetectionID    int64     `db:"detection_id"`
	FrameID        string    `db:"frame_id"`
	Source         string    `db:"source"`
	Environment    string    `db:"environment"`
	Class          string    `db:"class"`
	Confidence     float64   `db:"confidence"`
	X1             float64   `db:"x1"`
	Y1             float64   `db:"y1"`
	X2             float64   `db:"x2"`
	Y2             float64   `db:"y2"`
	ProcessedAtUTC time.Time `db:"processed_at_utc"`
}

// Schema defines the SQLite database structure
const Schema = `
CREATE TABLE IF NOT EXISTS frames (
	frame_id TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	environment TEXT NOT NULL,
	api_url TEXT NOT NULL,
	processed_at_utc DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS detections (
	detection_id INTEGER PRIMARY KEY AUTOINCREMENT,
	frame_id TEXT NOT NULL,
	class TEXT NOT NULL,
	confidence REAL NOT NULL,
	x1 REAL NOT NULL DEFAULT 0,
	y1 REAL NOT NULL DEFAULT 0,
	x2 REAL NOT NULL DEFAULT 0,
	y2 REAL NOT NULL DEFAULT 0,
	FOREIGN KEY (frame_id) REFERENCES frames(frame_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_detections_frame_id ON detections(frame_id);
CREATE INDEX IF NOT EXISTS idx_detections_class ON detections(class);
CREATE INDEX IF NOT EXISTS idx_frames_processed_at ON frames(processed_at_utc);
`
