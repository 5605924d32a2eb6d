package history

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"firewatch/internal/core"

	"github.com/google/uuid"
)

// Record queues a frame and its detections. It never blocks: when the store
// is degraded or the queue is full the record is dropped.
func (s *Store) Record(frame FrameRecord, detections []core.Detection) (string, error) {
	if !s.healthStatus.Load() {
		return "", nil
	}
	if s.ctx.Err() != nil {
		return "", fmt.Errorf("history store closed")
	}

	if frame.FrameID == "" {
		frame.FrameID = uuid.NewString()
	}
	if frame.ProcessedAtUTC.IsZero() {
		frame.ProcessedAtUTC = time.Now().UTC()
	}

	select {
	case s.writeChan <- func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO frames (
			frame_id, source, environment, api_url, processed_at_utc
		) VALUES (?, ?, ?, ?, ?)`,
			frame.FrameID, frame.Source, frame.Environment, frame.APIURL, frame.ProcessedAtUTC.UTC(),
		)
		if err != nil {
			return err
		}

		for _, d := range detections {
			_, err := tx.Exec(`INSERT INTO detections (
				frame_id, class, confidence, x1, y1, x2, y2
			) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				frame.FrameID, d.Class, d.Confidence, d.BBox.X1, d.BBox.Y1, d.BBox.X2, d.BBox.Y2,
			)
			if err != nil {
				return err
			}
		}
		return nil
	}:
		return frame.FrameID, nil
	default:
		log.Printf("History write queue full, dropping frame %s", frame.FrameID)
		return "", nil
	}
}

// Recent returns up to limit detections, newest frame first
func (s *Store) Recent(limit int) ([]DetectionRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(`
		SELECT d.detection_id, d.frame_id, f.source, f.environment,
			d.class, d.confidence, d.x1, d.y1, d.x2, d.y2, f.processed_at_utc
		FROM detections d
		JOIN frames f ON f.frame_id = d.frame_id
		ORDER BY f.processed_at_utc DESC, d.detection_id ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent detections: %w", err)
	}
	defer rows.Close()

	var records []DetectionRecord
	for rows.Next() {
		var r DetectionRecord
		if err := rows.Scan(
			&r.DetectionID, &r.FrameID, &r.Source, &r.Environment,
			&r.Class, &r.Confidence, &r.X1, &r.Y1, &r.X2, &r.Y2, &r.ProcessedAtUTC,
		); err != nil {
			return nil, fmt.Errorf("scan detection: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountByClass returns how many detections of each class were recorded
func (s *Store) CountByClass() (map[string]int, error) {
	rows, err := s.db.Query(`SELECT class, COUNT(*) FROM detections GROUP BY class`)
	if err != nil {
		return nil, fmt.Errorf("count detections: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var class string
		var n int
		if err := rows.Scan(&class, &n); err != nil {
			return nil, err
		}
		counts[class] = n
	}
	return counts, rows.Err()
}
