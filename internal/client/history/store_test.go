package history_test

import (
	"path/filepath"
	"testing"
	"time"

	"firewatch/internal/client/history"
	"firewatch/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, path string) *history.Store {
	t.Helper()
	s, err := history.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.InitDB())
	return s
}

func TestStore_RecordAndRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s := openStore(t, path)

	older := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Minute)

	_, err := s.Record(history.FrameRecord{
		Source:         "frame-1.jpg",
		Environment:    "development",
		APIURL:         "http://localhost:5000/detect-frame",
		ProcessedAtUTC: older,
	}, []core.Detection{{Class: "Smoke", Confidence: 0.41}})
	require.NoError(t, err)

	id, err := s.Record(history.FrameRecord{
		Source:         "frame-2.jpg",
		Environment:    "development",
		APIURL:         "http://localhost:5000/detect-frame",
		ProcessedAtUTC: newer,
	}, []core.Detection{
		{Class: "Fire", Confidence: 0.92, BBox: core.BBox{X1: 1, Y1: 2, X2: 3, Y2: 4}},
		{Class: "Smoke", Confidence: 0.55},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// Close drains the write queue
	require.NoError(t, s.Close())
	assert.NoError(t, s.Close())

	s = openStore(t, path)
	defer s.Close()
	assert.True(t, s.IsHealthy())

	recs, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, id, recs[0].FrameID)
	assert.Equal(t, "Fire", recs[0].Class)
	assert.Equal(t, "frame-2.jpg", recs[0].Source)
	assert.InDelta(t, 3.0, recs[0].X2, 1e-9)
	assert.True(t, recs[0].ProcessedAtUTC.Equal(newer))
	assert.Equal(t, "frame-1.jpg", recs[2].Source)

	limited, err := s.Recent(1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	counts, err := s.CountByClass()
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Fire": 1, "Smoke": 2}, counts)
}

func TestStore_FrameWithoutDetections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s := openStore(t, path)

	_, err := s.Record(history.FrameRecord{Source: "empty.jpg", Environment: "production", APIURL: "x"}, nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s = openStore(t, path)
	defer s.Close()

	recs, err := s.Recent(0)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestStore_RecordAfterClose(t *testing.T) {
	s := openStore(t, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, s.Close())

	_, err := s.Record(history.FrameRecord{Source: "late.jpg"}, nil)
	assert.Error(t, err)
}
