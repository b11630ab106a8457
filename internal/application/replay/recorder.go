package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/evince05/EternalCombat/internal/domain/entity"
)

// ErrNoFrames is returned when saving an empty recording.
var ErrNoFrames = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder creates a new recorder with seed for deterministic replay.
// Each recorder gets a fresh run id.
func NewRecorder(seed int64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			RunID:     uuid.NewString(),
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600),
		},
		recording: true,
	}
}

// RecordFrame records the controls used for the tick at now
func (r *Recorder) RecordFrame(now time.Duration, c entity.Controls) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F: len(r.data.Frames),
		T: now,
		U: c.Up,
		L: c.Left,
		D: c.Down,
		R: c.Right,
		S: c.Shoot,
	})
}

// Finish stamps the outcome so playback can be checked against it.
func (r *Recorder) Finish(score, level int) {
	r.data.Score = score
	r.data.Level = level
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// RunID returns the id stamped into the recording.
func (r *Recorder) RunID() string {
	return r.data.RunID
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename from the current time and run id
func GenerateFilename(runID string) string {
	if len(runID) > 8 {
		runID = runID[:8]
	}
	return fmt.Sprintf("replay_%s_%s.json", time.Now().Format("20060102_150405"), runID)
}
