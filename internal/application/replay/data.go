package replay

import "time"

// Version is the replay file format version.
const Version = "2.0"

// FrameInput records the controls of one simulated tick
type FrameInput struct {
	F int           `json:"f"`           // Frame number
	T time.Duration `json:"t"`           // Round time of the tick
	U bool          `json:"u,omitempty"` // Up
	L bool          `json:"l,omitempty"` // Left
	D bool          `json:"d,omitempty"` // Down
	R bool          `json:"r,omitempty"` // Right
	S bool          `json:"s,omitempty"` // Shoot
}

// ReplayData contains all data needed to replay a round
type ReplayData struct {
	Version   string       `json:"version"`
	RunID     string       `json:"runId"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Score     int          `json:"score"`
	Level     int          `json:"level"`
	Frames    []FrameInput `json:"frames"`
}
