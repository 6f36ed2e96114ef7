package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F int    `json:"f"`           // Frame number
	L bool   `json:"l,omitempty"` // Left
	R bool   `json:"r,omitempty"` // Right
	U bool   `json:"u,omitempty"` // Up
	D bool   `json:"d,omitempty"` // Down
	X bool   `json:"x,omitempty"` // Exit
	S string `json:"s,omitempty"` // Scene requested this frame
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version    string       `json:"version"`
	Scene      string       `json:"scene"` // scene active when recording started
	DT         float64      `json:"dt"`    // fixed tick length, seconds
	Fall       string       `json:"fall,omitempty"`
	Horizontal string       `json:"horizontal,omitempty"`
	StartTime  string       `json:"startTime"`
	Frames     []FrameInput `json:"frames"`
}

// FormatVersion is written into every recording
const FormatVersion = "1.2"
