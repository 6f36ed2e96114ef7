package replay

import "github.com/younwookim/monosamples/internal/application/system"

// RecordingSource records every state read from an underlying source
type RecordingSource struct {
	src system.InputSource
	rec *Recorder
}

// NewRecordingSource tees src into rec
func NewRecordingSource(src system.InputSource, rec *Recorder) *RecordingSource {
	return &RecordingSource{src: src, rec: rec}
}

// GetInput implements system.InputSource
func (s *RecordingSource) GetInput() system.InputState {
	in := s.src.GetInput()
	s.rec.RecordFrame(in)
	return in
}

// Recorder returns the recorder being written to
func (s *RecordingSource) Recorder() *Recorder {
	return s.rec
}
