package framesource

import (
	"image"
	"io"
	"time"

	"github.com/pkg/errors"
)

// MemorySource replays frames held in memory
type MemorySource struct {
	frames []*image.Gray
	next   int
	closed bool
}

// NewMemorySource creates a source delivering frames in the given order
func NewMemorySource(frames ...*image.Gray) *MemorySource {
	return &MemorySource{
		frames: frames,
	}
}

// Acquire returns the next frame or io.EOF
func (s *MemorySource) Acquire() (Frame, error) {
	if s.closed {
		return Frame{}, errors.New("memory source is closed")
	}
	if s.next >= len(s.frames) {
		return Frame{}, io.EOF
	}
	frame := Frame{
		Image:     ToGray(s.frames[s.next]),
		Timestamp: time.Now(),
		Sequence:  uint64(s.next),
	}
	s.next++
	return frame, nil
}

// Close releases the frames
func (s *MemorySource) Close() error {
	s.frames = nil
	s.closed = true
	return nil
}
