// Package gocvsource acquires frames from a camera or a video file with OpenCV.
package gocvsource

import (
	"image"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/LdDl/dot-go/framesource"
)

// Capture is a framesource.Source reading a gocv.VideoCapture
type Capture struct {
	capture  *gocv.VideoCapture
	frame    gocv.Mat
	gray     gocv.Mat
	sequence uint64
}

// Open opens device, a video file path or a camera index
func Open(device string) (*Capture, error) {
	var capture *gocv.VideoCapture
	var err error
	if _, err = os.Stat(device); err == nil {
		capture, err = gocv.VideoCaptureFile(device)
	} else {
		id, idErr := framesource.ParseCameraID(device)
		if idErr != nil {
			return nil, errors.Wrapf(idErr, "'%s' is neither a file nor a camera index", device)
		}
		capture, err = gocv.VideoCaptureDevice(id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "Can't open capture device '%s'", device)
	}
	return &Capture{
		capture: capture,
		frame:   gocv.NewMat(),
		gray:    gocv.NewMat(),
	}, nil
}

// Acquire reads the next frame and converts it to gray levels. io.EOF is returned
// once the capture has no more frames.
func (c *Capture) Acquire() (framesource.Frame, error) {
	if ok := c.capture.Read(&c.frame); !ok || c.frame.Empty() {
		return framesource.Frame{}, io.EOF
	}
	if c.frame.Channels() == 1 {
		c.frame.CopyTo(&c.gray)
	} else {
		gocv.CvtColor(c.frame, &c.gray, gocv.ColorBGRToGray)
	}
	img, err := c.gray.ToImage()
	if err != nil {
		return framesource.Frame{}, errors.Wrap(err, "Can't convert frame")
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		gray = framesource.ToGray(img)
	}
	frame := framesource.Frame{
		Image:     gray,
		Timestamp: time.Now(),
		Sequence:  c.sequence,
	}
	c.sequence++
	return frame, nil
}

// Close releases the capture and its buffers
func (c *Capture) Close() error {
	c.frame.Close()
	c.gray.Close()
	return c.capture.Close()
}
