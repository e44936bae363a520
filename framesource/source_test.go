package framesource

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func grayWithDot(w, h, u, v int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	img.SetGray(u, v, color.Gray{Y: 255})
	return img
}

func TestToGrayKeepsZeroOriginGray(t *testing.T) {
	img := grayWithDot(4, 3, 1, 1)
	assert.Same(t, img, ToGray(img))
}

func TestToGrayMovesOrigin(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(10, 20, 14, 23))
	rgba.Set(11, 21, color.White)
	gray := ToGray(rgba)
	require.Equal(t, image.Rect(0, 0, 4, 3), gray.Bounds())
	assert.Equal(t, uint8(255), gray.GrayAt(1, 1).Y)
	assert.Equal(t, uint8(0), gray.GrayAt(0, 0).Y)

	sub := grayWithDot(10, 10, 5, 5).SubImage(image.Rect(4, 4, 8, 8))
	gray = ToGray(sub)
	require.Equal(t, image.Rect(0, 0, 4, 4), gray.Bounds())
	assert.Equal(t, uint8(255), gray.GrayAt(1, 1).Y)
}

func TestMemorySource(t *testing.T) {
	src := NewMemorySource(grayWithDot(4, 4, 0, 0), grayWithDot(4, 4, 1, 1))
	for i := 0; i < 2; i++ {
		frame, err := src.Acquire()
		require.NoError(t, err)
		assert.Equal(t, uint64(i), frame.Sequence)
		assert.Equal(t, uint8(255), frame.Image.GrayAt(i, i).Y)
		assert.False(t, frame.Timestamp.IsZero())
	}
	_, err := src.Acquire()
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, src.Close())
	_, err = src.Acquire()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}

func writeImage(t *testing.T, path string, encode func(io.Writer) error) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, encode(f))
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, filepath.Join(dir, "frame_000.png"), func(w io.Writer) error {
		return png.Encode(w, grayWithDot(8, 6, 0, 0))
	})
	writeImage(t, filepath.Join(dir, "frame_001.bmp"), func(w io.Writer) error {
		return bmp.Encode(w, grayWithDot(8, 6, 1, 1))
	})
	writeImage(t, filepath.Join(dir, "frame_002.tiff"), func(w io.Writer) error {
		return tiff.Encode(w, grayWithDot(8, 6, 2, 2), nil)
	})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a frame"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	src, err := NewDirSource(dir)
	require.NoError(t, err)
	defer src.Close()
	require.Equal(t, 3, src.Len())

	for i := 0; i < 3; i++ {
		frame, err := src.Acquire()
		require.NoError(t, err)
		assert.Equal(t, uint64(i), frame.Sequence)
		assert.Equal(t, image.Rect(0, 0, 8, 6), frame.Image.Bounds())
		assert.Equal(t, uint8(255), frame.Image.GrayAt(i, i).Y, "frame %d", i)
	}
	_, err = src.Acquire()
	assert.ErrorIs(t, err, io.EOF)
}

func TestDirSourceErrors(t *testing.T) {
	_, err := NewDirSource(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	_, err = NewDirSource(t.TempDir())
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("garbage"), 0o644))
	src, err := NewDirSource(dir)
	require.NoError(t, err)
	_, err = src.Acquire()
	assert.Error(t, err)
}

func TestParseCameraID(t *testing.T) {
	tests := []struct {
		arg      string
		expected int
		valid    bool
	}{
		{"0", 0, true},
		{" 2 ", 2, true},
		{"missing.mp4", 0, false},
		{"1abc", 0, false},
		{"", 0, false},
		{"-1", 0, false},
	}
	for _, tt := range tests {
		id, err := ParseCameraID(tt.arg)
		if !tt.valid {
			assert.Error(t, err, "argument '%s'", tt.arg)
			continue
		}
		require.NoError(t, err, "argument '%s'", tt.arg)
		assert.Equal(t, tt.expected, id)
	}
}
