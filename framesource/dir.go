package framesource

import (
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"

	// Decoders for image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var supportedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".bmp":  {},
	".tif":  {},
	".tiff": {},
}

// DirSource reads still images of a directory in lexical file name order
type DirSource struct {
	files []string
	next  int
}

// NewDirSource lists the images of dir. Files with other extensions are ignored.
func NewDirSource(dir string) (*DirSource, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't list frames directory '%s'", dir)
	}
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if _, ok := supportedExtensions[ext]; !ok {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	if len(files) == 0 {
		return nil, errors.Errorf("no image in directory '%s'", dir)
	}
	sort.Strings(files)
	return &DirSource{
		files: files,
	}, nil
}

// Len returns the number of frames of the directory
func (s *DirSource) Len() int {
	return len(s.files)
}

// Acquire decodes the next image or returns io.EOF
func (s *DirSource) Acquire() (Frame, error) {
	if s.next >= len(s.files) {
		return Frame{}, io.EOF
	}
	path := s.files[s.next]
	img, err := decodeFile(path)
	if err != nil {
		return Frame{}, err
	}
	frame := Frame{
		Image:     ToGray(img),
		Timestamp: time.Now(),
		Sequence:  uint64(s.next),
	}
	s.next++
	return frame, nil
}

// Close does nothing: files are opened one frame at a time
func (s *DirSource) Close() error {
	return nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't open frame '%s'", path)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't decode frame '%s'", path)
	}
	return img, nil
}
