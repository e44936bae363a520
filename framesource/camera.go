package framesource

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseCameraID parses a non-negative camera index
func ParseCameraID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, errors.Wrapf(err, "Can't parse camera index '%s'", arg)
	}
	if id < 0 {
		return 0, errors.Errorf("negative camera index %d", id)
	}
	return id, nil
}
