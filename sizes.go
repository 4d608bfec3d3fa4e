// Package imgcap provides the shared plumbing for capturing still frames
// from Video4Linux2 devices with external utilities.
package imgcap

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is a capture resolution in pixels.
type Size struct {
	Width  int
	Height int
}

// String returns the size in the "<width>x<height>" form the external
// utilities expect.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Sizes maps preset names to fixed capture resolutions.
var Sizes = map[string]Size{
	"small":  {640, 480},
	"medium": {1640, 1232},
	"large":  {1920, 1080},
}

// ParseSize resolves a size argument: either a preset name (small, medium,
// large, case-insensitive) or an explicit "<width>x<height>" pair.
func ParseSize(s string) (Size, error) {
	if size, ok := Sizes[strings.ToLower(s)]; ok {
		return size, nil
	}
	if w, h, ok := strings.Cut(s, "x"); ok {
		width, werr := strconv.Atoi(w)
		height, herr := strconv.Atoi(h)
		if werr == nil && herr == nil && width > 0 && height > 0 {
			return Size{width, height}, nil
		}
	}
	return Size{}, fmt.Errorf("invalid size %q, use one of small, medium, large, or an explicit <width>x<height> (e.g. 640x480)", s)
}
