// Package magick builds and runs the ImageMagick convert invocation that
// turns a raw frame dump into an image file.
package magick

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	imgcap "github.com/pleiades-br/canopus-imgcap"
)

var errInstallHint = errors.New("convert executable not found, install with: sudo apt install -y imagemagick")

// Convert describes a raw grayscale frame to be converted. The output image
// format is chosen by the Output extension.
type Convert struct {
	Width  int
	Height int
	Depth  int    // bits per sample
	Input  string // raw frame file
	Output string // destination image file
}

// Args returns the convert argument list.
func (c Convert) Args() []string {
	return []string{
		"-size", fmt.Sprintf("%dx%d", c.Width, c.Height),
		"-depth", strconv.Itoa(c.Depth),
		"gray:" + c.Input,
		c.Output,
	}
}

// Run converts the raw frame, writing the output image.
func Run(ctx context.Context, verbose bool, c Convert) error {
	if err := imgcap.Run(ctx, verbose, "convert", c.Args()...); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return errInstallHint
		}
		return fmt.Errorf("converting frame: %w", err)
	}
	return nil
}
