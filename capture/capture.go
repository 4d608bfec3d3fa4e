// Package capture implements single-frame capture from a Video4Linux2
// device by driving v4l2-ctl and ImageMagick as child processes: the video
// format is set on the device, one raw frame is streamed to temporary
// storage, and the frame is converted to the final image file.
package capture

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	imgcap "github.com/pleiades-br/canopus-imgcap"
	"github.com/pleiades-br/canopus-imgcap/magick"
	"github.com/pleiades-br/canopus-imgcap/v4l2ctl"

	"golang.org/x/sys/unix"
)

// Opts holds options for a single capture.
type Opts struct {
	Device      string // video device path, eg /dev/video2. Required.
	Size        string // preset (small, medium, large) or explicit <width>x<height>.
	Filename    string // output filename. A .png extension is appended when missing.
	OutputDir   string // output directory, created when missing.
	ShowResults bool   // also show the captured image on the display output with weston-image.
	PixelFormat string // fourcc passed to v4l2-ctl.
	Verbose     bool   // echo the commands being run.
}

// optsDefault has default option values for a capture.
var optsDefault = Opts{
	Size:        "small",
	Filename:    "frame.png",
	OutputDir:   ".",
	PixelFormat: "RGGB",
}

func withDefaults(opts Opts) Opts {
	if opts.Size == "" {
		opts.Size = optsDefault.Size
	}
	if opts.Filename == "" {
		opts.Filename = optsDefault.Filename
	}
	if opts.OutputDir == "" {
		opts.OutputDir = optsDefault.OutputDir
	}
	if opts.PixelFormat == "" {
		opts.PixelFormat = optsDefault.PixelFormat
	}
	return opts
}

// outputPath composes the destination image path, forcing a .png extension
// on the filename.
func outputPath(dir, filename string) string {
	if !strings.HasSuffix(strings.ToLower(filename), ".png") {
		filename += ".png"
	}
	return filepath.Join(dir, filename)
}

// checkOutputDir creates the output directory when missing and verifies it
// is writable, so a bad destination is reported before touching the device.
func checkOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %v", err)
	}
	if err := unix.Access(dir, unix.W_OK); err != nil {
		return fmt.Errorf("output directory %s not writable: %v", dir, err)
	}
	return nil
}

// Capture grabs a single frame from the device and writes it as an image
// file, returning the path of the written image. All validation happens
// before any child process is spawned; a failed capture is reported as-is,
// with the failing utility's exit code and diagnostic output.
func Capture(ctx context.Context, opts Opts) (string, error) {
	opts = withDefaults(opts)

	if opts.Device == "" {
		return "", fmt.Errorf("no device path given")
	}
	if _, err := os.Stat(opts.Device); err != nil {
		return "", fmt.Errorf("device %s does not exist", opts.Device)
	}
	size, err := imgcap.ParseSize(opts.Size)
	if err != nil {
		return "", err
	}
	if err := checkOutputDir(opts.OutputDir); err != nil {
		return "", err
	}
	out := outputPath(opts.OutputDir, opts.Filename)

	raw, err := imgcap.TempFile("imgcap-*.raw")
	if err != nil {
		return "", fmt.Errorf("making temp file for raw frame: %v", err)
	}
	defer os.Remove(raw)

	format := v4l2ctl.Format{
		Device:      opts.Device,
		Width:       size.Width,
		Height:      size.Height,
		PixelFormat: opts.PixelFormat,
	}
	if err := v4l2ctl.SetFormat(ctx, opts.Verbose, format); err != nil {
		return "", err
	}

	stream := v4l2ctl.Stream{Device: opts.Device, To: raw, Count: 1}
	if err := v4l2ctl.Capture(ctx, opts.Verbose, stream); err != nil {
		return "", err
	}

	conv := magick.Convert{
		Width:  size.Width,
		Height: size.Height,
		Depth:  8,
		Input:  raw,
		Output: out,
	}
	if err := magick.Run(ctx, opts.Verbose, conv); err != nil {
		return "", err
	}

	if opts.ShowResults {
		// The image is already on disk; a display problem is not a
		// capture failure.
		if err := imgcap.Run(ctx, opts.Verbose, "weston-image", out); err != nil {
			log.Printf("showing image on display: %v", err)
		}
	}

	return out, nil
}
