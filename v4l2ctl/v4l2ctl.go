// Package v4l2ctl builds and runs invocations of the v4l2-ctl utility from
// v4l-utils, which does the actual Video4Linux2 device interaction.
package v4l2ctl

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	imgcap "github.com/pleiades-br/canopus-imgcap"
)

var errInstallHint = errors.New("v4l2-ctl executable not found, install with: sudo apt install -y v4l-utils")

// Format selects the video format on a device before streaming.
type Format struct {
	Device      string
	Width       int
	Height      int
	PixelFormat string // fourcc, eg "RGGB"
}

// Args returns the v4l2-ctl argument list for setting this format.
func (f Format) Args() []string {
	return []string{
		"--device", f.Device,
		fmt.Sprintf("--set-fmt-video=width=%d,height=%d,pixelformat=%s", f.Width, f.Height, f.PixelFormat),
	}
}

// SetFormat applies the format to the device.
func SetFormat(ctx context.Context, verbose bool, f Format) error {
	if err := imgcap.Run(ctx, verbose, "v4l2-ctl", f.Args()...); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return errInstallHint
		}
		return fmt.Errorf("setting video format: %w", err)
	}
	return nil
}

// Stream captures frames from a device into a file using mmap streaming.
type Stream struct {
	Device string
	To     string // destination file for the raw frame data
	Count  int    // number of frames to capture
}

// Args returns the v4l2-ctl argument list for this capture.
func (s Stream) Args() []string {
	return []string{
		"--device", s.Device,
		"--stream-mmap",
		"--stream-to=" + s.To,
		fmt.Sprintf("--stream-count=%d", s.Count),
	}
}

// Capture streams the requested frames from the device.
func Capture(ctx context.Context, verbose bool, s Stream) error {
	if err := imgcap.Run(ctx, verbose, "v4l2-ctl", s.Args()...); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return errInstallHint
		}
		return fmt.Errorf("capturing frame: %w", err)
	}
	return nil
}

// Device is a video device node with the name of the card it belongs to.
type Device struct {
	Path string
	Name string
}

// ListDevices returns the video devices known to v4l2-ctl.
// ListDevices returns an error if no devices are available.
func ListDevices() ([]Device, error) {
	cmd := exec.Command("v4l2-ctl", "--list-devices")
	buf, err := cmd.Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			err = errInstallHint
		}
		return nil, fmt.Errorf("listing devices using v4l2-ctl: %v", err)
	}
	return parseDevices(string(buf))
}

func parseDevices(s string) ([]Device, error) {
	var curName string
	devices := []Device{}
	for _, line := range strings.Split(s, "\n") {
		if !strings.HasPrefix(line, "\t") {
			curName = strings.TrimSuffix(strings.TrimSpace(line), ":")
			continue
		}
		if curName == "" || strings.HasPrefix(curName, "bcm2835-") {
			continue
		}

		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "/dev/video") {
			continue
		}
		devices = append(devices, Device{Path: line, Name: curName})
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("no devices available")
	}
	return devices, nil
}
