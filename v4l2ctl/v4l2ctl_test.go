package v4l2ctl

import (
	"reflect"
	"testing"
)

func TestFormatArgs(t *testing.T) {
	f := Format{Device: "/dev/video2", Width: 1640, Height: 1232, PixelFormat: "RGGB"}
	exp := []string{
		"--device", "/dev/video2",
		"--set-fmt-video=width=1640,height=1232,pixelformat=RGGB",
	}
	if got := f.Args(); !reflect.DeepEqual(got, exp) {
		t.Fatalf("format args, got %v, expected %v", got, exp)
	}
}

func TestStreamArgs(t *testing.T) {
	s := Stream{Device: "/dev/video2", To: "/dev/shm/imgcap-1.raw", Count: 1}
	exp := []string{
		"--device", "/dev/video2",
		"--stream-mmap",
		"--stream-to=/dev/shm/imgcap-1.raw",
		"--stream-count=1",
	}
	if got := s.Args(); !reflect.DeepEqual(got, exp) {
		t.Fatalf("stream args, got %v, expected %v", got, exp)
	}
}

func TestParseDevices(t *testing.T) {
	const listing = `bcm2835-codec-decode (platform:bcm2835-codec):
	/dev/video10
	/dev/video11
	/dev/media2

FHD Camera: FHD Camera (usb-xhci-hcd.1.auto-1.4):
	/dev/video2
	/dev/video3
	/dev/media1
`

	devs, err := parseDevices(listing)
	if err != nil {
		t.Fatalf("parsing device listing: %v", err)
	}
	exp := []Device{
		{Path: "/dev/video2", Name: "FHD Camera: FHD Camera (usb-xhci-hcd.1.auto-1.4)"},
		{Path: "/dev/video3", Name: "FHD Camera: FHD Camera (usb-xhci-hcd.1.auto-1.4)"},
	}
	if !reflect.DeepEqual(devs, exp) {
		t.Fatalf("devices, got %v, expected %v", devs, exp)
	}

	if _, err := parseDevices("bcm2835-isp (platform:bcm2835-isp):\n\t/dev/video13\n"); err == nil {
		t.Fatalf("missing error for listing without usable devices")
	}
}
