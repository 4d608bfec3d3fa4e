package magick

import (
	"reflect"
	"testing"
)

func TestConvertArgs(t *testing.T) {
	c := Convert{
		Width:  640,
		Height: 480,
		Depth:  8,
		Input:  "/dev/shm/imgcap-1.raw",
		Output: "/home/user/photos/frame.png",
	}
	exp := []string{
		"-size", "640x480",
		"-depth", "8",
		"gray:/dev/shm/imgcap-1.raw",
		"/home/user/photos/frame.png",
	}
	if got := c.Args(); !reflect.DeepEqual(got, exp) {
		t.Fatalf("convert args, got %v, expected %v", got, exp)
	}
}
