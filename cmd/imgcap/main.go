// Command imgcap captures a single still frame from a Video4Linux2 device
// and saves it as a PNG image, using v4l2-ctl for the device interaction and
// ImageMagick for the conversion.
//
// Examples:
//
//	# List available video devices and quit.
//	imgcap -listdevices
//
//	# Capture a frame with default settings.
//	imgcap /dev/video2
//
//	# Capture a medium (1640x1232) frame.
//	imgcap -size medium /dev/video2
//
//	# Capture a large frame to a specific location and show it on the
//	# display output.
//	imgcap -size large -filename my_photo.png -output_dir /home/user/photos -show_results /dev/video2
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/pleiades-br/canopus-imgcap/capture"
	"github.com/pleiades-br/canopus-imgcap/v4l2ctl"
)

var (
	size        = flag.String("size", "small", "image size: small (640x480), medium (1640x1232), large (1920x1080), or <width>x<height>")
	filename    = flag.String("filename", "frame.png", "output filename")
	outputDir   = flag.String("output_dir", ".", "output directory")
	showResults = flag.Bool("show_results", false, "show the captured image on the display output")
	listDevices = flag.Bool("listdevices", false, "if set, lists video devices and exits")
	verbose     = flag.Bool("verbose", false, "print the commands being run")
)

func usage() {
	log.Println("usage: imgcap [flags] device")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	os.Exit(main0(flag.Args()))
}

func main0(args []string) int {
	if *listDevices {
		devs, err := v4l2ctl.ListDevices()
		if err != nil {
			log.Printf("listing devices: %v", err)
			return 1
		}
		for _, dev := range devs {
			fmt.Printf("%s: %s\n", dev.Path, dev.Name)
		}
		return 0
	}

	if len(args) != 1 {
		usage()
	}

	opts := capture.Opts{
		Device:      args[0],
		Size:        *size,
		Filename:    *filename,
		OutputDir:   *outputDir,
		ShowResults: *showResults,
		Verbose:     *verbose,
	}
	path, err := capture.Capture(context.Background(), opts)
	if err != nil {
		log.Printf("capture: %v", err)
		return 1
	}
	fmt.Printf("saved image to %s\n", path)
	return 0
}
