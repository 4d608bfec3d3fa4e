package imgcap

import (
	"os"
)

// TempFile creates a temporary file for raw frame data, either in /dev/shm
// (if it exists), or otherwise in the OS default temporary directory. It
// returns the file path; the caller is responsible for removing it.
func TempFile(pattern string) (string, error) {
	// Attempt to place the raw frame in /dev/shm so a capture never hits
	// slow storage. If that fails (eg no permission), then attempt at OS
	// default temp dir.
	// Check if /dev/shm exists first. Don't want to accidentially create a
	// file in /dev (if someone runs this as root).
	if fi, err := os.Stat("/dev/shm"); err == nil && fi.IsDir() {
		f, err := os.CreateTemp("/dev/shm", pattern)
		if err == nil {
			f.Close()
			return f.Name(), nil
		}
	}
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	f.Close()
	return f.Name(), nil
}
