//go:build darwin
// +build darwin

package platform

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// Local retrieves the local platform details, including the macOS product version
func Local() Platform {
	plat := Platform{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
	}
	// kern.osproductversion is missing before 10.13.4
	if ver, err := unix.Sysctl("kern.osproductversion"); err == nil {
		plat.OSVersion = ver
	}
	return Normalize(plat)
}
