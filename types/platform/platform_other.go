//go:build !windows && !darwin
// +build !windows,!darwin

package platform

import "runtime"

// Local retrieves the local platform details
func Local() Platform {
	return Normalize(Platform{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,
	})
}
