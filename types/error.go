package types

import "errors"

var (
	// ErrInvalidVariant returned when a release variant in a catalog is malformed
	ErrInvalidVariant = errors.New("invalid variant")
	// ErrNotFound isn't there, search for your value elsewhere
	ErrNotFound = errors.New("not found")
	// ErrParsingFailed when a string cannot be parsed
	ErrParsingFailed = errors.New("parsing failed")
	// ErrUnsupportedConfigVersion happens when config file version is greater than this command supports
	ErrUnsupportedConfigVersion = errors.New("unsupported config version")
	// ErrUnsupportedOSVersion when a platform matches but no variant supports the OS version
	ErrUnsupportedOSVersion = errors.New("unsupported OS version")
	// ErrUnsupportedPlatform when no variant matches the OS and architecture
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
