package main

import "errors"

var (
	// ErrMissingCatalog is returned when neither a flag or the config file defines a catalog
	ErrMissingCatalog = errors.New("catalog not defined")
	// ErrMissingInput indicates a required field is missing
	ErrMissingInput = errors.New("required input missing")
)
