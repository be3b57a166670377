package types

import "errors"

var (
	// ErrInvalidRange is returned when a random draw range or a numeric setting is misconfigured
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidTimestamp is returned when start/end timestamps are unparsable or out of order
	ErrInvalidTimestamp = errors.New("invalid timestamp")

	// ErrUnknownPreset is returned for a preset name that does not exist
	ErrUnknownPreset = errors.New("unknown preset")
)
