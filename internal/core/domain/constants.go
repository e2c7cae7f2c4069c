package domain

import "errors"

// MinIconSize is the smallest side length the motif survives; below this
// the integer proportions collapse into each other.
const MinIconSize = 8

var (
	ErrSizeTooSmall    = errors.New("icon size below minimum")
	ErrNoSizes         = errors.New("icon set has no sizes")
	ErrNoFrames        = errors.New("no frames to bundle")
	ErrInvalidHexColor = errors.New("invalid hex color")
)
