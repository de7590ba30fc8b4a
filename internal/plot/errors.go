package plot

import "errors"

var (
	// ErrInvalidScale indicates a non-positive or non-finite scale or scale floor.
	ErrInvalidScale = errors.New("plot: scale must be finite and above the minimum")

	// ErrInvalidSize indicates a canvas or window with a non-positive dimension.
	ErrInvalidSize = errors.New("plot: size must be positive")
)
