package bowling

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName     = errors.New("bowling: invalid competitor name")
	ErrInvalidFrame    = errors.New("bowling: invalid frame")
	ErrInvalidBall     = errors.New("bowling: invalid ball")
	ErrInvalidPins     = errors.New("bowling: invalid number of pins")
	ErrIllegalSequence = errors.New("bowling: illegal ball sequence")
	ErrNotEnoughPins   = errors.New("bowling: not enough pins left")
)

// Recoverable reports whether err is an input error the caller can fix by
// asking again. Sequence and index errors mean the driver is broken.
func Recoverable(err error) bool {
	return errors.Is(err, ErrInvalidPins) ||
		errors.Is(err, ErrNotEnoughPins) ||
		errors.Is(err, ErrInvalidName)
}

// Kind returns a short stable label for a bowling error, or "unknown".
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidName):
		return "invalid_name"
	case errors.Is(err, ErrInvalidFrame):
		return "invalid_frame"
	case errors.Is(err, ErrInvalidBall):
		return "invalid_ball"
	case errors.Is(err, ErrInvalidPins):
		return "invalid_pins"
	case errors.Is(err, ErrIllegalSequence):
		return "illegal_sequence"
	case errors.Is(err, ErrNotEnoughPins):
		return "not_enough_pins"
	default:
		return "unknown"
	}
}

func wrap(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
