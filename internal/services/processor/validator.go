package processor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	ErrNotANumber = errors.New("not a number")
	ErrOutOfRange = errors.New("value must be between -1 and 1")
)

// ParseAdjustment parses a brightness or contrast answer. Range is not checked here.
func ParseAdjustment(value string) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(parsed) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, value)
	}
	return parsed, nil
}

// ValidateAdjustment checks a brightness or contrast value is finite and within [-1, 1]
func ValidateAdjustment(value float64) error {
	if math.IsNaN(value) {
		return fmt.Errorf("%w: %v", ErrNotANumber, value)
	}
	if value < -1 || value > 1 {
		return fmt.Errorf("%w: got %v", ErrOutOfRange, value)
	}
	return nil
}
