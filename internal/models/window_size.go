package models

import (
	"fmt"
	"time"
)

type WindowSize string

const (
	WindowMinute        WindowSize = "minute"
	WindowFiveMinute    WindowSize = "five_minute"
	WindowFifteenMinute WindowSize = "fifteen_minute"
	WindowHour          WindowSize = "hour"
	WindowSixHour       WindowSize = "six_hour"
)

// WindowCatalog lists every tracked window size, smallest first.
var WindowCatalog = []WindowSize{
	WindowMinute,
	WindowFiveMinute,
	WindowFifteenMinute,
	WindowHour,
	WindowSixHour,
}

// MaxWindow returns the largest window size in the catalog.
func MaxWindow() WindowSize {
	return WindowCatalog[len(WindowCatalog)-1]
}

// NewWindowSizeFromString parses a window size name.
func NewWindowSizeFromString(s string) (WindowSize, error) {
	for _, w := range WindowCatalog {
		if string(w) == s {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown window size: %q", s)
}

func (w WindowSize) Duration() time.Duration {
	switch w {
	case WindowMinute:
		return time.Minute
	case WindowFiveMinute:
		return 5 * time.Minute
	case WindowFifteenMinute:
		return 15 * time.Minute
	case WindowHour:
		return time.Hour
	case WindowSixHour:
		return 6 * time.Hour
	default:
		panic(fmt.Sprintf("invalid WindowSize: %q", w))
	}
}
