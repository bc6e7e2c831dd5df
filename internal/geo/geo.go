package geo

import (
	"context"
	"fmt"
)

// Sentinel coordinate texts captured when detection is unavailable or fails.
// They are stored verbatim in place of real coordinates.
const (
	SentinelDetecting    = "Detecting…"
	SentinelNotSupported = "Not supported"
	SentinelRetryFailed  = "Retry failed"
)

type Coords struct {
	Lat float64
	Lng float64
}

// String formats coordinates the way they are persisted and displayed.
func (c Coords) String() string {
	return FormatCoords(c.Lat, c.Lng)
}

// FormatCoords renders "lat, lng" to five decimal places.
func FormatCoords(lat, lng float64) string {
	return fmt.Sprintf("%.5f, %.5f", lat, lng)
}

// Detector resolves the current position. Implementations may be slow or
// failing; callers degrade to sentinel text instead of aborting a save.
type Detector interface {
	Detect(ctx context.Context) (Coords, error)
}

// StaticDetector returns fixed coordinates, e.g. supplied on the command
// line.
type StaticDetector struct {
	Coords Coords
}

func (d StaticDetector) Detect(context.Context) (Coords, error) {
	return d.Coords, nil
}
