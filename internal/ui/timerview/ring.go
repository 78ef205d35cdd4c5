package timerview

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Ring geometry on a 256 unit square.
const (
	ringViewBox     = 256.0
	ringRadius      = 120.0
	ringStrokeWidth = 8.0
)

type coverage int

const (
	coverNone coverage = iota
	coverTrack
	coverArc
)

// Ring is a circular progress indicator that fills clockwise from
// 12 o'clock.
type Ring struct {
	widget.BaseWidget

	mu       sync.RWMutex
	progress float64
	arc      color.Color
	track    color.Color
	raster   *canvas.Raster
}

// NewRing creates an empty ring.
func NewRing(arc color.Color) *Ring {
	ring := &Ring{arc: arc, track: trackColor}
	ring.raster = canvas.NewRasterWithPixels(ring.pixel)
	ring.raster.SetMinSize(fyne.NewSize(ringViewBox, ringViewBox))
	ring.ExtendBaseWidget(ring)
	return ring
}

// CreateRenderer implements fyne.Widget.
func (ring *Ring) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ring.raster)
}

// SetProgress sets the filled fraction in [0, 1].
func (ring *Ring) SetProgress(progress float64) {
	ring.mu.Lock()
	ring.progress = math.Max(0, math.Min(1, progress))
	ring.mu.Unlock()
	ring.raster.Refresh()
}

// Progress returns the filled fraction.
func (ring *Ring) Progress() float64 {
	ring.mu.RLock()
	defer ring.mu.RUnlock()
	return ring.progress
}

// SetColor changes the arc color.
func (ring *Ring) SetColor(arc color.Color) {
	ring.mu.Lock()
	ring.arc = arc
	ring.mu.Unlock()
	ring.raster.Refresh()
}

func (ring *Ring) pixel(x, y, width, height int) color.Color {
	ring.mu.RLock()
	defer ring.mu.RUnlock()
	switch ringCoverage(x, y, width, height, ring.progress) {
	case coverArc:
		return ring.arc
	case coverTrack:
		return ring.track
	default:
		return color.Transparent
	}
}

// ringCoverage reports what the pixel (x, y) of a width x height raster
// shows for the given progress.
func ringCoverage(x, y, width, height int, progress float64) coverage {
	size := math.Min(float64(width), float64(height))
	if size <= 0 {
		return coverNone
	}
	scale := size / ringViewBox
	dx := float64(x) + 0.5 - float64(width)/2
	dy := float64(y) + 0.5 - float64(height)/2
	distance := math.Hypot(dx, dy)
	if math.Abs(distance-ringRadius*scale) > ringStrokeWidth*scale/2 {
		return coverNone
	}

	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if progress > 0 && angle/(2*math.Pi) <= progress {
		return coverArc
	}
	return coverTrack
}
