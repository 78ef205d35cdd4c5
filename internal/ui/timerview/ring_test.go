package timerview

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRingCoverage(t *testing.T) {
	tests := []struct {
		name     string
		x, y     int
		progress float64
		want     coverage
	}{
		{name: "center is empty", x: 128, y: 128, progress: 1, want: coverNone},
		{name: "corner is empty", x: 0, y: 0, progress: 1, want: coverNone},
		{name: "top with no progress", x: 128, y: 8, progress: 0, want: coverTrack},
		{name: "top just started", x: 128, y: 8, progress: 0.01, want: coverArc},
		{name: "right before quarter", x: 248, y: 128, progress: 0.2, want: coverTrack},
		{name: "right after quarter", x: 248, y: 128, progress: 0.3, want: coverArc},
		{name: "bottom at half", x: 128, y: 247, progress: 0.5, want: coverArc},
		{name: "left before three quarters", x: 8, y: 128, progress: 0.7, want: coverTrack},
		{name: "left when full", x: 8, y: 128, progress: 1, want: coverArc},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ringCoverage(tc.x, tc.y, 256, 256, tc.progress))
		})
	}
}

func TestRingCoverageScales(t *testing.T) {
	assert.Equal(t, coverArc, ringCoverage(64, 4, 128, 128, 0.01))
	assert.Equal(t, coverNone, ringCoverage(64, 20, 128, 128, 0.01))
	assert.Equal(t, coverNone, ringCoverage(0, 0, 0, 0, 1))
}

func TestRingProgressClamped(t *testing.T) {
	ring := NewRing(workColor)

	ring.SetProgress(1.5)
	assert.Equal(t, 1.0, ring.Progress())
	ring.SetProgress(-1)
	assert.Equal(t, 0.0, ring.Progress())
}

func TestRingPixelColors(t *testing.T) {
	ring := NewRing(workColor)
	ring.SetProgress(0.3)
	assert.Equal(t, color.Color(workColor), ring.pixel(248, 128, 256, 256))
	assert.Equal(t, color.Color(trackColor), ring.pixel(8, 128, 256, 256))
	assert.Equal(t, color.Color(color.Transparent), ring.pixel(128, 128, 256, 256))

	ring.SetColor(breakColor)
	assert.Equal(t, color.Color(breakColor), ring.pixel(248, 128, 256, 256))
}
