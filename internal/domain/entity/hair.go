package entity

import (
	"image/color"
	"math"
)

// Hair palette, indexed by remaining dash charges (capped at 2)
var HairColors = [3]color.RGBA{
	{41, 173, 255, 255}, // no dash left
	{255, 0, 77, 255},   // one dash
	{0, 228, 54, 255},   // two or more
}

// HairFlashColor is mixed in while flashing
var HairFlashColor = color.RGBA{255, 241, 232, 255}

const (
	dashFlashPeriod  = 1.0 / 15.0 // seconds
	multiFlashPeriod = 1.0 / 10.0 // seconds
)

// HairColor returns the hair colour for rendering. It depends only on the dash
// charges, the dash timer and elapsed time. disableFlashing turns off every
// alternating effect for photosensitive players.
func HairColor(a *Actor, disableFlashing bool) color.RGBA {
	idx := int(a.DashCharges)
	if idx > 2 {
		idx = 2
	}
	base := HairColors[idx]
	if disableFlashing {
		return base
	}

	if a.DashTimer > 0 && flashOn(a.Elapsed, dashFlashPeriod) {
		return HairFlashColor
	}
	if idx == 2 && flashOn(a.Elapsed, multiFlashPeriod) {
		return HairFlashColor
	}
	return base
}

// flashOn alternates every period seconds, starting off
func flashOn(elapsed, period float64) bool {
	return int(math.Floor(elapsed/period))%2 == 1
}
