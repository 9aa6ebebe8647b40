package mmc

import (
	"math"
	"strconv"
)

// SpeedMaximum is the reserved kB/s value asking the recorder for its fastest
// supported speed (the MMC SET SPEED 0xFFFF convention).
const SpeedMaximum = 0xFFFF

// 1x transfer rates in kB/s.
const (
	SpeedCD1x    = 176
	SpeedDVD1x   = 1385
	SpeedBD1x    = 4496
	SpeedHDDVD1x = 4568
)

// BaseSpeed returns the 1x rate for the profile's family. Unknown families
// fall back to the CD rate.
func BaseSpeed(p Profile) int {
	switch p.Family() {
	case FamilyDVD:
		return SpeedDVD1x
	case FamilyBD:
		return SpeedBD1x
	case FamilyHDDVD:
		return SpeedHDDVD1x
	default:
		return SpeedCD1x
	}
}

// Multiplier converts a kB/s rate into the "Nx" factor for the profile,
// rounded to one decimal place.
func Multiplier(kbps int, p Profile) float64 {
	base := BaseSpeed(p)
	if base <= 0 || kbps <= 0 {
		return 0
	}
	return math.Round(float64(kbps)/float64(base)*10) / 10
}

// FormatMultiplier renders a multiplier without trailing zeros, e.g. "2.4x"
// or "48x".
func FormatMultiplier(multiplier float64) string {
	return strconv.FormatFloat(multiplier, 'f', -1, 64) + "x"
}
