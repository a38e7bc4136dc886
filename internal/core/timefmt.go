package core

import (
	"math"
	"strconv"
)

// FormatTime renders a number of seconds as M:SS.
//
// Any input that is not a positive finite number renders as "0:00".
// Fractional seconds are floored before minutes and seconds are split.
func FormatTime(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return "0:00"
	}

	whole := math.Max(0, math.Floor(seconds))
	minutes := math.Floor(whole / 60)
	secs := int(math.Mod(whole, 60))

	// Minutes stay a float so huge inputs don't overflow an int.
	m := strconv.FormatFloat(minutes, 'f', 0, 64)
	if secs < 10 {
		return m + ":0" + strconv.Itoa(secs)
	}
	return m + ":" + strconv.Itoa(secs)
}
