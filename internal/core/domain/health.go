package domain

import (
	"math"
	"time"
)

// Wear thresholds in kilometers between services.
const (
	OilWearThreshold   = 5000
	BrakeWearThreshold = 30000
)

const millisPerDay = 86_400_000

// ConsumableHealth converts the distance driven since the last service into a
// remaining-life percentage, clamped to [0, 100]. A result of exactly 0 means
// the consumable is overdue, not merely low. Degenerate thresholds report 100
// (assume healthy rather than alarm on unknown data).
func ConsumableHealth(lastServiceOdometer, currentOdometer, wearThreshold int) int {
	if wearThreshold <= 0 {
		return 100
	}
	worn := currentOdometer - lastServiceOdometer
	health := int(math.Round(100 * float64(wearThreshold-worn) / float64(wearThreshold)))
	if health < 0 {
		return 0
	}
	if health > 100 {
		return 100
	}
	return health
}

// DaysUntil counts calendar days from now until expiry with a ceiling, so a
// document expiring 0.1 days from now reports 1, never 0. Negative values
// mean already expired.
func DaysUntil(expiry, now time.Time) int {
	diff := expiry.UnixMilli() - now.UnixMilli()
	return int(math.Ceil(float64(diff) / float64(millisPerDay)))
}
