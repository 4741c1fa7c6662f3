package runner

import "time"

// Tier is an immutable difficulty configuration selected by cumulative
// score. Higher tiers scroll faster and spawn more densely.
type Tier struct {
	Level     int
	Label     string
	Threshold float64 // Minimum cumulative score for this tier

	SpeedScale float64 // Multiplier on entity scroll speed and score rate

	GroundHazardEvery   time.Duration
	FloatingHazardEvery time.Duration
	PickupEvery         time.Duration
}

// tiers is the static tier table, ascending by threshold.
var tiers = []Tier{
	{
		Level:               1,
		Label:               "Warmup",
		Threshold:           0,
		SpeedScale:          1.0,
		GroundHazardEvery:   2200 * time.Millisecond,
		FloatingHazardEvery: 3600 * time.Millisecond,
		PickupEvery:         2800 * time.Millisecond,
	},
	{
		Level:               2,
		Label:               "Breeze",
		Threshold:           300,
		SpeedScale:          1.2,
		GroundHazardEvery:   1900 * time.Millisecond,
		FloatingHazardEvery: 3100 * time.Millisecond,
		PickupEvery:         2600 * time.Millisecond,
	},
	{
		Level:               3,
		Label:               "Rush",
		Threshold:           800,
		SpeedScale:          1.45,
		GroundHazardEvery:   1600 * time.Millisecond,
		FloatingHazardEvery: 2600 * time.Millisecond,
		PickupEvery:         2400 * time.Millisecond,
	},
	{
		Level:               4,
		Label:               "Surge",
		Threshold:           1500,
		SpeedScale:          1.7,
		GroundHazardEvery:   1350 * time.Millisecond,
		FloatingHazardEvery: 2100 * time.Millisecond,
		PickupEvery:         2200 * time.Millisecond,
	},
	{
		Level:               5,
		Label:               "Redline",
		Threshold:           2500,
		SpeedScale:          2.0,
		GroundHazardEvery:   1100 * time.Millisecond,
		FloatingHazardEvery: 1700 * time.Millisecond,
		PickupEvery:         2000 * time.Millisecond,
	},
}

// TierForScore maps a cumulative score to its difficulty tier.
// Highest threshold is checked first; every non-negative score maps to
// exactly one tier.
func TierForScore(score float64) Tier {
	for i := len(tiers) - 1; i > 0; i-- {
		if score >= tiers[i].Threshold {
			return tiers[i]
		}
	}
	return tiers[0]
}
