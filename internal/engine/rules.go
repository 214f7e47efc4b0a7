package engine

const (
	// MinPercentile is the lowest stat value or die result
	MinPercentile = 1

	// MaxPercentile is the highest stat value or die result
	MaxPercentile = 100

	// PercentileSides is the die rolled for every check
	PercentileSides = 100

	// DefaultStatValue is the value every attribute starts at
	DefaultStatValue = 50

	// zeroBand is the distance from the stat inside which a roll adjusts nothing
	zeroBand = 10
)

// TensDigit returns the base SR for a stat value: floor(v / 10) mod 10,
// always in [0,9]. A stat of 100 yields 0, the same as 1-9.
func TensDigit(statValue int) int {
	tens := statValue / 10
	if statValue < 0 && statValue%10 != 0 {
		tens--
	}
	return ((tens % 10) + 10) % 10
}

// ComputeAdjustment turns a die result against an entered stat into an SR
// adjustment. Rolling more than 10 under the stat earns +1 per full 10 of
// distance, rolling more than 10 over costs -1 per full 10. Exactly ±10 is in
// the zero band.
func ComputeAdjustment(dieResult, enteredStat int) int {
	difference := dieResult - enteredStat

	switch {
	case difference < -zeroBand:
		return -difference / 10
	case difference > zeroBand:
		return -(difference / 10)
	default:
		return 0
	}
}

// ComputeSkillSR is the SR of a skill built on an attribute
func ComputeSkillSR(attributeSR, levelBonus, miscBonus int) int {
	return attributeSR + levelBonus + miscBonus
}

// ClampPercentile pins v into [1,100]
func ClampPercentile(v int) int {
	if v < MinPercentile {
		return MinPercentile
	}
	if v > MaxPercentile {
		return MaxPercentile
	}
	return v
}

// InPercentileRange reports whether v is a legal stat value or die result
func InPercentileRange(v int) bool {
	return v >= MinPercentile && v <= MaxPercentile
}
