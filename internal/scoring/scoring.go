package scoring

// MaxScore is the score for a guess less than a meter from the answer
const MaxScore = 15

// Tier awards Points to any distance at or above MinMeters
type Tier struct {
	MinMeters float64
	Points    int
}

// Tiers lists the scoring bands from the farthest to the closest. Anything
// farther than OutOfRangeMeters scores nothing.
var Tiers = []Tier{
	{MinMeters: 40, Points: 1},
	{MinMeters: 30, Points: 3},
	{MinMeters: 20, Points: 6},
	{MinMeters: 10, Points: 9},
	{MinMeters: 1, Points: 12},
}

// OutOfRangeMeters is the inclusive upper bound of the farthest tier
const OutOfRangeMeters = 50

// Score maps a distance in meters to the points it earns
func Score(distanceMeters float64) int {
	if distanceMeters > OutOfRangeMeters {
		return 0
	}

	for _, tier := range Tiers {
		if distanceMeters >= tier.MinMeters {
			return tier.Points
		}
	}

	return MaxScore
}
