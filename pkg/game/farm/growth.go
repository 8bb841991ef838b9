package farm

import "time"

// WheatGrowthTime is how long watered wheat takes to become harvestable
const WheatGrowthTime = 5 * time.Second

// Growth maps a crop to the time a watered tile waits before harvest.
// Crops missing from the map grow instantly.
type Growth map[CropType]time.Duration

// DefaultGrowth returns the stock growth durations
func DefaultGrowth() Growth {
	return Growth{
		Wheat: WheatGrowthTime,
	}
}

// Duration returns the growth duration for crop in milliseconds
func (g Growth) Duration(crop CropType) int64 {
	if g == nil {
		return 0
	}
	return g[crop].Milliseconds()
}
