package domain

// Experience ladder constants. Each prestige spans 100 levels; the first
// four levels of a prestige are discounted, every later level costs the same.
const (
	levelsPerPrestige     = 100
	xpPerPrestige         = 487000
	xpPerRegularLevel     = 5000
	discountedLevelsTotal = 4
)

// xpForEarlyLevels holds the cost of the first levels after a prestige
var xpForEarlyLevels = [discountedLevelsTotal]int64{500, 1000, 2000, 3500}

// LevelFromExperience converts a lifetime experience counter to a level.
// Negative experience (possible only on corrupt data) maps to level 0.
func LevelFromExperience(exp int64) int {
	if exp < 0 {
		return 0
	}

	prestiges := exp / xpPerPrestige
	level := int(prestiges) * levelsPerPrestige
	remainder := exp % xpPerPrestige

	for _, cost := range xpForEarlyLevels {
		if remainder < cost {
			return level
		}
		remainder -= cost
		level++
	}

	return level + int(remainder/xpPerRegularLevel)
}
