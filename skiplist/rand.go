package skiplist

import "math/bits"

const float64Unit = 1.0 / (1 << 53)

// rollHeight draws the number of levels a new element participates in:
// guaranteed at level 0, then one biased coin flip per additional level up
// to the structural maximum, so at most levels-1 flips. The distribution is
// geometric with the configured probability and independent of the key.
func (l *List[K]) rollHeight() int {
	maxLevel := l.cfg.levels
	if maxLevel == 1 {
		return 1
	}

	// Sampling trailing zero bits of one draw is equivalent to repeated
	// fair flips, and cheaper.
	if l.cfg.probability == 0.5 {
		height := 1 + bits.TrailingZeros64(l.src.Uint64())
		if height > maxLevel {
			height = maxLevel
		}
		return height
	}

	height := 1
	for height < maxLevel {
		roll := float64(l.src.Uint64()>>11) * float64Unit
		if roll >= l.cfg.probability {
			break
		}
		height++
	}
	return height
}
