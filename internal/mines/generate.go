package mines

import "github.com/sirupsen/logrus"

// placeMines picks b.mineCount distinct cells uniformly at random from
// every cell except forbidden and switches the board to [Placed].
func (b *Board) placeMines(forbidden int) {
	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, len(b.mines))
	for i := range b.mines {
		if i != forbidden {
			candidates = append(candidates, i)
		}
	}

	/*
	 * Now pick n off the list at random. Each picked entry is replaced by
	 * the last live one, so nothing is picked twice.
	 */
	k := len(candidates)
	for range b.mineCount {
		i := b.rnd.IntN(k)
		b.mines[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	b.phase = Placed

	Log.WithFields(logrus.Fields{
		"width":      b.width,
		"height":     b.height,
		"mine_count": b.mineCount,
		"forbidden":  forbidden,
	}).Debug("placed mines")
}
