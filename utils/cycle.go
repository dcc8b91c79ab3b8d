package utils

// historyDepth bounds how many recent generations are remembered; short-period
// oscillators (blinkers, toads) repeat within this window
const historyDepth = 5

// CycleDetector spots static or short-cycle board states from a rolling
// window of grid hashes. It lives with the driver, not the grid: grids are
// immutable snapshots and carry no history of their own.
type CycleDetector struct {
	history []string
}

func NewCycleDetector() *CycleDetector {
	return &CycleDetector{}
}

// Observe records the hash of the current generation and reports whether it
// matches any recently seen state, indicating stagnation.
func (d *CycleDetector) Observe(hash string) bool {
	stagnant := false
	for i := len(d.history) - 1; i >= 0 && i >= len(d.history)-3; i-- {
		if d.history[i] == hash {
			stagnant = true
			break
		}
	}

	d.history = append(d.history, hash)
	if len(d.history) > historyDepth {
		d.history = d.history[1:]
	}

	return stagnant
}

// Reset clears the observation window, e.g. after a board restart
func (d *CycleDetector) Reset() {
	d.history = nil
}
