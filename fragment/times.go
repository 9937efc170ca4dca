package fragment

// timeSet is a set of integer milliseconds from a fixed range, stored as a
// bitmap. Planner only removes times and mostly from below, so the lowest
// possibly present index is tracked.
type timeSet struct {
	base    int
	present []bool
	low     int
	count   int
}

// newTimeSet returns set holding every time in [from, to].
func newTimeSet(from, to int) *timeSet {
	ts := &timeSet{base: from}
	if to < from {
		return ts
	}
	ts.present = make([]bool, to-from+1)
	for i := range ts.present {
		ts.present[i] = true
	}
	ts.count = len(ts.present)
	return ts
}

func (ts *timeSet) len() int { return ts.count }

func (ts *timeSet) contains(t int) bool {
	i := t - ts.base
	return i >= ts.low && i < len(ts.present) && ts.present[i]
}

func (ts *timeSet) remove(t int) {
	if ts.contains(t) {
		ts.present[t-ts.base] = false
		ts.count--
	}
}

// removeBetween removes times strictly between from and to.
func (ts *timeSet) removeBetween(from, to int) {
	for t := max(from+1, ts.base+ts.low); t < to && t-ts.base < len(ts.present); t++ {
		ts.remove(t)
	}
}

// removeBelow removes every time lower than t.
func (ts *timeSet) removeBelow(t int) {
	ts.removeBetween(ts.base+ts.low-1, t)
	ts.low = max(ts.low, min(t-ts.base, len(ts.present)))
}

func (ts *timeSet) min() (int, bool) {
	for i := ts.low; i < len(ts.present); i++ {
		if ts.present[i] {
			ts.low = i
			return ts.base + i, true
		}
	}
	return 0, false
}

func (ts *timeSet) max() (int, bool) {
	for i := len(ts.present) - 1; i >= ts.low; i-- {
		if ts.present[i] {
			return ts.base + i, true
		}
	}
	return 0, false
}

// largestBelow returns the largest time < t.
func (ts *timeSet) largestBelow(t int) (int, bool) {
	for i := min(t-ts.base, len(ts.present)) - 1; i >= ts.low; i-- {
		if ts.present[i] {
			return ts.base + i, true
		}
	}
	return 0, false
}

// smallestAbove returns the smallest time > t.
func (ts *timeSet) smallestAbove(t int) (int, bool) {
	for i := max(t-ts.base+1, ts.low); i < len(ts.present); i++ {
		if ts.present[i] {
			return ts.base + i, true
		}
	}
	return 0, false
}
