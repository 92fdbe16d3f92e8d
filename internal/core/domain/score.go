package domain

// ScoreTable accumulates votes per probe class during the recovery of one offset.
type ScoreTable struct {
	votes [ProbeClasses]int
}

// NewScoreTable returns an empty table.
func NewScoreTable() *ScoreTable {
	return &ScoreTable{}
}

// Vote adds one vote to class.
func (t *ScoreTable) Vote(class int) {
	t.votes[class]++
}

// Score returns the votes held by class.
func (t *ScoreTable) Score(class int) int {
	return t.votes[class]
}

// Total returns the votes cast across all classes.
func (t *ScoreTable) Total() int {
	total := 0
	for _, v := range t.votes {
		total += v
	}
	return total
}

// Reset clears every vote.
func (t *ScoreTable) Reset() {
	t.votes = [ProbeClasses]int{}
}

// TopTwo returns the class with the most votes and the runner-up, which is
// always a different class. Ties keep the lower class index.
func (t *ScoreTable) TopTwo() (best, runnerUp int) {
	best, runnerUp = 0, 1
	if t.votes[1] > t.votes[0] {
		best, runnerUp = 1, 0
	}
	for i := 2; i < ProbeClasses; i++ {
		switch {
		case t.votes[i] > t.votes[best]:
			runnerUp = best
			best = i
		case t.votes[i] > t.votes[runnerUp]:
			runnerUp = i
		}
	}
	return best, runnerUp
}

// Confident reports whether the best score leads the runner-up by the margin.
func Confident(bestScore, runnerUpScore, margin int) bool {
	return bestScore > 2*runnerUpScore+margin
}
