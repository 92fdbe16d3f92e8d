package sim

// Counter states of a 2-bit saturating counter.
const (
	strongNotTaken uint8 = iota
	weakNotTaken
	weakTaken
	strongTaken
)

// Predictor is a table of 2-bit saturating counters, one per branch site.
// A site predicts taken once two more taken than not-taken outcomes have
// been seen, and one misprediction is not enough to flip a saturated counter.
type Predictor struct {
	counters map[int]uint8
}

// NewPredictor creates a predictor with every site weakly not taken.
func NewPredictor() *Predictor {
	return &Predictor{counters: make(map[int]uint8)}
}

func (p *Predictor) counter(site int) uint8 {
	c, ok := p.counters[site]
	if !ok {
		return weakNotTaken
	}
	return c
}

// Predict reports whether the branch at site is predicted taken.
func (p *Predictor) Predict(site int) bool {
	return p.counter(site) >= weakTaken
}

// Update trains site with the resolved outcome.
func (p *Predictor) Update(site int, taken bool) {
	c := p.counter(site)
	switch {
	case taken && c < strongTaken:
		c++
	case !taken && c > strongNotTaken:
		c--
	}
	p.counters[site] = c
}
