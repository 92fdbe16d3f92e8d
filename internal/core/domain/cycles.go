package domain

// Cycles is a count of CPU cycles read from a serializing counter.
// Two readings are only comparable within one measurement on one logical core.
type Cycles uint64

// Since returns the cycles elapsed from start to c.
// A counter that went backwards (core migration) yields zero.
func (c Cycles) Since(start Cycles) Cycles {
	if c < start {
		return 0
	}
	return c - start
}
