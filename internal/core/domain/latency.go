package domain

// LatencyVector holds the access latency measured for every probe class in one round.
type LatencyVector [ProbeClasses]Cycles

// Mean returns the average latency with the single slowest sample left out.
// One outlier per round (an interrupt, a page walk) would otherwise drag the
// threshold up far enough to let misses vote.
func (v *LatencyVector) Mean() Cycles {
	var (
		sum     uint64
		slowest Cycles
	)
	for _, c := range v {
		sum += uint64(c)
		if c > slowest {
			slowest = c
		}
	}
	sum -= uint64(slowest)
	return Cycles(sum / (ProbeClasses - 1))
}
