package domain

const (
	// ProbeClasses is the number of probe classes, one per possible byte value.
	ProbeClasses = 256

	// CacheLineSize is the cache line size assumed for x86-64.
	CacheLineSize = 64

	// PageSize is the page size assumed for prefetcher and arena alignment.
	PageSize = 4096

	// ScanMultiplier and ScanOffset define the affine scan permutation.
	ScanMultiplier = 167
	ScanOffset     = 13

	// NoExclusion disables the excluded class when scoring.
	NoExclusion = -1
)

// ScanIndex returns the probe class visited at step i of a measurement scan.
// Consecutive classes are never adjacent so stride prefetchers cannot pull
// a neighbor into cache ahead of its measurement.
func ScanIndex(i int) int {
	return (i*ScanMultiplier + ScanOffset) & (ProbeClasses - 1)
}

// ScanOrder returns the full measurement order.
func ScanOrder() [ProbeClasses]int {
	var order [ProbeClasses]int
	for i := range order {
		order[i] = ScanIndex(i)
	}
	return order
}
