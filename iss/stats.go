package iss

// Statistics holds the monotonically non-decreasing execution counters
// this kernel reports. LoadMisses and StoreMisses exist for API
// compatibility with a future cache model and remain zero in this
// core: no cache is implemented.
type Statistics struct {
	Instructions uint64
	Loads        uint64
	Stores       uint64
	LoadMisses   uint64
	StoreMisses  uint64
}
