// Package metrics holds histogram layouts shared by the service's instruments.
package metrics

// LatencyBuckets are histogram boundaries in seconds for request and job
// latencies.
var LatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30} //nolint: gochecknoglobals

// SizeBuckets are histogram boundaries in bytes for request bodies, sized for
// scanned identity documents (a few KiB up to tens of MiB).
var SizeBuckets = []float64{1 << 10, 16 << 10, 64 << 10, 256 << 10, 1 << 20, 4 << 20, 16 << 20, 64 << 20} //nolint: gochecknoglobals
