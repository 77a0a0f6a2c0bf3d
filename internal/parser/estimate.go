// Package parser turns raw bundler stats into the normalized bundle
// model, the drill-down hierarchy and the filtered views consumed by the
// visualization layer.
package parser

// EstimateGzipSize approximates a gzip-compressed size as ⌊raw × 0.3⌋.
// True compression is content-dependent, so the result is advisory-only
// and must never feed exact arithmetic. Non-positive input yields 0.
func EstimateGzipSize(rawBytes int64) int64 {
	if rawBytes <= 0 {
		return 0
	}
	return rawBytes * 3 / 10
}
