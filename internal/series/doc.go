// Package series provides the immutable sample store feeding every
// analysis report.
//
// Raw delimiter-separated records are parsed once, up front, into a
// SampleSet of (index, label, value) observations. The label is an opaque
// time/date field; the zero-based index is the independent variable used
// throughout the engine. After loading, the set is never mutated, which is
// what makes the concurrent report fan-out in the analysis package safe.
package series
