// Package analysis implements the batch time-series analysis engine.
//
// The engine computes independent reports over an immutable sample set:
// descriptive statistics, an ordinary-least-squares linear trend with a
// dead-band classification, a fixed-margin forecast, sigma-threshold
// anomaly detection, period-over-period growth rates, lag-product
// seasonality scores, and a trailing moving average.
//
// Every computation is batch and in-memory: the full sample set is loaded
// before any report runs, and nothing mutates it afterwards. That read-only
// invariant is what lets the Analyzer fan reports out concurrently.
//
// Two numeric quirks are preserved deliberately because changing them
// changes reported output: the forecast confidence margin has a fixed
// width regardless of horizon, and the legacy seasonality score is an
// unnormalized lag product rather than a true autocorrelation (a
// normalized variant is exposed alongside it).
package analysis
