// Package feature extracts fixed-length feature vectors from the run
// structure of bit-level encoded time series.
//
// Three extractors are provided:
//
//   - Clip: an 8-element vector summarizing the runs of the level
//     (clipping) encoding — longest and total above-mean runs, longest
//     below-mean run, number of level changes, and the lengths of the
//     boundary runs.
//   - Trend: a 2*pieces-element vector summarizing the runs of the trend
//     encoding, computed piecewise over a moving-average smoothed signal
//     with a caller-supplied aggregation.
//   - Combined: the concatenation of Clip and Trend.
//
// The extractors are pure functions intended for clustering and indexing
// workloads where each series is reduced to one short numeric vector.
//
// # Usage
//
//	clip, err := feature.Clip(series)
//
//	trend, err := feature.Trend(series, aggregate.Max,
//	    feature.WithPieces(4),
//	    feature.WithOrder(8),
//	)
//
//	both, err := feature.Combined(series, aggregate.Sum)
package feature
