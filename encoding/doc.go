// Package encoding provides the bit-level and run-length encoders that
// underpin the run-based feature representations.
//
// Two bit-level encoders map a real-valued sequence to a {0,1} sequence:
//
//   - LevelEncode (clipping): 1 where a sample exceeds the sequence mean
//   - TrendEncode (trending): 1 where consecutive samples rise
//
// RunLength then turns any sequence of discrete values into maximal
// (value, length) runs, and Expand inverts it. The encoders guarantee that
// adjacent runs never share a value and that run lengths sum to the input
// length, which is the structural invariant the feature extractors in the
// feature package rely on.
//
// RunLength compares values with exact equality and applies no tolerance.
// That policy is deliberate: inside the feature pipeline the encoder only
// ever sees the {0,1} outputs of the bit-level encoders, where exactness
// holds by construction. Callers encoding raw float sequences directly get
// the same bit-for-bit semantics.
//
// # Pipeline
//
//	bits, _ := encoding.LevelEncode(x)
//	runs, _ := encoding.RunLength(bits)
//	// runs feed feature.Clip / feature.Trend
package encoding
