package feature

import "github.com/arloliu/tsrepr/aggregate"

// Combined computes the concatenation of Clip and Trend for x: the 8 level
// feature elements followed by the 2*pieces trend feature elements. It
// introduces no behavior of its own; both halves see the same options and
// fail with the same errors as the standalone extractors.
func Combined(x []float64, agg aggregate.Func, opts ...TrendOption) ([]float64, error) {
	clip, err := Clip(x)
	if err != nil {
		return nil, err
	}

	trend, err := Trend(x, agg, opts...)
	if err != nil {
		return nil, err
	}

	repr := make([]float64, 0, len(clip)+len(trend))
	repr = append(repr, clip...)
	repr = append(repr, trend...)

	return repr, nil
}
