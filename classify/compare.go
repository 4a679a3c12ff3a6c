package classify

// Report aggregates two already-computed InferenceResults. Agreement
// compares the top-1 labels only; probabilities do not matter. The
// speed ratio is A's time over B's, left undefined when B's time is
// zero.
func Report(a, b InferenceResult) ComparisonResult {
	res := ComparisonResult{
		A:         a,
		B:         b,
		Agreement: a.Predictions.Top().Label == b.Predictions.Top().Label,
	}
	if b.Elapsed > 0 {
		res.SpeedRatio = float64(a.Elapsed) / float64(b.Elapsed)
		res.SpeedRatioDefined = true
	}
	return res
}
