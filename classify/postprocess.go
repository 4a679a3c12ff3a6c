package classify

import (
	"math"
	"sort"
)

// Softmax converts logits into a probability distribution. The inputs
// are shifted by their maximum before exponentiation so that large or
// very negative logits neither overflow nor collapse to zero.
func Softmax(logits []float32) []float32 {
	m := logits[0]
	for _, v := range logits[1:] {
		if v > m {
			m = v
		}
	}

	probs := make([]float32, len(logits))
	var sum float64
	for i, v := range logits {
		e := math.Exp(float64(v - m))
		probs[i] = float32(e)
		sum += e
	}
	for i := range probs {
		probs[i] = float32(float64(probs[i]) / sum)
	}
	return probs
}

// TopK ranks the softmax distribution of logits against the label
// table and returns the k best classes, descending by probability with
// ties broken by ascending class index.
func TopK(logits []float32, labels []string, k int) RankedPredictions {
	probs := Softmax(logits)

	ranked := make(RankedPredictions, len(probs))
	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return probs[order[a]] > probs[order[b]]
	})
	for i, idx := range order {
		ranked[i] = ClassPrediction{
			Label:       labels[idx],
			Probability: probs[idx],
		}
	}

	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k]
}
