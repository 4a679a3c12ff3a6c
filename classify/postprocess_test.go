package classify

import (
	"math"
	"testing"
)

func TestSoftmaxSumsToOne(t *testing.T) {
	cases := [][]float32{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{5, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{-100, -50, 0, 50, 100, 3, -3, 7, -7, 0.5},
		{1000, 999, 998, 997, 996, 995, 994, 993, 992, 991},
	}
	for _, logits := range cases {
		probs := Softmax(logits)
		var sum float64
		for _, p := range probs {
			if p < 0 {
				t.Errorf("Negative probability %v for logits %v", p, logits)
			}
			sum += float64(p)
		}
		if math.Abs(sum-1) > 1e-5 {
			t.Errorf("Probabilities sum to %v for logits %v", sum, logits)
		}
	}
}

func TestSoftmaxUniform(t *testing.T) {
	probs := Softmax(make([]float32, NumClasses))
	for i, p := range probs {
		if math.Abs(float64(p)-0.1) > 1e-6 {
			t.Errorf("Probability %d = %v, want 0.1", i, p)
		}
	}
}

func TestTopKDominantClass(t *testing.T) {
	logits := []float32{5, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	ranked := TopK(logits, DefaultLabels, 3)

	if len(ranked) != 3 {
		t.Fatalf("Expected 3 predictions, got %d", len(ranked))
	}
	if ranked.Top().Label != "airplane" {
		t.Errorf("Expected top label airplane, got %s", ranked.Top().Label)
	}
	if ranked.Top().Probability <= 0.9 {
		t.Errorf("Expected top probability > 0.9, got %v", ranked.Top().Probability)
	}
}

func TestTopKNonIncreasing(t *testing.T) {
	logits := []float32{0.3, -1.2, 4, 4, 0, 2.5, -7, 1.1, 1.1, 3}
	ranked := TopK(logits, DefaultLabels, NumClasses)
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Probability > ranked[i-1].Probability {
			t.Errorf("Ranking increases at %d: %v > %v", i, ranked[i].Probability, ranked[i-1].Probability)
		}
	}
}

func TestTopKTieBreakAscendingIndex(t *testing.T) {
	ranked := TopK(make([]float32, NumClasses), DefaultLabels, NumClasses)
	for i, p := range ranked {
		if p.Label != DefaultLabels[i] {
			t.Errorf("Position %d = %s, want %s", i, p.Label, DefaultLabels[i])
		}
	}
	if ranked.Top().Label != "airplane" {
		t.Errorf("Expected lowest-index tie-break to win, got %s", ranked.Top().Label)
	}
}

func TestTopKClampsK(t *testing.T) {
	ranked := TopK(make([]float32, NumClasses), DefaultLabels, 50)
	if len(ranked) != NumClasses {
		t.Errorf("Expected %d predictions, got %d", NumClasses, len(ranked))
	}
}
