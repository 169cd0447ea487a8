package sentiment

import "github.com/pscheid92/moviepulse/internal/domain"

// ExemplarIndices returns the positions of the most confident positive and
// most confident negative verdicts, or -1 for a label with no verdicts.
//
// Single pass with a running maximum per label. The comparison is strictly
// greater-than, so on equal maximal confidence the first-encountered verdict
// in input order wins and selection stays deterministic for a fixed input.
func ExemplarIndices(verdicts []domain.Verdict) (bestPositive, bestNegative int) {
	bestPositive, bestNegative = -1, -1
	for i, v := range verdicts {
		switch v.Label {
		case domain.LabelPositive:
			if bestPositive == -1 || v.Confidence > verdicts[bestPositive].Confidence {
				bestPositive = i
			}
		case domain.LabelNegative:
			if bestNegative == -1 || v.Confidence > verdicts[bestNegative].Confidence {
				bestNegative = i
			}
		}
	}
	return bestPositive, bestNegative
}

// SelectExemplars returns pointers to the selected verdicts, nil for a label
// with no verdicts. An empty partition is a valid outcome, not an error; the
// caller renders a "no example available" marker instead of failing.
func SelectExemplars(verdicts []domain.Verdict) (bestPositive, bestNegative *domain.Verdict) {
	p, n := ExemplarIndices(verdicts)
	if p >= 0 {
		bestPositive = &verdicts[p]
	}
	if n >= 0 {
		bestNegative = &verdicts[n]
	}
	return bestPositive, bestNegative
}
