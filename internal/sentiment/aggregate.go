package sentiment

import (
	"math"

	"github.com/pscheid92/moviepulse/internal/domain"
)

// Summarize converts one batch of verdicts into corpus-level statistics.
//
// The negative percentage is derived by subtracting the rounded positive
// percentage from 100, so the two always sum to exactly 100 and cannot
// drift apart through independent rounding. The overall label uses strict
// inequality only: an exact tie is NEUTRAL, an empty batch is NO_DATA.
// Empty input is a valid case (a movie may have zero reviews), not an error.
func Summarize(verdicts []domain.Verdict) domain.CorpusStats {
	if len(verdicts) == 0 {
		return domain.CorpusStats{Overall: domain.OverallNoData}
	}

	var positives int
	var confidenceSum float64
	for _, v := range verdicts {
		if v.Label == domain.LabelPositive {
			positives++
		}
		confidenceSum += v.Confidence
	}

	total := len(verdicts)
	stats := domain.CorpusStats{
		TotalReviews:  total,
		PositiveCount: positives,
		NegativeCount: total - positives,
	}
	stats.PositivePercentage = round2(100 * float64(positives) / float64(total))
	stats.NegativePercentage = 100 - stats.PositivePercentage
	stats.AverageConfidence = round2(confidenceSum / float64(total))

	switch {
	case stats.PositivePercentage > stats.NegativePercentage:
		stats.Overall = domain.OverallPositive
	case stats.NegativePercentage > stats.PositivePercentage:
		stats.Overall = domain.OverallNegative
	default:
		stats.Overall = domain.OverallNeutral
	}

	return stats
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
