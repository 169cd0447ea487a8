package domain

import "context"

// Label is the binary classification a single review receives.
type Label string

const (
	LabelPositive Label = "POSITIVE"
	LabelNegative Label = "NEGATIVE"
)

// Valid reports whether l is one of the two labels the classifier may emit.
func (l Label) Valid() bool {
	return l == LabelPositive || l == LabelNegative
}

// Verdict is one review's classified sentiment outcome.
// Verdicts are derived per request and never persisted or mutated.
type Verdict struct {
	Text       string  `json:"text"`
	Label      Label   `json:"sentiment"`
	Confidence float64 `json:"confidence"`
}

// OverallSentiment is the corpus-level conclusion over one batch of verdicts.
// NO_DATA is distinct from NEUTRAL: an empty corpus is not a tie.
type OverallSentiment string

const (
	OverallPositive OverallSentiment = "POSITIVE"
	OverallNegative OverallSentiment = "NEGATIVE"
	OverallNeutral  OverallSentiment = "NEUTRAL"
	OverallNoData   OverallSentiment = "NO_DATA"
)

// Decorated returns the label with its console marker. Log output only;
// machine-readable responses always carry the plain label.
func (o OverallSentiment) Decorated() string {
	switch o {
	case OverallPositive:
		return "POSITIVE ✓"
	case OverallNegative:
		return "NEGATIVE ✗"
	case OverallNeutral:
		return "NEUTRAL ⚖"
	default:
		return string(o)
	}
}

// CorpusStats summarizes one batch of verdicts.
//
// Invariants (for TotalReviews > 0): PositiveCount + NegativeCount ==
// TotalReviews, and PositivePercentage + NegativePercentage == 100 exactly,
// because NegativePercentage is derived by subtraction rather than rounded
// independently. For an empty batch every numeric field is zero and Overall
// is OverallNoData.
type CorpusStats struct {
	TotalReviews       int              `json:"total_reviews_analyzed"`
	PositiveCount      int              `json:"positive_count"`
	NegativeCount      int              `json:"negative_count"`
	PositivePercentage float64          `json:"positive_percentage"`
	NegativePercentage float64          `json:"negative_percentage"`
	AverageConfidence  float64          `json:"average_confidence"`
	Overall            OverallSentiment `json:"overall_sentiment"`
}

// HasData reports whether the stats describe a non-empty corpus.
func (s CorpusStats) HasData() bool {
	return s.TotalReviews > 0
}

// Classifier is the external text classification capability.
// Implementations must be safe for concurrent use; one call per text,
// no ordering dependency between calls.
type Classifier interface {
	Classify(ctx context.Context, text string) (Label, float64, error)
}
