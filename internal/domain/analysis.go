package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Exemplar is the single most confident review of one label, kept as
// representative evidence alongside the aggregate statistics.
type Exemplar struct {
	Author     string   `json:"author"`
	Content    string   `json:"content"`
	Rating     *float64 `json:"rating,omitempty"`
	Sentiment  Label    `json:"sentiment"`
	Confidence float64  `json:"confidence"`
}

// MovieAnalysis is the composed result of one analysis request: the movie,
// the corpus statistics, and up to one exemplar per label. BestPositive and
// BestNegative are nil when the corresponding partition is empty.
type MovieAnalysis struct {
	ID           uuid.UUID
	Movie        Movie
	Stats        CorpusStats
	BestPositive *Exemplar
	BestNegative *Exemplar
	AnalyzedAt   time.Time
}

// HasReviews reports whether any reviews were available to analyze.
// A false result is the no-data case, not an error.
func (a *MovieAnalysis) HasReviews() bool {
	return a.Stats.HasData()
}

// AnalysisCache caches completed movie analyses between requests.
// Classification is the expensive step, so a hit skips the classifier
// entirely. The cache sits at the service boundary; the aggregation core
// itself holds no state.
type AnalysisCache interface {
	Get(ctx context.Context, movieID int) (*MovieAnalysis, bool, error)
	Set(ctx context.Context, analysis *MovieAnalysis) error
}

// AnalysisRecord is the persisted trace of one completed analysis.
type AnalysisRecord struct {
	ID                 uuid.UUID        `json:"id"`
	MovieID            int              `json:"movie_id"`
	Title              string           `json:"title"`
	TotalReviews       int              `json:"total_reviews_analyzed"`
	PositiveCount      int              `json:"positive_count"`
	NegativeCount      int              `json:"negative_count"`
	PositivePercentage float64          `json:"positive_percentage"`
	NegativePercentage float64          `json:"negative_percentage"`
	AverageConfidence  float64          `json:"average_confidence"`
	Overall            OverallSentiment `json:"overall_sentiment"`
	CreatedAt          time.Time        `json:"created_at"`
}

// AnalysisHistory records completed analyses and lists recent ones.
type AnalysisHistory interface {
	Record(ctx context.Context, analysis *MovieAnalysis) error
	ListRecent(ctx context.Context, limit int) ([]AnalysisRecord, error)
}
