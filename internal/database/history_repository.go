package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pscheid92/moviepulse/internal/domain"
)

// HistoryRepo persists completed analyses and serves the recent-analyses
// listing. It implements domain.AnalysisHistory.
type HistoryRepo struct {
	pool *pgxpool.Pool
}

func NewHistoryRepo(pool *pgxpool.Pool) *HistoryRepo {
	return &HistoryRepo{pool: pool}
}

func (r *HistoryRepo) Record(ctx context.Context, analysis *domain.MovieAnalysis) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO movie_analyses (
			id, movie_id, title,
			total_reviews, positive_count, negative_count,
			positive_percentage, negative_percentage, average_confidence,
			overall_sentiment, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`,
		analysis.ID, analysis.Movie.ID, analysis.Movie.Title,
		analysis.Stats.TotalReviews, analysis.Stats.PositiveCount, analysis.Stats.NegativeCount,
		analysis.Stats.PositivePercentage, analysis.Stats.NegativePercentage, analysis.Stats.AverageConfidence,
		string(analysis.Stats.Overall), analysis.AnalyzedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record analysis: %w", err)
	}
	return nil
}

func (r *HistoryRepo) ListRecent(ctx context.Context, limit int) ([]domain.AnalysisRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, movie_id, title,
		       total_reviews, positive_count, negative_count,
		       positive_percentage, negative_percentage, average_confidence,
		       overall_sentiment, created_at
		FROM movie_analyses
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent analyses: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AnalysisRecord, 0, limit)
	for rows.Next() {
		var rec domain.AnalysisRecord
		var overall string
		err := rows.Scan(
			&rec.ID, &rec.MovieID, &rec.Title,
			&rec.TotalReviews, &rec.PositiveCount, &rec.NegativeCount,
			&rec.PositivePercentage, &rec.NegativePercentage, &rec.AverageConfidence,
			&overall, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan analysis record: %w", err)
		}
		rec.Overall = domain.OverallSentiment(overall)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read analysis records: %w", err)
	}
	return records, nil
}
