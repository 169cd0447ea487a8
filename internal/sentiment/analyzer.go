package sentiment

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/pscheid92/moviepulse/internal/domain"
	apperrors "github.com/pscheid92/moviepulse/internal/errors"
	"github.com/pscheid92/moviepulse/internal/metrics"
)

// Analyzer orchestrates one analysis request: fetch reviews, classify each
// one, aggregate, select exemplars. Each request is processed start to
// finish with no shared mutable state; the cache and history sit outside
// the pure core.
type Analyzer struct {
	classifier     domain.Classifier
	catalog        domain.Catalog
	cache          domain.AnalysisCache
	history        domain.AnalysisHistory
	maxConcurrency int
	group          singleflight.Group
}

// NewAnalyzer creates an Analyzer. cache and history may be nil to disable
// the respective concern. maxConcurrency bounds parallel classifier calls
// within one batch.
func NewAnalyzer(classifier domain.Classifier, catalog domain.Catalog, cache domain.AnalysisCache, history domain.AnalysisHistory, maxConcurrency int) *Analyzer {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Analyzer{
		classifier:     classifier,
		catalog:        catalog,
		cache:          cache,
		history:        history,
		maxConcurrency: maxConcurrency,
	}
}

// AnalyzeMovie runs the full analysis for one movie. Concurrent requests for
// the same movie share a single upstream run via singleflight; completed
// analyses are cached so repeated requests skip the classifier entirely.
func (a *Analyzer) AnalyzeMovie(ctx context.Context, movieID int) (*domain.MovieAnalysis, error) {
	if a.cache != nil {
		analysis, ok, err := a.cache.Get(ctx, movieID)
		switch {
		case err != nil:
			metrics.AnalysisCacheOps.WithLabelValues("get", "error").Inc()
			slog.Warn("Analysis cache lookup failed", "error", err, "movie_id", movieID)
		case ok:
			metrics.AnalysisCacheOps.WithLabelValues("get", "hit").Inc()
			return analysis, nil
		default:
			metrics.AnalysisCacheOps.WithLabelValues("get", "miss").Inc()
		}
	}

	result, err, _ := a.group.Do(strconv.Itoa(movieID), func() (any, error) {
		return a.analyzeMovie(ctx, movieID)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.MovieAnalysis), nil
}

func (a *Analyzer) analyzeMovie(ctx context.Context, movieID int) (*domain.MovieAnalysis, error) {
	start := time.Now()

	movie, err := a.catalog.GetMovie(ctx, movieID)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			metrics.AnalysesTotal.WithLabelValues("not_found").Inc()
			return nil, apperrors.NotFoundError("movie not found").WithField("movie_id", movieID)
		}
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		return nil, apperrors.ExternalError("failed to fetch movie details", err).WithField("movie_id", movieID)
	}

	reviews, err := a.catalog.GetReviews(ctx, movieID)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		return nil, apperrors.ExternalError("failed to fetch reviews", err).WithField("movie_id", movieID)
	}

	if len(reviews) == 0 {
		// No-data case, distinct from a genuine all-zero result. Cached like
		// any other outcome so repeated requests skip the catalog lookup.
		metrics.AnalysesTotal.WithLabelValues("no_reviews").Inc()
		slog.Info("No reviews available for analysis", "movie_id", movieID, "title", movie.Title)
		analysis := &domain.MovieAnalysis{
			ID:         uuid.New(),
			Movie:      *movie,
			Stats:      domain.CorpusStats{Overall: domain.OverallNoData},
			AnalyzedAt: time.Now().UTC(),
		}
		a.storeInCache(ctx, analysis)
		return analysis, nil
	}

	verdicts, err := a.classifyAll(ctx, reviews)
	if err != nil {
		metrics.AnalysesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	stats := Summarize(verdicts)
	posIdx, negIdx := ExemplarIndices(verdicts)

	analysis := &domain.MovieAnalysis{
		ID:         uuid.New(),
		Movie:      *movie,
		Stats:      stats,
		AnalyzedAt: time.Now().UTC(),
	}
	if posIdx >= 0 {
		analysis.BestPositive = newExemplar(reviews[posIdx], verdicts[posIdx])
	}
	if negIdx >= 0 {
		analysis.BestNegative = newExemplar(reviews[negIdx], verdicts[negIdx])
	}

	duration := time.Since(start)
	metrics.AnalysesTotal.WithLabelValues("success").Inc()
	metrics.AnalysisDuration.Observe(duration.Seconds())
	slog.Info("Movie analysis complete",
		"movie_id", movieID,
		"title", movie.Title,
		"total_reviews", stats.TotalReviews,
		"positive_pct", stats.PositivePercentage,
		"negative_pct", stats.NegativePercentage,
		"overall", stats.Overall.Decorated(),
		"duration", duration,
	)

	a.storeInCache(ctx, analysis)

	if a.history != nil {
		if err := a.history.Record(ctx, analysis); err != nil {
			// History is best-effort; never fails the request.
			metrics.HistoryWriteErrors.Inc()
			slog.Warn("Failed to record analysis history", "error", err, "movie_id", movieID)
		}
	}

	return analysis, nil
}

// storeInCache caches an analysis best-effort. Cache failures only log;
// they never fail the request.
func (a *Analyzer) storeInCache(ctx context.Context, analysis *domain.MovieAnalysis) {
	if a.cache == nil {
		return
	}
	if err := a.cache.Set(ctx, analysis); err != nil {
		metrics.AnalysisCacheOps.WithLabelValues("set", "error").Inc()
		slog.Warn("Failed to cache analysis", "error", err, "movie_id", analysis.Movie.ID)
	} else {
		metrics.AnalysisCacheOps.WithLabelValues("set", "ok").Inc()
	}
}

// AnalyzeText classifies a single free-text input.
func (a *Analyzer) AnalyzeText(ctx context.Context, text string) (domain.Verdict, error) {
	label, confidence, err := a.classifier.Classify(ctx, text)
	if err != nil {
		return domain.Verdict{}, apperrors.ExternalError("text classification failed", err)
	}
	return domain.Verdict{Text: text, Label: label, Confidence: confidence}, nil
}

// AnalyzeBatch classifies an ad hoc batch of texts and returns the same
// corpus statistics shape as the movie review path.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, texts []string) (domain.CorpusStats, error) {
	reviews := make([]domain.Review, len(texts))
	for i, text := range texts {
		reviews[i] = domain.Review{Content: text}
	}

	verdicts, err := a.classifyAll(ctx, reviews)
	if err != nil {
		return domain.CorpusStats{}, err
	}
	return Summarize(verdicts), nil
}

// classifyAll classifies every review with bounded concurrency, preserving
// input order. One failed classification fails the whole batch: partial
// aggregation over an incomplete batch must never be presented as complete.
func (a *Analyzer) classifyAll(ctx context.Context, reviews []domain.Review) ([]domain.Verdict, error) {
	verdicts := make([]domain.Verdict, len(reviews))
	errs := make([]error, len(reviews))

	sem := make(chan struct{}, a.maxConcurrency)
	var wg sync.WaitGroup
	for i, review := range reviews {
		wg.Add(1)
		go func(i int, text string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			start := time.Now()
			label, confidence, err := a.classifier.Classify(ctx, text)
			metrics.ClassifierRequestDuration.Observe(time.Since(start).Seconds())
			if err != nil {
				metrics.ClassifierRequestsTotal.WithLabelValues("error").Inc()
				errs[i] = err
				return
			}
			metrics.ClassifierRequestsTotal.WithLabelValues("success").Inc()
			verdicts[i] = domain.Verdict{Text: text, Label: label, Confidence: confidence}
		}(i, review.Content)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, apperrors.ExternalError("review classification failed", err)
		}
	}
	return verdicts, nil
}

func newExemplar(review domain.Review, verdict domain.Verdict) *domain.Exemplar {
	return &domain.Exemplar{
		Author:     review.Author,
		Content:    review.Content,
		Rating:     review.Rating,
		Sentiment:  verdict.Label,
		Confidence: verdict.Confidence,
	}
}
