package processing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/models"
)

// Comparison holds per-region rollups keyed by region code. Order preserves
// the input sequence so ranking ties resolve by encounter order.
type Comparison struct {
	Order     []string
	Summaries map[string]models.RegionSummary
}

// Comparator re-runs the per-video analysis across several regions and
// combines the surviving summaries region by region.
type Comparator struct {
	Analyzer *Analyzer
}

func NewComparator(analyzer *Analyzer) *Comparator {
	return &Comparator{Analyzer: analyzer}
}

// Compare analyzes every region's trending set. Videos whose aggregation is
// absent are skipped; regions with zero usable videos are omitted from the
// result entirely. A fetch failure aborts the comparison with the offending
// region in the error.
func (c *Comparator) Compare(ctx context.Context, regions []string, videosPerRegion, commentsPerVideo int) (*Comparison, error) {
	result := &Comparison{
		Summaries: make(map[string]models.RegionSummary),
	}

	for _, region := range regions {
		slog.Info("[Comparator] Analyzing region", slog.String("region", region))

		videos, err := c.Analyzer.TrendingVideos(ctx, region, videosPerRegion)
		if err != nil {
			return nil, fmt.Errorf("region %s: %w", region, err)
		}

		var included []*models.SentimentSummary
		for _, video := range videos {
			summary, err := c.Analyzer.AnalyzeVideo(ctx, video.VideoID, commentsPerVideo)
			if err != nil {
				return nil, fmt.Errorf("region %s: %w", region, err)
			}
			if summary == nil {
				continue
			}
			included = append(included, summary)
		}

		if len(included) == 0 {
			slog.Warn("[Comparator] No usable videos for region, omitting",
				slog.String("region", region))
			continue
		}

		rs := models.RegionSummary{
			Region:     region,
			VideoCount: len(included),
		}
		var avgSum float64
		for _, s := range included {
			rs.Positive += s.Positive
			rs.Neutral += s.Neutral
			rs.Negative += s.Negative
			rs.Total += s.Total
			avgSum += s.AvgSentiment
		}
		rs.AvgSentiment = avgSum / float64(len(included))

		result.Order = append(result.Order, region)
		result.Summaries[region] = rs
	}

	return result, nil
}

// MostPositive returns the region with the highest average sentiment; ties
// keep the earlier region in the input order.
func (c *Comparison) MostPositive() (models.RegionSummary, bool) {
	return c.pick(func(best, candidate models.RegionSummary) bool {
		return candidate.AvgSentiment > best.AvgSentiment
	})
}

// MostNegative returns the region with the lowest average sentiment.
func (c *Comparison) MostNegative() (models.RegionSummary, bool) {
	return c.pick(func(best, candidate models.RegionSummary) bool {
		return candidate.AvgSentiment < best.AvgSentiment
	})
}

// MostActive returns the region with the most analyzed comments.
func (c *Comparison) MostActive() (models.RegionSummary, bool) {
	return c.pick(func(best, candidate models.RegionSummary) bool {
		return candidate.Total > best.Total
	})
}

func (c *Comparison) pick(better func(best, candidate models.RegionSummary) bool) (models.RegionSummary, bool) {
	if len(c.Order) == 0 {
		return models.RegionSummary{}, false
	}

	best := c.Summaries[c.Order[0]]
	for _, region := range c.Order[1:] {
		if candidate := c.Summaries[region]; better(best, candidate) {
			best = candidate
		}
	}
	return best, true
}
