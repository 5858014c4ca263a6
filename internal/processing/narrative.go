package processing

import (
	"fmt"

	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/models"
)

const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"

	// Minimum half-to-half shift in mean compound before the trend is
	// called anything other than stable.
	TREND_DIFF_THRESHOLD = 0.05
)

// TrendDirection compares the mean of the first half of the valid series
// values against the second half. Fewer than two valid points is stable by
// default.
func TrendDirection(series models.TimeSeries) string {
	var valid []float64
	for _, v := range series {
		if v != nil {
			valid = append(valid, *v)
		}
	}
	if len(valid) < 2 {
		return TrendStable
	}

	mid := len(valid) / 2
	diff := mean(valid[mid:]) - mean(valid[:mid])
	switch {
	case diff > TREND_DIFF_THRESHOLD:
		return TrendImproving
	case diff < -TREND_DIFF_THRESHOLD:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Narrate produces the 2-3 line overall analysis for a summary: one of nine
// fixed templates picked by sentiment tier (positive / mixed / balanced) and
// trend direction.
func Narrate(summary *models.SentimentSummary) string {
	if summary == nil {
		summary = &models.SentimentSummary{}
	}

	posPct := summary.PositivePct()
	negPct := summary.NegativePct()
	neuPct := summary.NeutralPct()
	direction := TrendDirection(summary.TimeSeries)

	switch {
	case posPct >= 60:
		desc := fmt.Sprintf("predominantly positive feedback (%.0f%% positive comments)", posPct)
		switch direction {
		case TrendImproving:
			return fmt.Sprintf("The video has received %s. Sentiment has been improving over the past 24 hours, with recent comments showing more enthusiasm than earlier ones, indicating growing viewer satisfaction.", desc)
		case TrendDeclining:
			return fmt.Sprintf("The video has received %s. However, sentiment indicates declining sentiment over the past 24 hours, with more recent comments being less positive, suggesting some concerns emerging among viewers.", desc)
		default:
			return fmt.Sprintf("The video has received %s. Sentiment has remained relatively stable over the past 24 hours, showing consistent viewer engagement without significant shifts.", desc)
		}
	case negPct >= 40:
		desc := fmt.Sprintf("mixed sentiment with %.0f%% positive and %.0f%% negative comments", posPct, negPct)
		switch direction {
		case TrendImproving:
			return fmt.Sprintf("The video shows %s. The trend shows improving sentiment over the past 24 hours, with recent comments being more positive than earlier ones, suggesting viewer sentiment is recovering.", desc)
		case TrendDeclining:
			return fmt.Sprintf("The video shows %s. The trend indicates declining sentiment over the past 24 hours, with more recent comments being increasingly critical, suggesting potential concerns among viewers.", desc)
		default:
			return fmt.Sprintf("The video shows %s. Sentiment has remained relatively stable over the past 24 hours, showing consistent viewer engagement without significant shifts.", desc)
		}
	default:
		desc := fmt.Sprintf("a balanced sentiment profile with %.0f%% positive and %.0f%% neutral comments", posPct, neuPct)
		switch direction {
		case TrendImproving:
			return fmt.Sprintf("The video maintains %s. Sentiment has been improving over the past 24 hours, with recent comments showing more positive engagement than earlier ones.", desc)
		case TrendDeclining:
			return fmt.Sprintf("The video maintains %s. However, sentiment indicates declining sentiment over the past 24 hours, with more recent comments showing increased criticism.", desc)
		default:
			return fmt.Sprintf("The video maintains %s. Sentiment has remained relatively stable over the past 24 hours, showing consistent viewer engagement without significant shifts.", desc)
		}
	}
}
