package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/russross/blackfriday/v2"

	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/models"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/processing"
)

// VideoSection pairs one trending video with its aggregation output. A nil
// Summary renders as "Sentiment not available" rather than an error.
type VideoSection struct {
	Video     models.VideoMeta
	Summary   *models.SentimentSummary
	Narrative string
}

// Dashboard renders the per-region trending report as markdown.
func Dashboard(region string, generatedAt time.Time, sections []VideoSection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# YouTube Trending Sentiment — %s\n\n", region)
	fmt.Fprintf(&b, "Generated %s\n\n", generatedAt.Format(time.RFC1123))

	for i, section := range sections {
		v := section.Video
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, v.Title)
		fmt.Fprintf(&b, "**Channel:** %s  \n", v.Channel)
		fmt.Fprintf(&b, "**Views:** %d · **Likes:** %d · **Comments:** %d\n\n", v.Views, v.Likes, v.Comments)

		if section.Summary == nil {
			b.WriteString("Sentiment not available (no usable comments).\n\n")
			continue
		}

		s := section.Summary
		fmt.Fprintf(&b, "**Average sentiment:** %+.3f · ", s.AvgSentiment)
		fmt.Fprintf(&b, "%.0f%% positive / %.0f%% neutral / %.0f%% negative (%d comments)\n\n",
			s.PositivePct(), s.NeutralPct(), s.NegativePct(), s.Total)
		fmt.Fprintf(&b, "24h trend: %s %s\n\n", processing.TrendDirection(s.TimeSeries), sparkline(s.TimeSeries))

		if section.Narrative != "" {
			fmt.Fprintf(&b, "%s\n\n", section.Narrative)
		}
	}

	return b.String()
}

// ComparisonTable renders a multi-region comparison with its rankings.
func ComparisonTable(cmp *processing.Comparison) string {
	var b strings.Builder

	b.WriteString("# Region Comparison\n\n")
	b.WriteString("| Region | Avg Sentiment | Positive | Neutral | Negative | Comments | Videos |\n")
	b.WriteString("|--------|--------------:|---------:|--------:|---------:|---------:|-------:|\n")
	for _, region := range cmp.Order {
		s := cmp.Summaries[region]
		fmt.Fprintf(&b, "| %s | %+.3f | %.0f%% | %.0f%% | %.0f%% | %d | %d |\n",
			s.Region, s.AvgSentiment, s.PositivePct(), s.NeutralPct(), s.NegativePct(),
			s.Total, s.VideoCount)
	}
	b.WriteString("\n")

	if best, ok := cmp.MostPositive(); ok {
		fmt.Fprintf(&b, "- Most positive: **%s** (%+.3f)\n", best.Region, best.AvgSentiment)
	}
	if worst, ok := cmp.MostNegative(); ok {
		fmt.Fprintf(&b, "- Most negative: **%s** (%+.3f)\n", worst.Region, worst.AvgSentiment)
	}
	if active, ok := cmp.MostActive(); ok {
		fmt.Fprintf(&b, "- Most active: **%s** (%d comments)\n", active.Region, active.Total)
	}

	return b.String()
}

// RenderHTML converts a markdown report to a standalone HTML document.
func RenderHTML(markdown string) []byte {
	body := blackfriday.Run([]byte(markdown))

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"></head>\n<body>\n")
	b.Write(body)
	b.WriteString("</body>\n</html>\n")
	return []byte(b.String())
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// sparkline draws the 24-slot series with block glyphs; empty slots show as
// dots.
func sparkline(series models.TimeSeries) string {
	var out strings.Builder
	for _, v := range series {
		if v == nil {
			out.WriteRune('·')
			continue
		}
		// Compound scores live in [-1,1]; map onto the 8 glyph levels.
		level := int((*v + 1) / 2 * float64(len(sparkLevels)-1))
		if level < 0 {
			level = 0
		}
		if level >= len(sparkLevels) {
			level = len(sparkLevels) - 1
		}
		out.WriteRune(sparkLevels[level])
	}
	return out.String()
}
