package sentiment

import (
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"

	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/models"
)

// Label thresholds on the compound score. Both boundaries are inclusive.
const (
	THRESH_POS = 0.05
	THRESH_NEG = -0.05
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

var (
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
	urlPattern  = regexp.MustCompile(`https?://\S+|www\.\S+`)
	linkPattern = regexp.MustCompile(`\[(.*?)\]\(https?:\/\/[^\s\)]+\)`)
)

// CleanText strips the markup YouTube embeds in textDisplay (HTML tags,
// entities, raw URLs) so only the words reach the lexicon.
func CleanText(input string) string {
	input = linkPattern.ReplaceAllString(input, "$1")
	input = tagPattern.ReplaceAllString(input, " ")
	input = html.UnescapeString(input)
	input = urlPattern.ReplaceAllString(input, "")

	return strings.Join(strings.Fields(input), " ")
}

// LabelFor maps a compound score to its tri-state label.
func LabelFor(compound float64) string {
	switch {
	case compound >= THRESH_POS:
		return models.LabelPositive
	case compound <= THRESH_NEG:
		return models.LabelNegative
	default:
		return models.LabelNeutral
	}
}

// ScoreText runs the VADER analyzer over the cleaned text and attaches the
// threshold label.
func ScoreText(text string) models.SentimentScore {
	s := analyzer.PolarityScores(CleanText(text))

	return models.SentimentScore{
		Compound: s.Compound,
		Positive: s.Positive,
		Neutral:  s.Neutral,
		Negative: s.Negative,
		Label:    LabelFor(s.Compound),
	}
}
