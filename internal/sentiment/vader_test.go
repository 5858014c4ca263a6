package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/models"
)

func TestLabelForThresholds(t *testing.T) {
	tests := []struct {
		name     string
		compound float64
		want     string
	}{
		{"clearly positive", 0.8, models.LabelPositive},
		{"positive boundary is inclusive", 0.05, models.LabelPositive},
		{"just under positive boundary", 0.049, models.LabelNeutral},
		{"zero", 0, models.LabelNeutral},
		{"just above negative boundary", -0.049, models.LabelNeutral},
		{"negative boundary is inclusive", -0.05, models.LabelNegative},
		{"clearly negative", -0.8, models.LabelNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LabelFor(tt.compound))
		})
	}
}

func TestScoreTextLabelMatchesCompound(t *testing.T) {
	for _, text := range []string{
		"I absolutely love this, it is wonderful!",
		"This is the worst video I have ever seen.",
		"The video is ten minutes long.",
		"",
	} {
		score := ScoreText(text)
		assert.Equal(t, LabelFor(score.Compound), score.Label, "text: %q", text)
		assert.GreaterOrEqual(t, score.Compound, -1.0)
		assert.LessOrEqual(t, score.Compound, 1.0)
	}
}

func TestScoreTextPolarity(t *testing.T) {
	positive := ScoreText("I love this! Absolutely amazing and wonderful.")
	assert.Equal(t, models.LabelPositive, positive.Label)

	negative := ScoreText("Horrible. I hate this terrible garbage.")
	assert.Equal(t, models.LabelNegative, negative.Label)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			"html tags and entities",
			"Great video!<br>Can&#39;t wait for more",
			"Great video! Can't wait for more",
		},
		{
			"anchor tag with url",
			`Check <a href="https://example.com">this</a> out`,
			"Check this out",
		},
		{
			"bare url dropped",
			"look at https://youtu.be/dQw4w9WgXcQ now",
			"look at now",
		},
		{
			"markdown link keeps text",
			"see [the docs](https://example.com/docs) here",
			"see the docs here",
		},
		{
			"whitespace collapsed",
			"  so   much \n spacing ",
			"so much spacing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}
