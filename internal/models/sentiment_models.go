package models

const (
	LabelPositive = "positive"
	LabelNeutral  = "neutral"
	LabelNegative = "negative"
)

// SentimentScore is the 4-field polarity output of the lexicon scorer plus
// the tri-state label derived from Compound.
type SentimentScore struct {
	Compound float64 `json:"compound"`
	Positive float64 `json:"pos"`
	Neutral  float64 `json:"neu"`
	Negative float64 `json:"neg"`
	Label    string  `json:"label"`
}

type ScoredComment struct {
	Comment
	Score SentimentScore `json:"score"`
}

// TimeSeries holds exactly 24 hourly sentiment averages in chronological
// order; nil marks an hour with no comments.
type TimeSeries []*float64

const TimeSeriesLen = 24

// SentimentSummary aggregates one video's scored comments. An absent summary
// (zero comments) is a nil *SentimentSummary, never a zero-filled value.
// Invariant: Positive+Neutral+Negative == Total.
type SentimentSummary struct {
	AvgSentiment float64    `json:"avg_sentiment"`
	Positive     int        `json:"positive"`
	Neutral      int        `json:"neutral"`
	Negative     int        `json:"negative"`
	Total        int        `json:"total"`
	TimeSeries   TimeSeries `json:"time_series"`
}

// RegionSummary rolls up the surviving per-video summaries of one region's
// trending set: summed counts, mean of the per-video averages, and the
// number of videos that contributed.
type RegionSummary struct {
	Region       string  `json:"region"`
	AvgSentiment float64 `json:"avg_sentiment"`
	Positive     int     `json:"positive"`
	Neutral      int     `json:"neutral"`
	Negative     int     `json:"negative"`
	Total        int     `json:"total"`
	VideoCount   int     `json:"video_count"`
}

// PositivePct returns the positive share of Total as a percentage.
func (s *SentimentSummary) PositivePct() float64 { return pct(s.Positive, s.Total) }

// NegativePct returns the negative share of Total as a percentage.
func (s *SentimentSummary) NegativePct() float64 { return pct(s.Negative, s.Total) }

// NeutralPct returns the neutral share of Total as a percentage.
func (s *SentimentSummary) NeutralPct() float64 { return pct(s.Neutral, s.Total) }

func (r *RegionSummary) PositivePct() float64 { return pct(r.Positive, r.Total) }
func (r *RegionSummary) NegativePct() float64 { return pct(r.Negative, r.Total) }
func (r *RegionSummary) NeutralPct() float64  { return pct(r.Neutral, r.Total) }

func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
