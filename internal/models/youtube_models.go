package models

// VideoMeta is the internal shape of one trending or looked-up video.
// Missing stats default to 0 and missing strings stay empty; a partially
// filled record is still a valid record.
type VideoMeta struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Channel     string `json:"channel"`
	PublishedAt string `json:"published_at"`
	ThumbURL    string `json:"thumb_url"`
	Views       int64  `json:"views"`
	Likes       int64  `json:"likes"`
	Comments    int64  `json:"comments"`
}

// Comment is a single top-level comment as handed to the aggregator.
// PublishedAt keeps the source RFC3339 string; whether it parses is decided
// at aggregation time, not at fetch time.
type Comment struct {
	Text        string `json:"text"`
	PublishedAt string `json:"published_at"`
}
