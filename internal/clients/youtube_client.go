package clients

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/models"
)

const (
	YOUTUBE_API_BASE = "https://www.googleapis.com/youtube/v3"
	MAX_RETRIES      = 3
	BACKOFF_UNIT     = 1 * time.Second
	PAGE_DELAY       = 100 * time.Millisecond
	MAX_PAGE_SIZE    = 100
)

var (
	youtubeInstance *YouTubeClient
	youtubeOnce     sync.Once
)

type YouTubeClient struct {
	Client *http.Client
	APIKey string

	// Overridable in tests; zero values fall back to the constants above.
	baseURL     string
	backoffUnit time.Duration
	pageDelay   time.Duration
	sleep       func(time.Duration)
}

func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		Client:      &http.Client{Timeout: 30 * time.Second},
		APIKey:      apiKey,
		baseURL:     YOUTUBE_API_BASE,
		backoffUnit: BACKOFF_UNIT,
		pageDelay:   PAGE_DELAY,
		sleep:       time.Sleep,
	}
}

func GetYouTubeClient() *YouTubeClient {
	youtubeOnce.Do(func() {
		youtubeInstance = NewYouTubeClient(os.Getenv("YOUTUBE_API_KEY"))
	})
	return youtubeInstance
}

// Raw API shapes. These stay out of internal/models: everything crossing
// this boundary is converted to the internal model with per-field defaults.

type videoListResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		ChannelTitle string `json:"channelTitle"`
		PublishedAt  string `json:"publishedAt"`
		Thumbnails   struct {
			Default struct {
				URL string `json:"url"`
			} `json:"default"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	Statistics struct {
		ViewCount    string `json:"viewCount"`
		LikeCount    string `json:"likeCount"`
		CommentCount string `json:"commentCount"`
	} `json:"statistics"`
}

type commentThreadsResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			TopLevelComment struct {
				Snippet struct {
					TextDisplay string `json:"textDisplay"`
					PublishedAt string `json:"publishedAt"`
				} `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
}

type apiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Errors  []struct {
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

func toVideoMeta(item videoItem) models.VideoMeta {
	return models.VideoMeta{
		VideoID:     item.ID,
		Title:       item.Snippet.Title,
		Channel:     item.Snippet.ChannelTitle,
		PublishedAt: item.Snippet.PublishedAt,
		ThumbURL:    item.Snippet.Thumbnails.Default.URL,
		Views:       statToInt64(item.Statistics.ViewCount),
		Likes:       statToInt64(item.Statistics.LikeCount),
		Comments:    statToInt64(item.Statistics.CommentCount),
	}
}

// statToInt64 parses the string-typed counters the API returns; anything
// missing or malformed counts as 0 rather than failing the record.
func statToInt64(raw string) int64 {
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// doGET fetches one API page, retrying 429/500-504 responses with doubling
// backoff. Any other failure is returned immediately.
func (yt *YouTubeClient) doGET(endpoint string, query url.Values) ([]byte, error) {
	query.Set("key", yt.APIKey)
	reqURL := yt.baseURL + endpoint + "?" + query.Encode()

	var lastErr error
	for attempt := 0; attempt <= MAX_RETRIES; attempt++ {
		req, err := http.NewRequest(http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, err
		}

		res, err := yt.Client.Do(req)
		if err != nil {
			// Transport-level failures get the same retry treatment as 5xx.
			lastErr = err
		} else {
			body, readErr := io.ReadAll(res.Body)
			res.Body.Close()
			if readErr != nil {
				return nil, readErr
			}

			switch {
			case res.StatusCode == http.StatusOK:
				return body, nil
			case isRetryableStatus(res.StatusCode):
				lastErr = &RetryableError{StatusCode: res.StatusCode}
				slog.Warn("[YouTubeClient] Transient error, retrying...",
					slog.Int("statusCode", res.StatusCode),
					slog.Int("attempt", attempt+1))
			default:
				return nil, classifyFatal(res.StatusCode, body)
			}
		}

		if attempt < MAX_RETRIES {
			backoff := yt.backoffUnit << attempt
			yt.sleep(backoff)
		}
	}

	slog.Error("[YouTubeClient] Failed after max retries", slog.String("url", endpoint))
	return nil, lastErr
}

// classifyFatal maps a non-retryable response onto the error taxonomy,
// pulling the API's reason string out of the error payload when present.
func classifyFatal(status int, body []byte) error {
	var apiErr apiErrorResponse
	reason := ""
	if err := json.Unmarshal(body, &apiErr); err == nil && len(apiErr.Error.Errors) > 0 {
		reason = apiErr.Error.Errors[0].Reason
	}

	if status == http.StatusForbidden && reason == "commentsDisabled" {
		return ErrCommentsDisabled
	}
	return &FatalError{StatusCode: status, Reason: reason}
}

// FetchTrending returns the top trending videos for a region in a single
// call. The API caps maxResults at 50; this system never asks for more
// than 20.
func (yt *YouTubeClient) FetchTrending(region string, maxResults int) ([]models.VideoMeta, error) {
	query := url.Values{}
	query.Set("part", "snippet,statistics")
	query.Set("chart", "mostPopular")
	query.Set("regionCode", region)
	query.Set("maxResults", strconv.Itoa(maxResults))

	body, err := yt.doGET("/videos", query)
	if err != nil {
		return nil, err
	}

	var response videoListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		slog.Error("[YouTubeClient] Failed to parse trending response", slog.String("error", err.Error()))
		return nil, &FatalError{Reason: "malformed trending payload"}
	}

	videos := make([]models.VideoMeta, 0, len(response.Items))
	for _, item := range response.Items {
		videos = append(videos, toVideoMeta(item))
	}

	slog.Info("[YouTubeClient] Fetched trending videos",
		slog.String("region", region), slog.Int("count", len(videos)))
	return videos, nil
}

// GetVideoDetails looks up a single video. A well-formed response with no
// items means the video does not exist: ErrNotFound, distinct from any
// transport failure.
func (yt *YouTubeClient) GetVideoDetails(videoID string) (*models.VideoMeta, error) {
	query := url.Values{}
	query.Set("part", "snippet,statistics")
	query.Set("id", videoID)

	body, err := yt.doGET("/videos", query)
	if err != nil {
		return nil, err
	}

	var response videoListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, &FatalError{Reason: "malformed video payload"}
	}
	if len(response.Items) == 0 {
		return nil, ErrNotFound
	}

	meta := toVideoMeta(response.Items[0])
	return &meta, nil
}

// FetchComments pages through a video's top-level comments until maxResults
// items are collected or the source runs out of pages. Items missing a text
// body or a publish timestamp are dropped before return.
func (yt *YouTubeClient) FetchComments(videoID string, maxResults int, order string) ([]models.Comment, error) {
	perPage := maxResults
	if perPage > MAX_PAGE_SIZE {
		perPage = MAX_PAGE_SIZE
	}

	var raw []models.Comment
	pageToken := ""

	for len(raw) < maxResults {
		query := url.Values{}
		query.Set("part", "snippet")
		query.Set("videoId", videoID)
		query.Set("maxResults", strconv.Itoa(perPage))
		query.Set("order", order)
		if pageToken != "" {
			query.Set("pageToken", pageToken)
		}

		body, err := yt.doGET("/commentThreads", query)
		if err != nil {
			return nil, err
		}

		var response commentThreadsResponse
		if err := json.Unmarshal(body, &response); err != nil {
			slog.Error("[YouTubeClient] Failed to parse comments response", slog.String("error", err.Error()))
			return nil, &FatalError{Reason: "malformed comments payload"}
		}

		for _, item := range response.Items {
			snippet := item.Snippet.TopLevelComment.Snippet
			raw = append(raw, models.Comment{
				Text:        snippet.TextDisplay,
				PublishedAt: snippet.PublishedAt,
			})
		}

		if len(raw) >= maxResults {
			raw = raw[:maxResults]
			break
		}

		pageToken = response.NextPageToken
		if pageToken == "" {
			break
		}

		// Small delay between pages to bound the request rate.
		yt.sleep(yt.pageDelay)
	}

	comments := make([]models.Comment, 0, len(raw))
	for _, c := range raw {
		if c.Text == "" || c.PublishedAt == "" {
			continue
		}
		comments = append(comments, c)
	}

	slog.Info("[YouTubeClient] Fetched comments",
		slog.String("videoId", videoID), slog.Int("count", len(comments)))
	return comments, nil
}
