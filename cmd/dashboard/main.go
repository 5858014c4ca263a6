package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/sharma93manvi/youtube-sentiment-analysis/config"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/cache"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/clients"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/logging"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/processing"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/report"
)

func main() {
	config.LoadEnv(os.Getenv("APP_ENV"))
	logging.InitLogger()

	apiKey, err := config.GetAPIKey()
	if err != nil {
		slog.Error("Missing configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	region := config.GetRegion()
	maxComments := config.GetMaxComments()
	ttl := time.Duration(config.GetCacheTTL()) * time.Second

	maxVideos := 10
	if raw := os.Getenv("TRENDING_MAX"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= 20 {
			maxVideos = n
		}
	}

	client := clients.NewYouTubeClient(apiKey)
	analyzer := processing.NewAnalyzer(client, client, cache.FromEnv(), apiKey, ttl)

	ctx := context.Background()

	// Optional single-video mode: VIDEO_URL accepts a bare ID or any
	// standard YouTube URL shape.
	if videoURL := os.Getenv("VIDEO_URL"); videoURL != "" {
		runSingleVideo(ctx, client, analyzer, videoURL, maxComments)
		return
	}

	videos, err := analyzer.TrendingVideos(ctx, region, maxVideos)
	if err != nil {
		slog.Error("Failed to fetch trending videos",
			slog.String("region", region), slog.String("error", err.Error()))
		os.Exit(1)
	}

	sections := make([]report.VideoSection, 0, len(videos))
	for _, video := range videos {
		summary, err := analyzer.AnalyzeVideo(ctx, video.VideoID, maxComments)
		if err != nil {
			slog.Error("Failed to analyze video",
				slog.String("videoId", video.VideoID), slog.String("error", err.Error()))
			os.Exit(1)
		}

		section := report.VideoSection{Video: video, Summary: summary}
		if summary != nil {
			section.Narrative = processing.Narrate(summary)
		}
		sections = append(sections, section)
	}

	markdown := report.Dashboard(region, time.Now(), sections)
	fmt.Print(markdown)

	writeHTMLIfConfigured(markdown)
}

func runSingleVideo(ctx context.Context, client *clients.YouTubeClient, analyzer *processing.Analyzer, videoURL string, maxComments int) {
	videoID, ok := clients.ExtractVideoID(videoURL)
	if !ok {
		slog.Error("Could not extract a video ID", slog.String("input", videoURL))
		os.Exit(1)
	}

	meta, err := client.GetVideoDetails(videoID)
	if err != nil {
		if errors.Is(err, clients.ErrNotFound) {
			fmt.Printf("Video %s not found.\n", videoID)
			return
		}
		slog.Error("Failed to fetch video details",
			slog.String("videoId", videoID), slog.String("error", err.Error()))
		os.Exit(1)
	}

	summary, err := analyzer.AnalyzeVideo(ctx, videoID, maxComments)
	if err != nil {
		slog.Error("Failed to analyze video",
			slog.String("videoId", videoID), slog.String("error", err.Error()))
		os.Exit(1)
	}

	section := report.VideoSection{Video: *meta, Summary: summary}
	if summary != nil {
		section.Narrative = processing.Narrate(summary)
	}

	markdown := report.Dashboard("video "+videoID, time.Now(), []report.VideoSection{section})
	fmt.Print(markdown)

	writeHTMLIfConfigured(markdown)
}

func writeHTMLIfConfigured(markdown string) {
	path := os.Getenv("REPORT_HTML")
	if path == "" {
		return
	}
	if err := os.WriteFile(path, report.RenderHTML(markdown), 0o644); err != nil {
		slog.Error("Failed to write HTML report",
			slog.String("path", path), slog.String("error", err.Error()))
		return
	}
	slog.Info("Wrote HTML report", slog.String("path", path))
}
