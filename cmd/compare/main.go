package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/sharma93manvi/youtube-sentiment-analysis/config"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/cache"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/clients"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/logging"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/processing"
	"github.com/sharma93manvi/youtube-sentiment-analysis/internal/report"
)

const MAX_COMPARE_REGIONS = 5

func main() {
	config.LoadEnv(os.Getenv("APP_ENV"))
	logging.InitLogger()

	apiKey, err := config.GetAPIKey()
	if err != nil {
		slog.Error("Missing configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	regions := compareRegions()
	maxComments := config.GetMaxComments()
	ttl := time.Duration(config.GetCacheTTL()) * time.Second

	client := clients.NewYouTubeClient(apiKey)
	analyzer := processing.NewAnalyzer(client, client, cache.FromEnv(), apiKey, ttl)
	comparator := processing.NewComparator(analyzer)

	comparison, err := comparator.Compare(context.Background(), regions, 10, maxComments)
	if err != nil {
		slog.Error("Region comparison failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if len(comparison.Order) == 0 {
		fmt.Println("No region produced any usable videos.")
		return
	}

	fmt.Print(report.ComparisonTable(comparison))
}

// compareRegions reads COMPARE_REGIONS as a comma-separated list of region
// codes, each sanitized like the REGION default; capped at 5 regions.
func compareRegions() []string {
	raw := os.Getenv("COMPARE_REGIONS")
	if raw == "" {
		return []string{"CA", "US"}
	}

	var regions []string
	for _, part := range strings.Split(raw, ",") {
		code := strings.ToUpper(strings.TrimSpace(part))
		if len(code) == 2 {
			regions = append(regions, code)
		}
		if len(regions) == MAX_COMPARE_REGIONS {
			break
		}
	}
	if len(regions) == 0 {
		return []string{"CA", "US"}
	}
	return regions
}
