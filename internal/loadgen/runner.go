package loadgen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mkarimi/roadboard/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes the complete award load test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting roadboard award load test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("awards", config.NumAwards),
		logger.Int("players", config.NumPlayers),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Int("topN", config.TopN),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate awards
	awards, expected, err := generateAwards(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("award generation failed: %w", err)
	}

	// Step 3: Submit awards concurrently
	if err := submitAwards(ctx, config, awards, stats); err != nil {
		return fmt.Errorf("award submission failed: %w", err)
	}

	// Step 4: Short settle delay; awards apply synchronously but the
	// last few HTTP responses may still be in flight.
	time.Sleep(ProcessingDelay)

	// Step 5: Get leaderboard
	leaderboard, err := getLeaderboard(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("leaderboard retrieval failed: %w", err)
	}

	// Step 6: Verify results
	if err := verifyResults(ctx, config, expected, leaderboard); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	// Step 7: Save awards to file
	if err := saveAwardsToFile(ctx, config, awards); err != nil {
		logger.Get().Warn(ctx, "failed to save awards to file", logger.Error(err))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	target := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, target)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveAwardsToFile saves the generated awards to a JSON file.
func saveAwardsToFile(ctx context.Context, config *Config, awards []Award) error {
	if len(awards) == 0 {
		return fmt.Errorf("no awards to save")
	}

	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "generated_awards_" + timestamp + ".json"
	}

	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(awards); err != nil {
		return fmt.Errorf("failed to write awards: %w", err)
	}

	logger.Get().Info(ctx, "awards saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final test statistics.
func displayFinalStats(stats *Stats) {
	var successRate, awardsPerSecond float64

	if stats.AwardsSubmitted > 0 {
		successRate = float64(stats.AwardsSuccessful) / float64(stats.AwardsSubmitted) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		awardsPerSecond = float64(stats.AwardsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("awardsGenerated", stats.AwardsGenerated),
		logger.Int("awardsSubmitted", stats.AwardsSubmitted),
		logger.Int("awardsSuccessful", stats.AwardsSuccessful),
		logger.Int("awardsRejected", stats.AwardsRejected),
		logger.Int("awardsFailed", stats.AwardsFailed),
		logger.Int("leaderboardEntries", stats.LeaderboardEntries),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("successRate", successRate),
		logger.Float64("awardsPerSecond", awardsPerSecond))
}
