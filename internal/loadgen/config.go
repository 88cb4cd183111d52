package loadgen

import "time"

// Config holds configuration for the award load test.
type Config struct {
	BaseURL    string        // Base URL of the service
	NumAwards  int           // Number of awards to generate
	NumPlayers int           // Size of the player pool awards are spread over
	TopN       int           // Number of top entries to fetch
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	OutputFile string        // Output file for generated awards
	LogFile    string        // Log file for test output
	Verbose    bool          // Enable verbose logging
}

// Award represents one point award to be submitted.
type Award struct {
	DisplayName string `json:"display_name"`
	Points      int    `json:"points"`
}

// Entry represents a leaderboard entry as returned by the service.
type Entry struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	UserPoints  int    `json:"user_points"`
}

// Stats holds test statistics.
type Stats struct {
	AwardsGenerated    int
	AwardsSubmitted    int
	AwardsSuccessful   int
	AwardsRejected     int
	AwardsFailed       int
	LeaderboardEntries int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
