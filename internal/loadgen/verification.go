package loadgen

import (
	"context"
	"fmt"
	"log"
)

// verifyResults checks the returned leaderboard against the point totals
// the generator expects each player to have accumulated.
func verifyResults(_ context.Context, config *Config, expected map[string]int, leaderboard []Entry) error {
	log.Println("🔍 Verifying results...")

	if len(leaderboard) == 0 {
		return fmt.Errorf("empty leaderboard")
	}

	// The leaderboard must be sorted by points, highest first.
	for i := 1; i < len(leaderboard); i++ {
		if leaderboard[i].UserPoints > leaderboard[i-1].UserPoints {
			return fmt.Errorf("leaderboard not properly sorted: entry %d has more points than entry %d",
				i, i-1)
		}
	}
	log.Println("✅ Leaderboard ordering verified")

	// Every returned player the generator knows about must show the exact
	// accumulated total. A mismatch means a lost or double-counted award.
	mismatches := 0
	for _, entry := range leaderboard {
		want, ok := expected[entry.DisplayName]
		if !ok {
			continue // pre-existing player, not ours
		}
		if entry.UserPoints != want {
			mismatches++
			log.Printf("⚠️  Total mismatch for %s: leaderboard has %d, expected %d",
				entry.DisplayName, entry.UserPoints, want)
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("%d players have mismatched totals", mismatches)
	}
	log.Println("✅ Point totals verified")

	displayTopPlayers(leaderboard, config.Verbose)

	log.Println("✅ Result verification completed")
	return nil
}

// displayTopPlayers shows the top players from the leaderboard.
func displayTopPlayers(leaderboard []Entry, verbose bool) {
	topN := 10
	if len(leaderboard) < topN {
		topN = len(leaderboard)
	}

	log.Printf("🏆 Top %d players:", topN)
	for i := 0; i < topN; i++ {
		entry := leaderboard[i]
		log.Printf("   %d. %s - Points: %d", i+1, entry.DisplayName, entry.UserPoints)
	}

	if verbose && len(leaderboard) > 0 {
		sum := 0
		for _, entry := range leaderboard {
			sum += entry.UserPoints
		}
		log.Printf(`📊 Point statistics:
   Average: %.1f
   Maximum: %d
   Minimum: %d
`, float64(sum)/float64(len(leaderboard)), leaderboard[0].UserPoints, leaderboard[len(leaderboard)-1].UserPoints)
	}
}
