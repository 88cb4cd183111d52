package loadgen

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"

	"github.com/mkarimi/roadboard/pkg/logger"
)

// Constants for random number generation.
const (
	pointsBucketDivisor = 8
	shortIDLength       = 8
)

// Constants for point generation ranges.
const (
	smallAwardMin    = 1
	smallAwardRange  = 5
	mediumAwardMin   = 5
	mediumAwardRange = 15
	largeAwardMin    = 20
	largeAwardRange  = 30
	jackpotMin       = 50
	jackpotRange     = 50
)

// Constants for award size cases.
const (
	caseSmallAward  = 0
	caseMediumAward = 1
	caseLargeAward  = 2
	caseJackpot     = 3
)

// randomInt returns a uniform random int in [0, n) using crypto/rand.
func randomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// generatePlayers creates a pool of unique display names.
func generatePlayers(n int) []string {
	players := make([]string, n)
	for i := range players {
		players[i] = "player-" + uuid.New().String()[:shortIDLength]
	}
	return players
}

// generateAwards creates the configured number of awards spread over the
// player pool and returns both the awards and the expected point total per
// player for later verification.
func generateAwards(ctx context.Context, config *Config, stats *Stats) ([]Award, map[string]int, error) {
	logger.Get().Info(ctx, "generating awards",
		logger.Int("numAwards", config.NumAwards),
		logger.Int("numPlayers", config.NumPlayers))

	players := generatePlayers(config.NumPlayers)

	awards := make([]Award, config.NumAwards)
	expected := make(map[string]int, config.NumPlayers)
	for i := range awards {
		name := players[randomInt(len(players))]
		points := generateVariedPoints()
		awards[i] = Award{DisplayName: name, Points: points}
		expected[name] += points
	}

	stats.AwardsGenerated = len(awards)
	logger.Get().Info(ctx, "generated awards successfully", logger.Int("count", len(awards)))

	return awards, expected, nil
}

// generateVariedPoints creates a point amount with a varied distribution:
// mostly small awards with the occasional jackpot.
func generateVariedPoints() int {
	switch randomInt(pointsBucketDivisor) {
	case caseSmallAward, caseSmallAward + 4:
		return smallAwardMin + randomInt(smallAwardRange)
	case caseMediumAward, caseMediumAward + 4:
		return mediumAwardMin + randomInt(mediumAwardRange)
	case caseLargeAward, caseLargeAward + 4:
		return largeAwardMin + randomInt(largeAwardRange)
	case caseJackpot:
		return jackpotMin + randomInt(jackpotRange)
	default:
		return smallAwardMin + randomInt(smallAwardRange)
	}
}
