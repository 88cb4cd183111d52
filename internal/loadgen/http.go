package loadgen

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout.
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout. Redirects are not
// followed so the 303 from a successful award stays visible.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		timeout: timeout,
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// PostForm performs a POST request with a URL-encoded form body.
func (c *HTTPClient) PostForm(ctx context.Context, target string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// unmarshalJSON unmarshals JSON to a struct.
func unmarshalJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// submitAwards submits awards concurrently using a worker pool.
func submitAwards(ctx context.Context, config *Config, awards []Award, stats *Stats) error {
	log.Printf("📤 Submitting %d awards with %d workers...", len(awards), config.Workers)

	client := newHTTPClient(config.Timeout)
	target := config.BaseURL + "/leaderboard/add"

	var (
		successful int64
		rejected   int64
		failed     int64
		submitted  int64
	)

	var lastReport time.Time
	reportInterval := 1 * time.Second

	awardChan := make(chan Award, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for award := range awardChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := submitSingleAward(ctx, client, target, award)

					atomic.AddInt64(&submitted, 1)
					switch result {
					case "success":
						atomic.AddInt64(&successful, 1)
					case "rejected":
						atomic.AddInt64(&rejected, 1)
					case "failed":
						atomic.AddInt64(&failed, 1)
					}

					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&submitted)
						succ := atomic.LoadInt64(&successful)
						rej := atomic.LoadInt64(&rejected)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("📊 Progress: %d/%d submitted (success: %d, rejected: %d, failed: %d)",
								total, len(awards), succ, rej, fail)
						} else {
							fmt.Printf("\r📤 Submitted: %d/%d (success: %d, rejected: %d, failed: %d)",
								total, len(awards), succ, rej, fail)
						}
					}
				}
			}
		}()
	}

	go func() {
		defer close(awardChan)
		for _, award := range awards {
			select {
			case <-ctx.Done():
				return
			case awardChan <- award:
			}
		}
	}()

	wg.Wait()

	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	stats.AwardsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.AwardsSuccessful = int(atomic.LoadInt64(&successful))
	stats.AwardsRejected = int(atomic.LoadInt64(&rejected))
	stats.AwardsFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Award submission completed:
   Successful: %d
   Rejected: %d
   Failed: %d
`, stats.AwardsSuccessful, stats.AwardsRejected, stats.AwardsFailed)

	return nil
}

// submitSingleAward submits one award and classifies the outcome.
func submitSingleAward(ctx context.Context, client *HTTPClient, target string, award Award) string {
	form := url.Values{
		"DisplayName": {award.DisplayName},
		"Points":      {strconv.Itoa(award.Points)},
	}

	resp, err := client.PostForm(ctx, target, form)
	if err != nil {
		return "failed"
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case StatusSeeOther:
		return "success"
	case StatusRejected:
		return "rejected"
	default:
		return "failed"
	}
}

// getLeaderboard retrieves the top N leaderboard entries.
func getLeaderboard(ctx context.Context, config *Config, stats *Stats) ([]Entry, error) {
	log.Printf("🥇 Getting top %d leaderboard entries...", config.TopN)

	client := newHTTPClient(config.Timeout)
	target := fmt.Sprintf("%s/leaderboard?top=%d", config.BaseURL, config.TopN)

	resp, err := client.Get(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode != StatusOK {
		body, _ := readResponseBody(resp)
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var leaderboard []Entry
	if err := unmarshalJSON(body, &leaderboard); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	stats.LeaderboardEntries = len(leaderboard)
	log.Printf("✅ Retrieved %d leaderboard entries", len(leaderboard))

	return leaderboard, nil
}
