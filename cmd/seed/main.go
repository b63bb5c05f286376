// Command seed posts synthetic check-in entries to a running journal
// service, giving the analytics endpoints a realistic history to work
// against.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

// Default configuration constants.
const (
	defaultDays    = 30
	defaultPerDay  = 3
	defaultTimeout = 10 * time.Second
)

// checkin is the wire shape accepted by POST /entries.
type checkin struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	Valence   float64  `json:"valence"`
	Energy    float64  `json:"energy"`
	Focus     float64  `json:"focus"`
	Stress    float64  `json:"stress"`
	Tags      []string `json:"tags,omitempty"`

	DeepworkMinutes   *float64 `json:"deepwork_minutes,omitempty"`
	TasksCompleted    *float64 `json:"tasks_completed,omitempty"`
	SleepHours        *float64 `json:"sleep_hours,omitempty"`
	SocialTouchpoints *float64 `json:"social_touchpoints,omitempty"`

	RecoveryAction bool `json:"recovery_action"`
}

var tagPool = [][]string{
	{"work", "deepwork"},
	{"exercise", "outdoors"},
	{"social", "friends"},
	{"family"},
	{"reading"},
	{"gaming"},
	{"meditation"},
	nil,
}

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the service")
		days    = flag.Int("days", defaultDays, "Number of past days to cover")
		perDay  = flag.Int("per-day", defaultPerDay, "Check-ins per day")
		seed    = flag.Int64("seed", 0, "Random seed (0 uses the current time)")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	client := &http.Client{Timeout: *timeout}
	ctx := context.Background()

	var sent, failed int
	start := time.Now().AddDate(0, 0, -*days)
	for d := 0; d < *days; d++ {
		day := start.AddDate(0, 0, d)
		for i := 0; i < *perDay; i++ {
			entry := randomCheckin(rng, day, i, *perDay)
			if err := post(ctx, client, *baseURL+"/entries", entry); err != nil {
				failed++
				fmt.Fprintf(os.Stderr, "post %s: %v\n", entry.ID, err)
				continue
			}
			sent++
		}
	}

	fmt.Printf("seeded %d check-ins (%d failed) against %s with seed %d\n", sent, failed, *baseURL, *seed)
}

// randomCheckin spreads the day's entries between 07:00 and 23:00 and draws
// each rating from a band that loosely tracks the hour, so mornings and
// evenings end up with distinguishable baselines.
func randomCheckin(rng *rand.Rand, day time.Time, slot, perDay int) checkin {
	hour := 7 + slot*(16/max(perDay, 1)) + rng.Intn(3)
	if hour > 23 {
		hour = 23
	}
	ts := time.Date(day.Year(), day.Month(), day.Day(), hour, rng.Intn(60), 0, 0, time.UTC)

	energyBase := 3.5
	if hour >= 20 {
		energyBase = 2.0
	}

	c := checkin{
		ID:        uuid.NewString(),
		Timestamp: ts.Format(time.RFC3339),
		Valence:   rating(rng, 3.0),
		Energy:    rating(rng, energyBase),
		Focus:     rating(rng, 3.0),
		Stress:    rating(rng, 2.0),
		Tags:      tagPool[rng.Intn(len(tagPool))],
	}

	if rng.Float64() < 0.6 {
		c.DeepworkMinutes = ptr(float64(rng.Intn(240)))
	}
	if rng.Float64() < 0.7 {
		c.TasksCompleted = ptr(float64(rng.Intn(12)))
	}
	if hour < 12 {
		c.SleepHours = ptr(5.5 + rng.Float64()*3.5)
	}
	if rng.Float64() < 0.5 {
		c.SocialTouchpoints = ptr(float64(rng.Intn(6)))
	}
	c.RecoveryAction = rng.Float64() < 0.3

	return c
}

// rating draws around base with one unit of spread, clamped to [0,5].
func rating(rng *rand.Rand, base float64) float64 {
	v := base + rng.NormFloat64()
	if v < 0 {
		v = 0
	}
	if v > 5 {
		v = 5
	}
	return float64(int(v*10)) / 10
}

func post(ctx context.Context, client *http.Client, url string, entry checkin) error {
	body, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}

func ptr(v float64) *float64 { return &v }
