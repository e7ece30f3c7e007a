package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
)

// raceStats aggregates the outcome of every request fired during a race
type raceStats struct {
	mu            sync.Mutex
	responseTimes []time.Duration
	statusCounts  map[string]int
	errorCounts   map[string]int
}

func newRaceStats() *raceStats {
	return &raceStats{statusCounts: make(map[string]int), errorCounts: make(map[string]int)}
}

func (s *raceStats) record(kind string, status int, elapsed time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responseTimes = append(s.responseTimes, elapsed)
	if err != nil {
		s.errorCounts[err.Error()]++
		return
	}
	s.statusCounts[fmt.Sprintf("%s %d", kind, status)]++
}

// percentile expects sorted input
func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	idx := len(sorted) * p / 100
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func (s *raceStats) print(w io.Writer, total time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	times := append([]time.Duration(nil), s.responseTimes...)
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	fmt.Fprintf(w, "Requests:      %d in %v\n", len(times), total.Round(time.Millisecond))
	if len(times) > 0 {
		fmt.Fprintf(w, "Min/Max:       %v / %v\n", times[0], times[len(times)-1])
		fmt.Fprintf(w, "p50/p90/p99:   %v / %v / %v\n", percentile(times, 50), percentile(times, 90), percentile(times, 99))
	}

	keys := make([]string, 0, len(s.statusCounts))
	for k := range s.statusCounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-24s %d\n", k, s.statusCounts[k])
	}
	for msg, n := range s.errorCounts {
		fmt.Fprintf(w, "  error: %s (%d)\n", msg, n)
	}
}

type apiClient struct {
	http    *http.Client
	baseURL string
	bearer  string
}

func (c *apiClient) do(ctx context.Context, method, path, body string, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(c.baseURL, "/")+path, strings.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.bearer)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < http.StatusBadRequest {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func (c *apiClient) balance(ctx context.Context) (int64, error) {
	var out struct {
		Credits int64 `json:"credits"`
	}
	status, err := c.do(ctx, http.MethodGet, "/api/credits", "", &out)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("balance request answered %d", status)
	}
	return out.Credits, nil
}

func raceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "race <provider> <external-id>",
		Short: "Fire concurrent webhooks and status polls at one top-up and check it settled once",
		Long: `race reads the caller's balance, then fires --webhooks copies of a settled-payment
webhook and --polls status checks for the same top-up at once. When it finishes
it reads the balance again and fails unless it grew by exactly --expect credits.`,
		Args: cobra.ExactArgs(2),
		RunE: runRace,
	}

	cmd.Flags().String("bearer", "", "Bearer token of the top-up owner (see ledgerctl token)")
	cmd.Flags().String("token", envOr("CL_WEBHOOK_TOKEN", ""), "Webhook secret configured for the provider")
	cmd.Flags().Int64("amount", 0, "Paid amount in rupiah")
	cmd.Flags().Int64("expect", 0, "Credits the package grants")
	cmd.Flags().Int("webhooks", 20, "Concurrent webhook deliveries")
	cmd.Flags().Int("polls", 20, "Concurrent status polls")
	cmd.Flags().Duration("jitter", 0, "Maximum random delay before each request")
	_ = cmd.MarkFlagRequired("bearer")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("expect")

	return cmd
}

func runRace(cmd *cobra.Command, args []string) error {
	provider, externalID := args[0], args[1]
	baseURL, _ := cmd.Flags().GetString("url")
	bearer, _ := cmd.Flags().GetString("bearer")
	hookToken, _ := cmd.Flags().GetString("token")
	amount, _ := cmd.Flags().GetInt64("amount")
	expect, _ := cmd.Flags().GetInt64("expect")
	webhooks, _ := cmd.Flags().GetInt("webhooks")
	polls, _ := cmd.Flags().GetInt("polls")
	jitter, _ := cmd.Flags().GetDuration("jitter")

	ctx := cmd.Context()
	client := &apiClient{http: &http.Client{Timeout: 30 * time.Second}, baseURL: baseURL, bearer: bearer}

	before, err := client.balance(ctx)
	if err != nil {
		return err
	}

	delivery, err := buildDelivery(provider, externalID, amount, time.Now())
	if err != nil {
		return err
	}
	statusBody, err := json.Marshal(map[string]string{"externalId": externalID})
	if err != nil {
		return err
	}

	stats := newRaceStats()
	start := make(chan struct{})
	var wg sync.WaitGroup

	fire := func(i int, kind string, call func() (int, error)) {
		defer wg.Done()
		<-start
		if jitter > 0 {
			time.Sleep(time.Duration(i) * jitter / time.Duration(webhooks+polls))
		}
		began := time.Now()
		status, err := call()
		stats.record(kind, status, time.Since(began), err)
	}

	for i := 0; i < webhooks; i++ {
		wg.Add(1)
		go fire(i, "webhook", func() (int, error) {
			status, _, err := delivery.send(ctx, client.http, baseURL, hookToken)
			return status, err
		})
	}
	for i := 0; i < polls; i++ {
		wg.Add(1)
		go fire(webhooks+i, "status", func() (int, error) {
			return client.do(ctx, http.MethodPost, "/api/topup/status", string(statusBody), nil)
		})
	}

	began := time.Now()
	close(start)
	wg.Wait()
	stats.print(cmd.OutOrStdout(), time.Since(began))

	after, err := client.balance(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Balance:       %d -> %d (expected +%d)\n", before, after, expect)
	if after-before != expect {
		return fmt.Errorf("balance moved by %d, expected %d", after-before, expect)
	}
	return nil
}
