package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"vanityseek/internal/address"
	"vanityseek/internal/store"
	"vanityseek/internal/worker"
)

var (
	// Pattern
	prefix        = flag.String("prefix", "", "Pattern the address must start with")
	suffix        = flag.String("suffix", "", "Pattern the address must end with")
	caseSensitive = flag.Bool("C", false, "Case sensitive matching")

	// Search configuration
	count         = flag.Int("n", 1, "Number of vanity addresses to find")
	workers       = flag.Int("w", runtime.NumCPU(), "Number of concurrent search workers")
	iterationBits = flag.Int("ib", 20, "log2 of tasks per launch (higher = bigger batches)")
	useEC         = flag.Bool("ec", false, "Use genuine secp256k1 key derivation")

	// Output configuration
	outputPath      = flag.String("o", "vanity_results.json", "Output file for found keypairs")
	dbConn          = flag.String("db", "", "Optional Postgres connection string for match storage")
	counterInterval = flag.Int("c", 0, "Interval in seconds for progress reporting (0 = disabled)")
	verbose         = flag.Bool("v", false, "Enable verbose output")

	// Notifications
	pushoverToken = flag.String("pt", "", "Pushover application token")
	pushoverUser  = flag.String("pu", "", "Pushover user key")

	// Mutex for file writes
	matchesFileMutex sync.Mutex
)

func main() {
	flag.Parse()

	validatePattern(*prefix, "prefix")
	validatePattern(*suffix, "suffix")

	patternLen := len(*prefix) + len(*suffix)
	log.Printf("vanityseek starting: prefix=%q suffix=%q case_sensitive=%v", *prefix, *suffix, *caseSensitive)
	log.Printf("Target count: %d, workers: %d, iteration bits: %d", *count, *workers, *iterationBits)
	log.Printf("Estimated attempts per match: %s", worker.FormatAttempts(worker.EstimateAttempts(patternLen)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load previously found results so a restarted search appends.
	jsonStore := store.NewJSONStore(*outputPath)
	results, err := jsonStore.Load()
	if err != nil {
		log.Fatalf("Failed to load existing results: %v", err)
	}
	if len(results) > 0 {
		log.Printf("Loaded %d existing results from %s", len(results), *outputPath)
	}

	var pgStore *store.PostgresStore
	if *dbConn != "" {
		pgStore, err = store.OpenPostgres(*dbConn)
		if err != nil {
			log.Fatalf("Failed to open Postgres store: %v", err)
		}
		defer pgStore.Close()
	}

	cfg := worker.Config{
		Prefix:        *prefix,
		Suffix:        *suffix,
		CaseSensitive: *caseSensitive,
		IterationBits: *iterationBits,
		BaseSeeds:     worker.DefaultConfig().BaseSeeds,
		UseEC:         *useEC,
		Verbose:       *verbose,
	}

	// Start workers and fan their matches into one channel.
	matchChan := make(chan worker.Match, 100)
	pool := make([]*worker.CPUWorker, *workers)
	var wg sync.WaitGroup

	log.Printf("Starting %d CPU workers...", *workers)
	for i := 0; i < *workers; i++ {
		w := worker.NewCPUWorker(cfg)
		pool[i] = w

		wg.Add(1)
		go func(w *worker.CPUWorker) {
			defer wg.Done()
			defer w.Close()

			for match := range w.Run(ctx) {
				matchChan <- match
			}
		}(w)
	}

	go func() {
		wg.Wait()
		close(matchChan)
	}()

	statsFn := func() worker.Stats {
		var total worker.Stats
		for _, w := range pool {
			s := w.Stats()
			total.KeysChecked += s.KeysChecked
			total.Launches += s.Launches
			total.MatchesFound += s.MatchesFound
		}
		return total
	}

	// Progress reporter
	if *counterInterval > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(*counterInterval) * time.Second)
			defer ticker.Stop()

			lastCount := int64(0)
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					s := statsFn()
					rate := (s.KeysChecked - lastCount) / int64(*counterInterval)
					lastCount = s.KeysChecked

					msg := fmt.Sprintf("Checked %s keys (%s/sec), %d launches, %d matches",
						worker.FormatAttempts(s.KeysChecked), worker.FormatAttempts(rate), s.Launches, s.MatchesFound)
					log.Println(msg)

					if *pushoverToken != "" && *pushoverUser != "" {
						go sendPushoverNotification(*pushoverToken, *pushoverUser, "vanityseek progress", msg)
					}
				}
			}
		}()
	}

	// Collect matches until the requested count is reached.
	start := time.Now()
	found := 0
	for match := range matchChan {
		results = append(results, match)
		found++

		logMatch(match)

		if err := jsonStore.Save(results); err != nil {
			log.Printf("Error saving results: %v", err)
		}
		if pgStore != nil {
			if err := pgStore.SaveBatch([]worker.Match{match}); err != nil {
				log.Printf("Error writing match to Postgres: %v", err)
			}
		}

		if found >= *count {
			stop()
			break
		}
	}

	// Drain any matches still in flight so the workers can exit.
	go func() {
		for range matchChan {
		}
	}()

	// Give workers time to finish.
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		log.Println("Timeout waiting for workers")
	}

	s := statsFn()
	elapsed := time.Since(start)
	log.Printf("Search finished in %v. Keys checked: %s, matches found: %d",
		elapsed.Round(time.Millisecond), worker.FormatAttempts(s.KeysChecked), found)
	if elapsed > 0 {
		log.Printf("Rate: %s keys/sec", worker.FormatAttempts(int64(float64(s.KeysChecked)/elapsed.Seconds())))
	}
}

// validatePattern rejects pattern characters that can never appear in an
// encoded address.
func validatePattern(pattern, name string) {
	for _, c := range []byte(pattern) {
		b := c
		if !*caseSensitive {
			// Case-insensitive matching folds to uppercase, so either
			// case of an alphabet letter is acceptable input.
			if 'a' <= b && b <= 'z' {
				b -= 'a' - 'A'
			}
			if strings.ContainsRune(strings.ToUpper(address.Alphabet), rune(b)) {
				continue
			}
		}
		if !strings.ContainsRune(address.Alphabet, rune(c)) {
			log.Fatalf("Invalid %s: character %q is not in the address alphabet", name, c)
		}
	}
}

func logMatch(match worker.Match) {
	msg := fmt.Sprintf("MATCH FOUND! Address: %s Pattern: %s Attempts: %s",
		match.Address, match.Pattern, worker.FormatAttempts(match.Attempts))

	// Print to console with emphasis
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(msg)
	fmt.Println(strings.Repeat("=", 60))

	// Append to file (mutex-protected)
	matchesFileMutex.Lock()
	file, err := os.OpenFile("matches.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		matchesFileMutex.Unlock()
		log.Printf("Error opening matches.log: %v", err)
		return
	}

	logLine := fmt.Sprintf("[%s] Address: %s | Pattern: %s | PrivKey: %s\n",
		match.FoundAt.Format(time.RFC3339), match.Address, match.Pattern, match.PrivateKey)
	if _, err := file.WriteString(logLine); err != nil {
		log.Printf("Error writing to matches.log: %v", err)
	}
	file.Close()
	matchesFileMutex.Unlock()

	// Send push notification
	if *pushoverToken != "" && *pushoverUser != "" {
		go sendPushoverNotification(*pushoverToken, *pushoverUser, "vanityseek match!", msg)
	}
}

func sendPushoverNotification(token, user, title, message string) error {
	form := url.Values{}
	form.Set("token", token)
	form.Set("user", user)
	form.Set("title", title)
	form.Set("message", message)

	req, err := http.NewRequest("POST", "https://api.pushover.net/1/messages.json", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("received non-OK response from Pushover: %s", resp.Status)
	}

	return nil
}
