// Package official fetches the Cabinet Office holiday list and checks the
// rule engine against it.
//
// The CSV URL is resolved via the e-Gov Data Portal CKAN API (recommended by
// the Digital Agency of Japan). If the API is unavailable, well-known direct
// URLs are tried instead.
package official

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/rabitt1ove/jpholiday"
)

const (
	// CKAN API endpoint for the holiday dataset.
	ckanAPIURL = "https://data.e-gov.go.jp/data/api/action/package_show?id=cao_20190522_0002"

	fallbackURL1 = "https://www8.cao.go.jp/chosei/shukujitsu/syukujitsu.csv"
	fallbackURL2 = "https://www8.cao.go.jp/chosei/shukujitsu/shukujitsu.csv"

	// MinExpectedRows is the smallest plausible size of the published list
	// (it starts in 1955).
	MinExpectedRows = 1000

	httpTimeout = 30 * time.Second
	maxRetries  = 3

	maxJSONResponseSize = 1 * 1024 * 1024
	maxCSVResponseSize  = 5 * 1024 * 1024

	userAgent = "jpholiday-verify/1.0 (https://github.com/rabitt1ove/jpholiday)"

	// Header is the first column title of the published CSV.
	Header = "国民の祝日・休日月日"
)

// allowedCSVHosts restricts where a CKAN-resolved URL may point.
var allowedCSVHosts = map[string]bool{
	"www8.cao.go.jp": true,
	"www.cao.go.jp":  true,
}

// ErrTooFewRows is returned by [Fetcher.Fetch] when the downloaded list is
// implausibly short.
var ErrTooFewRows = errors.New("official: too few rows")

type ckanResponse struct {
	Success bool `json:"success"`
	Result  struct {
		Resources []struct {
			URL    string `json:"url"`
			Format string `json:"format"`
		} `json:"resources"`
	} `json:"result"`
}

// Entry is one row of the published list.
type Entry struct {
	Date jpholiday.Date
	Name string
}

// Fetcher downloads the published holiday list.
type Fetcher struct {
	client         *http.Client
	log            *log.Logger
	ckanURL        string
	fallbackURLs   []string
	retryBaseDelay time.Duration
}

// NewFetcher returns a Fetcher using client (or a client with a 30s timeout
// when nil) and logging progress to logger (discarded when nil).
func NewFetcher(client *http.Client, logger *log.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: httpTimeout}
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Fetcher{
		client:         client,
		log:            logger,
		ckanURL:        ckanAPIURL,
		fallbackURLs:   []string{fallbackURL1, fallbackURL2},
		retryBaseDelay: 2 * time.Second,
	}
}

// Fetch downloads, decodes and parses the published list.
func (f *Fetcher) Fetch(ctx context.Context) ([]Entry, error) {
	body, err := f.fetchCSV(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching CSV: %w", err)
	}
	entries, err := ParseShiftJIS(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(entries) < MinExpectedRows {
		return nil, fmt.Errorf("%w: expected at least %d, got %d", ErrTooFewRows, MinExpectedRows, len(entries))
	}
	f.log.Printf("fetched %d official holidays", len(entries))
	return entries, nil
}

// resolveCSVURL queries the CKAN API for the current CSV download URL.
func (f *Fetcher) resolveCSVURL(ctx context.Context) (string, error) {
	f.log.Printf("resolving CSV URL via CKAN API: %s", f.ckanURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.ckanURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("CKAN API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("CKAN API returned status %d", resp.StatusCode)
	}

	var ckan ckanResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseSize)).Decode(&ckan); err != nil {
		return "", fmt.Errorf("CKAN API response decode failed: %w", err)
	}
	if !ckan.Success {
		return "", errors.New("CKAN API returned success=false")
	}

	for _, r := range ckan.Result.Resources {
		if strings.EqualFold(r.Format, "CSV") && r.URL != "" {
			if err := validateCSVURL(r.URL); err != nil {
				return "", fmt.Errorf("CKAN returned invalid URL: %w", err)
			}
			f.log.Printf("  resolved URL: %s", r.URL)
			return r.URL, nil
		}
	}
	return "", errors.New("no CSV resource found in CKAN response")
}

// validateCSVURL checks that a URL is HTTPS and points to an allowed host.
func validateCSVURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("URL %q: only HTTPS is allowed", rawURL)
	}
	if !allowedCSVHosts[parsed.Hostname()] {
		return fmt.Errorf("URL %q: host %q is not in the allowed list", rawURL, parsed.Hostname())
	}
	return nil
}

// fetchCSV tries the CKAN-resolved URL, then each fallback URL.
func (f *Fetcher) fetchCSV(ctx context.Context) ([]byte, error) {
	var urls []string
	if resolved, err := f.resolveCSVURL(ctx); err != nil {
		f.log.Printf("  CKAN API failed: %v (falling back to direct URLs)", err)
	} else {
		urls = append(urls, resolved)
	}
	for _, fb := range f.fallbackURLs {
		if len(urls) == 0 || urls[0] != fb {
			urls = append(urls, fb)
		}
	}

	lastErr := errors.New("no URLs to try")
	for _, u := range urls {
		body, err := f.fetchWithRetry(ctx, u)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			continue
		}
		return body, nil
	}
	return nil, fmt.Errorf("all URLs failed, last error: %w", lastErr)
}

// fetchWithRetry fetches a URL with exponential backoff on 429 and 5xx.
func (f *Fetcher) fetchWithRetry(ctx context.Context, u string) ([]byte, error) {
	var lastErr error
	for attempt := range maxRetries {
		if attempt > 0 {
			delay := f.retryBaseDelay * time.Duration(1<<(attempt-1))
			f.log.Printf("  retrying in %v (attempt %d/%d)", delay, attempt+1, maxRetries)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		f.log.Printf("fetching %s", u)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("GET %s: %w", u, err)
			f.log.Printf("  failed: %v", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("GET %s: status %d", u, resp.StatusCode)
			f.log.Printf("  failed: status %d (retryable)", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s: status %d", u, resp.StatusCode)
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxCSVResponseSize))
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("GET %s: reading body: %w", u, err)
		}
		return body, nil
	}
	return nil, lastErr
}

// ParseShiftJIS parses a Shift-JIS encoded list, as published.
func ParseShiftJIS(r io.Reader) ([]Entry, error) {
	return ParseCSV(transform.NewReader(r, japanese.ShiftJIS.NewDecoder()))
}

// ParseCSV parses a UTF-8 holiday list in the Cabinet Office layout and
// validates its header. Rows with an empty date or name are skipped.
func ParseCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("unexpected header columns: %d (expected 2)", len(header))
	}
	if !strings.Contains(header[0], "国民の祝日") {
		return nil, fmt.Errorf("unexpected header: %q (expected to contain '国民の祝日')", header[0])
	}

	var entries []Entry
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		lineNum++

		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 columns, got %d", lineNum, len(record))
		}

		dateStr := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if dateStr == "" || name == "" {
			continue
		}

		t, err := time.Parse("2006/1/2", dateStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q: %w", lineNum, dateStr, err)
		}
		entries = append(entries, Entry{Date: jpholiday.DateIn(t, time.UTC), Name: name})
	}
	return entries, nil
}
