package scrape

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

const (
	// UserAgent identifies this scraper to the results provider.
	UserAgent = "meet-tracker/1.0 (github.com/pfrederiksen/meet-tracker)"

	// DefaultDelay is the minimum spacing between consecutive requests.
	DefaultDelay = 500 * time.Millisecond

	// DefaultTimeout bounds a single request.
	DefaultTimeout = 15 * time.Second

	// DefaultRetries is how many times a failed fetch is retried before the
	// page is treated as empty.
	DefaultRetries = 3
)

// Fetcher performs rate-limited, retrying page fetches. It is synchronous
// and not safe for concurrent use; the scrape flow is strictly sequential.
type Fetcher struct {
	client    *http.Client
	delay     time.Duration
	retries   uint64
	lastFetch time.Time
	log       *logrus.Entry
}

// NewFetcher creates a Fetcher. Zero values fall back to the package
// defaults.
func NewFetcher(delay, timeout time.Duration, retries int, log *logrus.Entry) *Fetcher {
	if delay <= 0 {
		delay = DefaultDelay
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if retries <= 0 {
		retries = DefaultRetries
	}
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		delay:   delay,
		retries: uint64(retries),
		log:     log,
	}
}

// Get fetches a URL and returns the parsed document. Transient failures are
// retried with exponential backoff (1s, 2s, 4s, ...); exhausted retries
// return an error, which callers degrade to an empty page except for the
// meet index.
func (f *Fetcher) Get(url string) (*goquery.Document, error) {
	f.throttle()

	var doc *goquery.Document
	attempt := 0
	op := func() error {
		attempt++
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", UserAgent)

		resp, err := f.client.Do(req)
		if err != nil {
			f.log.WithError(err).WithFields(logrus.Fields{
				"url":     url,
				"attempt": attempt,
			}).Warn("request failed")
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			f.log.WithFields(logrus.Fields{
				"url":    url,
				"status": resp.StatusCode,
			}).Warn("unexpected status")
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		doc, err = goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("parsing HTML: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	if err := backoff.Retry(op, backoff.WithMaxRetries(bo, f.retries-1)); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	return doc, nil
}

// throttle enforces the inter-request delay.
func (f *Fetcher) throttle() {
	if !f.lastFetch.IsZero() {
		if wait := f.delay - time.Since(f.lastFetch); wait > 0 {
			time.Sleep(wait)
		}
	}
	f.lastFetch = time.Now()
}
