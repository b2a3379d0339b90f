// Package fetch loads the three season documents (entries, calendar,
// stats) from a local data directory or an HTTP base URL. It is the
// system's collaborator boundary: everything downstream operates on the
// already-decoded documents it returns and never performs I/O itself.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gridlinehq/gridline/pkg/errors"
	"github.com/gridlinehq/gridline/pkg/logging"
	"github.com/gridlinehq/gridline/pkg/season"
)

// DefaultHTTPTimeout bounds a single document fetch.
const DefaultHTTPTimeout = 30 * time.Second

// Default document file names, matching the published site layout.
const (
	DefaultEntriesFile  = "entries-2026.json"
	DefaultCalendarFile = "calendar-2026.json"
	DefaultStatsFile    = "stats.json"
)

// Config selects where documents are loaded from. BaseURL wins over
// DataDir when both are set.
type Config struct {
	DataDir      string
	BaseURL      string
	EntriesFile  string
	CalendarFile string
	StatsFile    string
}

// Client fetches and decodes season documents.
type Client struct {
	config Config
	http   *http.Client
}

// New creates a document client. Zero-value file names fall back to the
// site defaults.
func New(config Config) *Client {
	if config.EntriesFile == "" {
		config.EntriesFile = DefaultEntriesFile
	}
	if config.CalendarFile == "" {
		config.CalendarFile = DefaultCalendarFile
	}
	if config.StatsFile == "" {
		config.StatsFile = DefaultStatsFile
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// Roster fetches and decodes the entries document.
func (c *Client) Roster(ctx context.Context) (*season.Roster, error) {
	var doc season.Roster
	if err := c.load(ctx, "entries", c.config.EntriesFile, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Calendar fetches and decodes the calendar document.
func (c *Client) Calendar(ctx context.Context) (*season.Calendar, error) {
	var doc season.Calendar
	if err := c.load(ctx, "calendar", c.config.CalendarFile, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Stats fetches and decodes the stats document.
func (c *Client) Stats(ctx context.Context) (*season.StatsDocument, error) {
	var doc season.StatsDocument
	if err := c.load(ctx, "stats", c.config.StatsFile, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Snapshot holds one render pass's view of all three documents. Each
// document carries its own error so one failed fetch never blocks or
// corrupts the others; callers check the error of the documents they
// actually render.
type Snapshot struct {
	Roster      *season.Roster
	RosterErr   error
	Calendar    *season.Calendar
	CalendarErr error
	Stats       *season.StatsDocument
	StatsErr    error
}

// Snapshot fetches the three documents concurrently, one goroutine each.
// The pipelines share no mutable state; a superseded fetch simply produces
// a snapshot nobody reads.
func (c *Client) Snapshot(ctx context.Context) *Snapshot {
	snap := &Snapshot{}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		snap.Roster, snap.RosterErr = c.Roster(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Calendar, snap.CalendarErr = c.Calendar(ctx)
	}()
	go func() {
		defer wg.Done()
		snap.Stats, snap.StatsErr = c.Stats(ctx)
	}()
	wg.Wait()

	return snap
}

// load reads one document from the configured source and decodes it.
func (c *Client) load(ctx context.Context, document, filename string, v any) error {
	start := time.Now()

	var (
		data   []byte
		source string
		err    error
	)
	if c.config.BaseURL != "" {
		source = strings.TrimSuffix(c.config.BaseURL, "/") + path.Join("/", filename)
		data, err = c.get(ctx, document, source)
	} else {
		source = filepath.Join(c.config.DataDir, filename)
		data, err = os.ReadFile(source)
		if err != nil {
			err = errors.WrapIO("read", source, err)
		}
	}
	if err != nil {
		logging.Warn().Err(err).Str("document", document).Msg("Document fetch failed")
		return err
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.WrapParse("json", source, err)
	}

	logging.Debug().
		Str("document", document).
		Str("source", source).
		Dur("elapsed", time.Since(start)).
		Msg("Document loaded")
	return nil
}

// get performs one HTTP document fetch.
func (c *Client) get(ctx context.Context, document, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapFetch(document, url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.WrapFetch(document, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.FetchError{
			Document:   document,
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	return io.ReadAll(resp.Body)
}
