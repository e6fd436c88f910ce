package ucd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/taxo-labs/taxo-cli/internal/core/domain"
	"github.com/taxo-labs/taxo-cli/internal/core/ports/driven"
	"github.com/taxo-labs/taxo-cli/internal/logger"
)

// Ensure Connector implements the interface.
var _ driven.Catalogue = (*Connector)(nil)

// Default configuration values.
const (
	DefaultBaseURL     = "https://hub.ucd.ie/usis/!W_HU_MENU.P_PUBLISH"
	DefaultTerm        = "202500"
	DefaultModulesFile = "modules.txt"
	DefaultTimeout     = 10 * time.Second

	// userAgent identifies the scraper to the catalogue server.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	// requestRate is the proactive throttle (req/sec). The catalogue has
	// no published limit; this keeps the scraper polite.
	requestRate = 2.0

	// minPageSize distinguishes a real descriptor page from the
	// directory's thin not-found response.
	minPageSize = 1000
)

// Config holds configuration for the UCD connector.
type Config struct {
	// BaseURL is the module directory endpoint (default: the UCD hub).
	BaseURL string

	// Term is the academic term code (default: 202500 for 2025/2026).
	Term string

	// ModulesFile is a text file of module codes, one per line.
	// When the file exists it takes priority over pattern generation.
	ModulesFile string

	// TestMode restricts pattern generation to a small candidate set.
	TestMode bool

	// Timeout is the per-request timeout (default: 10s).
	Timeout time.Duration
}

// Connector fetches module descriptors from the UCD module directory.
type Connector struct {
	client      *http.Client
	limiter     *rate.Limiter
	baseURL     string
	term        string
	modulesFile string
	testMode    bool
}

// New creates a UCD connector.
func New(cfg Config) *Connector {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Term == "" {
		cfg.Term = DefaultTerm
	}
	if cfg.ModulesFile == "" {
		cfg.ModulesFile = DefaultModulesFile
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Connector{
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter:     rate.NewLimiter(rate.Limit(requestRate), 1),
		baseURL:     cfg.BaseURL,
		term:        cfg.Term,
		modulesFile: cfg.ModulesFile,
		testMode:    cfg.TestMode,
	}
}

// Codes returns candidate module codes. A codes file takes priority; the
// fallback generates candidates from the COMP numbering pattern (level,
// series, then a three-digit number in steps of ten).
func (c *Connector) Codes(_ context.Context) ([]string, error) {
	if codes, err := c.codesFromFile(); err == nil {
		logger.Info("Loaded %d module codes from %s", len(codes), c.modulesFile)
		return codes, nil
	} else if !os.IsNotExist(err) {
		logger.Warn("Reading %s: %v, falling back to pattern generation", c.modulesFile, err)
	}

	if c.testMode {
		logger.Debug("generating test-mode candidate codes")
		return testModeCodes(), nil
	}
	logger.Debug("generating full-mode candidate codes")
	return fullModeCodes(), nil
}

// codesFromFile reads module codes from the configured file, one per
// line, skipping blanks and '#' comments.
func (c *Connector) codesFromFile() ([]string, error) {
	f, err := os.Open(c.modulesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var codes []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		code := strings.TrimSpace(scanner.Text())
		if code == "" || strings.HasPrefix(code, "#") {
			continue
		}
		codes = append(codes, code)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return codes, nil
}

// testModeCodes generates the small candidate set: levels 1 and 2 in
// series 0 and 1, plus a few level 3 and 4 samples.
func testModeCodes() []string {
	var codes []string
	for _, level := range []int{1, 2} {
		for _, series := range []int{0, 1} {
			for num := 0; num < 100; num += 10 {
				codes = append(codes, fmt.Sprintf("COMP%d%d%03d", level, series, num))
			}
		}
	}
	for _, num := range []int{0, 10, 20, 30} {
		codes = append(codes, fmt.Sprintf("COMP30%03d", num))
		codes = append(codes, fmt.Sprintf("COMP40%03d", num))
	}
	return codes
}

// fullModeCodes generates the comprehensive candidate set across all
// four levels and the commonly used series numbers.
func fullModeCodes() []string {
	var codes []string
	for _, level := range []int{1, 2, 3, 4} {
		for _, series := range []int{0, 1, 2, 3, 4, 7} {
			for num := 0; num < 200; num += 10 {
				codes = append(codes, fmt.Sprintf("COMP%d%d%03d", level, series, num))
			}
		}
	}
	return codes
}

// descriptorURL builds the descriptor page URL for a module code.
func (c *Connector) descriptorURL(code string) string {
	q := url.Values{}
	q.Set("p_tag", "MODULE")
	q.Set("MODULE", code)
	q.Set("ARCHIVE", "Y")
	q.Set("TERMCODE", c.term)
	return c.baseURL + "?" + q.Encode()
}

// Fetch retrieves the descriptor for one module code. Absent modules
// return (nil, nil): the directory serves a thin "No data found" page
// rather than a 404, so absence is detected from the body.
func (c *Connector) Fetch(ctx context.Context, code string) (*domain.Module, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	pageURL := c.descriptorURL(code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", code, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", domain.ErrCatalogueUnavailable, code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("%w: fetching %s", domain.ErrRateLimited, code)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: fetching %s: status %d", domain.ErrCatalogueUnavailable, code, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor for %s: %w", code, err)
	}

	page := string(body)
	if strings.Contains(page, "No data found") || len(page) < minPageSize {
		return nil, nil
	}

	module := parseDescriptor(page)
	if module.Title == "" {
		// A page without a recognisable title carries no usable data.
		return nil, nil
	}

	module.Code = code
	module.URL = pageURL
	normalised := module.Normalised()
	return &normalised, nil
}

// Close releases resources.
func (c *Connector) Close() error {
	// HTTP client doesn't need explicit cleanup
	return nil
}
