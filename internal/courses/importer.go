package courses

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher loads an HTML document
type Fetcher interface {
	Get(ctx context.Context, url string) (*goquery.Document, error)
}

// Importer turns a scorecard URL into course data for a tournament
type Importer struct {
	fetcher Fetcher
	parser  *Parser
}

// NewImporter creates a new importer
func NewImporter(fetcher Fetcher) *Importer {
	return &Importer{fetcher: fetcher, parser: NewParser()}
}

// Import fetches and parses a scorecard page. Pages without a par are rejected.
func (i *Importer) Import(ctx context.Context, rawURL string) (*CourseInfo, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("invalid course URL %q", rawURL)
	}

	doc, err := i.fetcher.Get(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scorecard: %w", err)
	}

	info := i.parser.ParseScorecard(doc)
	if info.Par <= 0 {
		return nil, fmt.Errorf("no par found on %s", u.Host)
	}
	return info, nil
}
