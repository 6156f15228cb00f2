package linkpreview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// Preview is the metadata shown on a promoted-URL card.
type Preview struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	SiteName    string    `json:"site_name,omitempty"`
	FetchedAt   time.Time `json:"fetched_at"`
}

type Fetcher struct {
	httpClient *http.Client
	log        *zap.Logger
	maxRetries int
}

func NewFetcher(timeoutMS, maxRetries int, log *zap.Logger) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: time.Duration(timeoutMS) * time.Millisecond,
		},
		log:        log,
		maxRetries: maxRetries,
	}
}

// Fetch downloads the page and extracts OpenGraph/meta tags.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Preview, error) {
	target, err := normalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	var doc *goquery.Document
	var lastErr error

	for attempt := 0; attempt <= f.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := f.httpClient.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			lastErr = fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
			time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
			continue
		}

		doc, err = goquery.NewDocumentFromReader(io.LimitReader(resp.Body, 2<<20))
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		lastErr = nil
		break
	}

	if lastErr != nil {
		return nil, lastErr
	}

	preview := Parse(doc, target)
	preview.FetchedAt = time.Now()
	return preview, nil
}

// Parse pulls preview metadata out of an already-parsed document. Split out
// from Fetch so it can run against static HTML.
func Parse(doc *goquery.Document, pageURL string) *Preview {
	p := &Preview{URL: pageURL}

	p.Title = metaContent(doc, "og:title")
	if p.Title == "" {
		p.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	p.Description = metaContent(doc, "og:description")
	if p.Description == "" {
		doc.Find(`meta[name="description"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if content, ok := s.Attr("content"); ok {
				p.Description = strings.TrimSpace(content)
				return false
			}
			return true
		})
	}
	if len(p.Description) > 300 {
		p.Description = p.Description[:300]
	}

	p.ImageURL = resolveRef(pageURL, metaContent(doc, "og:image"))
	p.SiteName = metaContent(doc, "og:site_name")
	if p.SiteName == "" {
		if u, err := url.Parse(pageURL); err == nil {
			p.SiteName = u.Hostname()
		}
	}

	return p
}

func metaContent(doc *goquery.Document, property string) string {
	var out string
	sel := fmt.Sprintf(`meta[property=%q]`, property)
	doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if content, ok := s.Attr("content"); ok && strings.TrimSpace(content) != "" {
			out = strings.TrimSpace(content)
			return false
		}
		return true
	})
	return out
}

func normalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("url is required")
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("invalid url %q", raw)
	}
	return u.String(), nil
}

// resolveRef makes og:image relative paths absolute against the page URL.
func resolveRef(pageURL, ref string) string {
	if ref == "" {
		return ""
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(r).String()
}
