package linkpreview

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func TestParseOpenGraph(t *testing.T) {
	html := `<html><head>
		<title>Fallback Title</title>
		<meta property="og:title" content="Spring Open House">
		<meta property="og:description" content="Join us for the spring open house event.">
		<meta property="og:image" content="https://cdn.example.com/house.jpg">
		<meta property="og:site_name" content="Example Realty">
	</head><body></body></html>`

	p := Parse(mustDoc(t, html), "https://example.com/open-house")

	if p.Title != "Spring Open House" {
		t.Errorf("Title = %q, want %q", p.Title, "Spring Open House")
	}
	if p.Description != "Join us for the spring open house event." {
		t.Errorf("Description = %q", p.Description)
	}
	if p.ImageURL != "https://cdn.example.com/house.jpg" {
		t.Errorf("ImageURL = %q", p.ImageURL)
	}
	if p.SiteName != "Example Realty" {
		t.Errorf("SiteName = %q", p.SiteName)
	}
}

func TestParseFallbacks(t *testing.T) {
	html := `<html><head>
		<title>  Plain Page  </title>
		<meta name="description" content="A page without OpenGraph tags.">
	</head><body></body></html>`

	p := Parse(mustDoc(t, html), "https://blog.example.org/post/1")

	if p.Title != "Plain Page" {
		t.Errorf("Title = %q, want %q", p.Title, "Plain Page")
	}
	if p.Description != "A page without OpenGraph tags." {
		t.Errorf("Description = %q", p.Description)
	}
	if p.SiteName != "blog.example.org" {
		t.Errorf("SiteName = %q, want hostname fallback", p.SiteName)
	}
}

func TestParseRelativeImage(t *testing.T) {
	html := `<html><head>
		<meta property="og:image" content="/img/cover.png">
	</head></html>`

	p := Parse(mustDoc(t, html), "https://example.com/listing/42")

	if p.ImageURL != "https://example.com/img/cover.png" {
		t.Errorf("ImageURL = %q, want resolved absolute URL", p.ImageURL)
	}
}

func TestParseTruncatesDescription(t *testing.T) {
	long := strings.Repeat("a", 400)
	html := `<html><head><meta property="og:description" content="` + long + `"></head></html>`

	p := Parse(mustDoc(t, html), "https://example.com")

	if len(p.Description) != 300 {
		t.Errorf("len(Description) = %d, want 300", len(p.Description))
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"https://example.com/page", "https://example.com/page", false},
		{"example.com/page", "https://example.com/page", false},
		{"  http://example.com  ", "http://example.com", false},
		{"", "", true},
		{"https://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := normalizeURL(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("normalizeURL(%q) expected error, got %q", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("normalizeURL(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("normalizeURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
