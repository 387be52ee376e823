// ABOUTME: Institute website scraper: fetches a fixed page set concurrently and extracts text
// ABOUTME: Uses golang.org/x/net/html for parsing and collects application form links

package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"

	securehttp "github.com/mauromedda/campusbot-go/internal/http"
	"github.com/mauromedda/campusbot-go/internal/log"
)

// Fetch limits.
const (
	DefaultBaseURL = "https://www.mptigh.com"

	userAgent      = "campusbot/1.0"
	requestTimeout = 10 * time.Second
	maxBodyBytes   = 2 * 1024 * 1024
	contentBudget  = 1800
	maxLinks       = 5
	maxFetchers    = 4
)

// Pages is the fixed page set, name to path.
var Pages = map[string]string{
	"home":         "/",
	"about":        "/about",
	"programs":     "/programs",
	"courses":      "/courses",
	"admissions":   "/admissions",
	"contact":      "/contact",
	"tact_program": "/tact-program",
}

// formDomains mark a link as an external application form.
var formDomains = []string{
	"forms.microsoft.com", "forms.office.com", "docs.google.com",
	"typeform.com", "surveymonkey.com", "jotform.com",
}

// applicationWords mark a link as application-related by its text.
var applicationWords = []string{"apply", "application", "register", "enroll", "form"}

// Link is an outbound link worth surfacing to users.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
	Type string `json:"type"` // form or application
}

// Page is one scraped page, trimmed to the content budget.
type Page struct {
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Content   string    `json:"content"`
	Links     []Link    `json:"links,omitempty"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Scraper fetches the institute website.
type Scraper struct {
	base   string
	client *http.Client
}

// New creates a scraper for the given base URL; empty means the
// default institute site.
func New(base string) *Scraper {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Scraper{
		base:   strings.TrimRight(base, "/"),
		client: securehttp.ScrapeClient(requestTimeout, maxFetchers),
	}
}

// FetchAll scrapes every configured page concurrently. Pages that fail
// are logged and skipped; the error is non-nil only when every page
// failed.
func (s *Scraper) FetchAll(ctx context.Context) (map[string]Page, error) {
	var (
		mu    sync.Mutex
		pages = make(map[string]Page, len(Pages))
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFetchers)

	for name, path := range Pages {
		g.Go(func() error {
			page, err := s.Fetch(ctx, name, path)
			if err != nil {
				log.Warn("scraping %s: %v", name, err)
				return nil
			}
			mu.Lock()
			pages[name] = page
			mu.Unlock()
			log.Debug("scraped %s: %d chars", name, len(page.Content))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages scraped from %s", s.base)
	}
	return pages, nil
}

// Fetch scrapes a single page.
func (s *Scraper) Fetch(ctx context.Context, name, path string) (Page, error) {
	pageURL := s.base + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Page{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("HTTP %d from %s", resp.StatusCode, pageURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Page{}, fmt.Errorf("reading %s: %w", pageURL, err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return Page{}, fmt.Errorf("parsing %s: %w", pageURL, err)
	}

	title, text := extractContent(doc)
	content := title
	if text != "" {
		content += "\n\n" + truncate(text, contentBudget)
	}

	return Page{
		Name:      name,
		URL:       pageURL,
		Content:   content,
		Links:     s.extractLinks(doc),
		FetchedAt: time.Now(),
	}, nil
}

// extractContent returns the page title and the flattened body text
// with chrome elements stripped.
func extractContent(doc *html.Node) (title, text string) {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "nav", "header", "footer", "iframe", "noscript":
				return
			case "title":
				if title == "" {
					title = strings.TrimSpace(nodeText(n))
				}
				return
			}
		}
		if n.Type == html.TextNode {
			if t := strings.Join(strings.Fields(n.Data), " "); t != "" {
				b.WriteString(t)
				b.WriteString(" ")
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if title == "" {
		title = "Page"
	}
	return title, strings.TrimSpace(b.String())
}

// extractLinks collects outbound form links and application-related
// anchors, capped at maxLinks.
func (s *Scraper) extractLinks(doc *html.Node) []Link {
	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if len(links) == maxLinks {
			return
		}
		if n.Type == html.ElementNode && n.Data == "a" {
			if l, ok := s.classifyLink(attr(n, "href"), nodeText(n)); ok {
				links = append(links, l)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links
}

func (s *Scraper) classifyLink(href, text string) (Link, bool) {
	text = strings.Join(strings.Fields(text), " ")
	if href == "" || len(text) <= 3 || len(text) >= 100 {
		return Link{}, false
	}

	hrefLower := strings.ToLower(href)
	textLower := strings.ToLower(text)

	external := false
	for _, d := range formDomains {
		if strings.Contains(hrefLower, d) {
			external = true
			break
		}
	}
	application := false
	for _, w := range applicationWords {
		if strings.Contains(textLower, w) {
			application = true
			break
		}
	}
	if !external && !application {
		return Link{}, false
	}

	kind := "application"
	if strings.Contains(hrefLower, "form") {
		kind = "form"
	}
	return Link{Text: text, URL: s.absolute(href), Type: kind}, true
}

func (s *Scraper) absolute(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	base, err := url.Parse(s.base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
