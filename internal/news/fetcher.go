package news

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
)

const (
	userAgent = "worldmonitor/1.0 (+https://github.com/worldmonitor)"
	// DefaultPerFeed caps items taken from a single feed.
	DefaultPerFeed = 8
	// DefaultPerCategory caps items rendered in one category panel.
	DefaultPerCategory = 20
)

// Fetcher downloads and parses feeds with a fresh colly collector per feed.
type Fetcher struct {
	Timeout     time.Duration
	PerFeed     int
	PerCategory int
	// Transport is the base round tripper; nil means http.DefaultTransport.
	Transport http.RoundTripper
}

// NewFetcher returns a Fetcher with default caps.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{Timeout: timeout, PerFeed: DefaultPerFeed, PerCategory: DefaultPerCategory}
}

// FetchCategory fetches every feed of c concurrently and merges the results
// newest first. Individual feed failures are logged; the category fails only
// when all of its feeds fail.
func (f *Fetcher) FetchCategory(ctx context.Context, c Category) ([]Item, error) {
	if len(c.Feeds) == 0 {
		return nil, nil
	}

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		items []Item
		errs  []error
	)
	for _, feed := range c.Feeds {
		wg.Add(1)
		go func(feed Feed) {
			defer wg.Done()
			got, err := f.FetchFeed(ctx, feed, c.Key)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Printf("news.FetchCategory: %s/%s: %v", c.Key, feed.Name, err)
				errs = append(errs, err)
				return
			}
			items = append(items, got...)
		}(feed)
	}
	wg.Wait()

	if len(errs) == len(c.Feeds) {
		return nil, fmt.Errorf("category %s: all feeds failed: %w", c.Key, errors.Join(errs...))
	}

	items = Dedupe(items)
	SortNewest(items)
	if f.PerCategory > 0 && len(items) > f.PerCategory {
		items = items[:f.PerCategory]
	}
	return items, nil
}

// FetchFeed downloads one RSS or Atom document.
func (f *Fetcher) FetchFeed(ctx context.Context, feed Feed, category string) ([]Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
	)
	if f.Timeout > 0 {
		c.SetRequestTimeout(f.Timeout)
	}
	base := f.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.WithTransport(&contextTransport{ctx: ctx, base: base})

	var (
		items    []Item
		fetchErr error
	)
	limit := f.PerFeed
	add := func(it Item) {
		if it.Title == "" || (limit > 0 && len(items) >= limit) {
			return
		}
		it.Source = feed.Name
		it.Category = category
		it.IsAlert = IsAlertTitle(it.Title)
		items = append(items, it)
	}

	// Feeds are often served as text/plain or text/html. colly skips OnXML
	// for the former and parses the latter as HTML, where <link> is void.
	c.OnResponse(func(r *colly.Response) {
		r.Headers.Set("Content-Type", "application/xml")
	})

	// RSS 2.0
	c.OnXML("//item", func(e *colly.XMLElement) {
		add(Item{
			Title:       CleanText(e.ChildText("title")),
			Link:        e.ChildText("link"),
			Description: CleanText(e.ChildText("description")),
			Published:   ParseDate(firstNonEmpty(e.ChildText("pubDate"), e.ChildText("date"))),
		})
	})
	// Atom
	c.OnXML("//entry", func(e *colly.XMLElement) {
		link := e.ChildAttr("link[@rel='alternate']", "href")
		if link == "" {
			link = e.ChildAttr("link", "href")
		}
		add(Item{
			Title:       CleanText(e.ChildText("title")),
			Link:        link,
			Description: CleanText(firstNonEmpty(e.ChildText("summary"), e.ChildText("content"))),
			Published:   ParseDate(firstNonEmpty(e.ChildText("published"), e.ChildText("updated"))),
		})
	})
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = fmt.Errorf("fetch %s: status %d: %w", feed.URL, r.StatusCode, err)
	})

	if err := c.Visit(feed.URL); err != nil {
		return nil, fmt.Errorf("visit %s: %w", feed.URL, err)
	}
	c.Wait()
	if fetchErr != nil {
		return nil, fetchErr
	}
	return items, nil
}

// contextTransport binds every request of a collector to ctx.
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t *contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
