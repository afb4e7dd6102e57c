package news

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssDoc = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>Wire</title>
<item>
  <title>Missile strike reported near border</title>
  <link>https://example.com/a</link>
  <description><![CDATA[<p>Officials <b>confirm</b> damage.</p>]]></description>
  <pubDate>Mon, 02 Jan 2006 15:04:05 +0000</pubDate>
</item>
<item>
  <title>Markets open higher</title>
  <link>https://example.com/b</link>
  <description>Stocks rise &amp; bonds fall</description>
  <pubDate>Mon, 02 Jan 2006 16:04:05 +0000</pubDate>
</item>
</channel></rss>`

const atomDoc = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"><title>Lab</title>
<entry>
  <title>New model released</title>
  <link rel="alternate" href="https://example.org/model"/>
  <summary>A summary</summary>
  <updated>2006-01-02T17:04:05Z</updated>
</entry>
</feed>`

func feedServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/rss":
			w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
			w.Write([]byte(rssDoc))
		case "/plain", "/octet", "/html":
			types := map[string]string{
				"/plain": "text/plain; charset=utf-8",
				"/octet": "application/octet-stream",
				"/html":  "text/html; charset=utf-8",
			}
			w.Header().Set("Content-Type", types[r.URL.Path])
			w.Write([]byte(rssDoc))
		case "/atom":
			w.Header().Set("Content-Type", "application/atom+xml")
			w.Write([]byte(atomDoc))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchFeed_RSS(t *testing.T) {
	srv := feedServer(t)
	f := NewFetcher(5 * time.Second)

	items, err := f.FetchFeed(context.Background(), Feed{Name: "Wire", URL: srv.URL + "/rss"}, "politics")
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "Missile strike reported near border", first.Title)
	assert.Equal(t, "https://example.com/a", first.Link)
	assert.Equal(t, "Officials confirm damage.", first.Description)
	assert.Equal(t, "Wire", first.Source)
	assert.Equal(t, "politics", first.Category)
	assert.True(t, first.IsAlert)
	assert.Equal(t, time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC), first.Published)

	assert.Equal(t, "Stocks rise & bonds fall", items[1].Description)
	assert.False(t, items[1].IsAlert)
}

func TestFetchFeed_IgnoresContentType(t *testing.T) {
	srv := feedServer(t)
	f := NewFetcher(5 * time.Second)

	for _, path := range []string{"/plain", "/octet", "/html"} {
		t.Run(path, func(t *testing.T) {
			items, err := f.FetchFeed(context.Background(), Feed{Name: "Wire", URL: srv.URL + path}, "politics")
			require.NoError(t, err)
			require.Len(t, items, 2)
			assert.Equal(t, "https://example.com/a", items[0].Link)
			assert.Equal(t, "Missile strike reported near border", items[0].Title)
		})
	}
}

func TestFetchFeed_Atom(t *testing.T) {
	srv := feedServer(t)
	f := NewFetcher(5 * time.Second)

	items, err := f.FetchFeed(context.Background(), Feed{Name: "Lab", URL: srv.URL + "/atom"}, "ai")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "New model released", items[0].Title)
	assert.Equal(t, "https://example.org/model", items[0].Link)
	assert.Equal(t, "A summary", items[0].Description)
}

func TestFetchFeed_HTTPError(t *testing.T) {
	srv := feedServer(t)
	_, err := NewFetcher(5*time.Second).FetchFeed(context.Background(), Feed{Name: "Down", URL: srv.URL + "/down"}, "tech")
	assert.Error(t, err)
}

func TestFetchFeed_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFetcher(time.Second).FetchFeed(ctx, Feed{URL: "http://127.0.0.1:1/"}, "tech")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchCategory_MergesNewestFirst(t *testing.T) {
	srv := feedServer(t)
	f := NewFetcher(5 * time.Second)
	cat := Category{Key: "mixed", Feeds: []Feed{
		{Name: "Wire", URL: srv.URL + "/rss"},
		{Name: "Lab", URL: srv.URL + "/atom"},
		{Name: "Down", URL: srv.URL + "/down"},
	}}

	items, err := f.FetchCategory(context.Background(), cat)
	require.NoError(t, err, "one failing feed must not fail the category")
	require.Len(t, items, 3)
	assert.Equal(t, "New model released", items[0].Title)
	assert.Equal(t, "Markets open higher", items[1].Title)
	assert.Equal(t, "Missile strike reported near border", items[2].Title)
}

func TestFetchCategory_AllFeedsFail(t *testing.T) {
	srv := feedServer(t)
	cat := Category{Key: "dead", Feeds: []Feed{{Name: "A", URL: srv.URL + "/x"}, {Name: "B", URL: srv.URL + "/y"}}}

	_, err := NewFetcher(5*time.Second).FetchCategory(context.Background(), cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all feeds failed")
}

func TestFetchCategory_CapsItems(t *testing.T) {
	srv := feedServer(t)
	f := NewFetcher(5 * time.Second)
	f.PerCategory = 1

	items, err := f.FetchCategory(context.Background(), Category{Key: "c", Feeds: []Feed{{Name: "Wire", URL: srv.URL + "/rss"}}})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
