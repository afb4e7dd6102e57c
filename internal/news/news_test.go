package news

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsAlertTitle(t *testing.T) {
	assert.True(t, IsAlertTitle("NATO summit ends"))
	assert.True(t, IsAlertTitle("Martial law declared"))
	assert.False(t, IsAlertTitle("Quarterly earnings beat estimates"))
}

func TestDedupe(t *testing.T) {
	items := []Item{
		{Title: "A", Link: "https://x/1"},
		{Title: "A again", Link: "https://x/1"},
		{Title: "No link"},
		{Title: "no LINK"},
		{Title: "B", Link: "https://x/2"},
	}
	got := Dedupe(items)
	assert.Len(t, got, 3)
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, "No link", got[1].Title)
	assert.Equal(t, "B", got[2].Title)
}

func TestSortNewest(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []Item{{Title: "old", Published: t0}, {Title: "new", Published: t0.Add(time.Hour)}}
	SortNewest(items)
	assert.Equal(t, "new", items[0].Title)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Hello world", CleanText("  <div>Hello\n\t<i>world</i></div> "))
	assert.Equal(t, "plain", CleanText("plain"))

	long := ""
	for i := 0; i < 300; i++ {
		long += "x"
	}
	got := CleanText(long)
	assert.Equal(t, maxDescription+3, len(got))
	assert.Equal(t, "...", got[len(got)-3:])
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, want, ParseDate("Tue, 05 Mar 2024 10:00:00 +0000"))
	assert.Equal(t, want, ParseDate("2024-03-05T10:00:00Z"))
	assert.Equal(t, want, ParseDate("Tue, 5 Mar 2024 11:00:00 +0100"))
	assert.True(t, ParseDate("yesterday").IsZero())
}

func TestDefaultCategories(t *testing.T) {
	cats := DefaultCategories()
	assert.Len(t, cats, 10)
	assert.Equal(t, IntelKey, cats[len(cats)-1].Key)
	for _, c := range cats {
		assert.NotEmpty(t, c.Feeds, c.Key)
	}
}
