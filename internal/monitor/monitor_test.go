package monitor

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"worldmonitor/internal/news"
)

func item(title string, minutesAgo int) news.Item {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return news.Item{
		Title:     title,
		Link:      "https://example.com/" + title,
		Published: base.Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{" , ,", nil},
		{"Iran", []string{"iran"}},
		{"Iran, Tehran ,iran", []string{"iran", "tehran"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseKeywords(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New(" , ", "#fff")
	assert.ErrorIs(t, err, ErrEmptyKeywords)

	m, err := New("Taiwan, chips", "#fff")
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, []string{"taiwan", "chips"}, m.Keywords)
}

func TestEvaluateOne_WholeWordCaseInsensitive(t *testing.T) {
	m := Monitor{ID: "a", Keywords: []string{"oil"}}
	items := []news.Item{
		item("OIL prices surge", 5),
		item("Boiling point reached", 1),
		{Title: "Markets", Description: "crude oil falls", Link: "x", Published: item("", 2).Published},
	}

	got := EvaluateOne(m, items)
	require.Len(t, got, 2)
	assert.Equal(t, "Markets", got[0].Title, "newest first")
	assert.Equal(t, "OIL prices surge", got[1].Title)
}

func TestEvaluateOne_CapsResults(t *testing.T) {
	var items []news.Item
	for i := 0; i < 25; i++ {
		items = append(items, item(fmt.Sprintf("ukraine update %d", i), i))
	}
	got := EvaluateOne(Monitor{ID: "a", Keywords: []string{"ukraine"}}, items)
	require.Len(t, got, MaxResults)
	assert.Equal(t, "ukraine update 0", got[0].Title)
}

func TestEvaluateOne_DoesNotReorderInput(t *testing.T) {
	items := []news.Item{item("gaza old", 10), item("gaza new", 1)}
	EvaluateOne(Monitor{ID: "a", Keywords: []string{"gaza"}}, items)
	assert.Equal(t, "gaza old", items[0].Title)
}

func TestEvaluate_AddingMonitorLeavesOthersUnchanged(t *testing.T) {
	items := []news.Item{
		item("China tariffs widen", 3),
		item("Fed holds rates", 2),
		item("China and Fed talk", 1),
	}
	monitors := List{
		{ID: "china", Keywords: []string{"china"}},
		{ID: "fed", Keywords: []string{"fed"}},
	}
	before := Evaluate(monitors, items)

	added, err := monitors.Add(Monitor{ID: "tariffs", Keywords: []string{"tariffs"}})
	require.NoError(t, err)
	after := Evaluate(added, items)

	assert.Equal(t, before["china"], after["china"])
	assert.Equal(t, before["fed"], after["fed"])
	require.Len(t, after["tariffs"], 1)
	assert.Len(t, monitors, 2, "Add must not mutate the receiver")
}

func TestList_UpdateRemove(t *testing.T) {
	l := List{{ID: "a", Keywords: []string{"x"}, Color: "#111"}, {ID: "b", Keywords: []string{"y"}}}

	updated, err := l.Update("a", []string{"z"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, updated[0].Keywords)
	assert.Equal(t, "#111", updated[0].Color)
	assert.Equal(t, []string{"x"}, l[0].Keywords)

	_, err = l.Update("missing", []string{"z"}, "")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = l.Update("a", nil, "")
	assert.ErrorIs(t, err, ErrEmptyKeywords)

	removed, err := l.Remove("a")
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Equal(t, "b", removed[0].ID)
	assert.Len(t, l, 2)

	_, err = l.Remove("a-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_NextColorCycles(t *testing.T) {
	var l List
	assert.Equal(t, DefaultColors[0], l.NextColor())
	for range DefaultColors {
		l = append(l, Monitor{ID: "x", Keywords: []string{"k"}})
	}
	assert.Equal(t, DefaultColors[0], l.NextColor())
}

func TestEvaluateOne_KeywordBoundaries(t *testing.T) {
	titles := []news.Item{
		item("U.S. sanctions widen", 1),
		item("C++ 26 ratified", 2),
		item("Кремль ответил", 3),
		item("Zürich talks stall", 4),
		item("Беспилотник над Кремлём", 5),
		item("Sanctionsbusting ring exposed", 6),
	}
	tests := []struct {
		keyword string
		want    []string
	}{
		{"u.s.", []string{"U.S. sanctions widen"}},
		{"c++", []string{"C++ 26 ratified"}},
		{"кремль", []string{"Кремль ответил"}},
		{"zürich", []string{"Zürich talks stall"}},
		{"sanctions", []string{"U.S. sanctions widen"}},
		{"кремл", nil},
		{"26", []string{"C++ 26 ratified"}},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			var got []string
			for _, it := range EvaluateOne(Monitor{ID: "m", Keywords: []string{tt.keyword}}, titles) {
				got = append(got, it.Title)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
