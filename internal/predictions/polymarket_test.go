package predictions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const marketsJSON = `[
  {"question": "Will X happen?", "outcomePrices": "[\"0.62\", \"0.38\"]", "volume": "125000.5", "slug": "will-x"},
  {"question": "   ", "outcomePrices": "[\"0.1\", \"0.9\"]", "volume": 1},
  {"question": "No prices yet", "volume": 42}
]`

func TestClient_Markets(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/markets", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("closed"))
		assert.Equal(t, "volume", r.URL.Query().Get("order"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		w.Write([]byte(marketsJSON))
	}))
	defer srv.Close()

	markets, err := NewClient(srv.URL, srv.Client(), 5).Markets(context.Background())
	require.NoError(t, err)
	require.Len(t, markets, 2)

	assert.Equal(t, "Will X happen?", markets[0].Question)
	assert.InDelta(t, 0.62, markets[0].YesPrice, 1e-9)
	assert.InDelta(t, 62, markets[0].YesPercent(), 1e-9)
	assert.InDelta(t, 125000.5, markets[0].Volume, 1e-9)
	assert.Equal(t, "https://polymarket.com/event/will-x", markets[0].URL)

	assert.InDelta(t, 0.5, markets[1].YesPrice, 1e-9, "missing prices default to even odds")
	assert.Empty(t, markets[1].URL)
}

func TestClient_MarketsErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusBadGateway, `{}`},
		{"not an array", http.StatusOK, `{"markets": []}`},
		{"invalid json", http.StatusOK, `[{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, srv.Client(), 0).Markets(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "polymarket")
		})
	}
}
