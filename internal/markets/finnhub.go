package markets

import (
	"context"
	"fmt"
	"net/http"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// FinnhubSource implements QuoteSource with the Finnhub quote endpoint.
type FinnhubSource struct {
	api *finnhub.DefaultApiService
}

// NewFinnhubSource authenticates with apiKey. httpClient may be nil.
func NewFinnhubSource(apiKey string, httpClient *http.Client) (*FinnhubSource, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("finnhub: API key cannot be empty")
	}
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &FinnhubSource{api: finnhub.NewAPIClient(cfg).DefaultApi}, nil
}

// Quote implements QuoteSource.
func (s *FinnhubSource) Quote(ctx context.Context, symbol string) (Quote, error) {
	res, _, err := s.api.Quote(ctx).Symbol(symbol).Execute()
	if err != nil {
		return Quote{}, fmt.Errorf("finnhub quote: %w", err)
	}
	// Finnhub answers unknown symbols with an all-zero quote.
	if res.GetC() == 0 && res.GetPc() == 0 {
		return Quote{}, ErrNoData
	}
	return Quote{
		Symbol:        symbol,
		Price:         float64(res.GetC()),
		Change:        float64(res.GetD()),
		ChangePercent: float64(res.GetDp()),
	}, nil
}
