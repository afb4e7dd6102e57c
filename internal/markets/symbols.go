package markets

// DefaultStocks returns index proxies followed by large caps.
func DefaultStocks() []Symbol {
	return []Symbol{
		{"SPY", "S&P 500", "SPX"},
		{"DIA", "Dow Jones", "DOW"},
		{"QQQ", "NASDAQ 100", "NDX"},
		{"AAPL", "Apple", "AAPL"},
		{"MSFT", "Microsoft", "MSFT"},
		{"NVDA", "NVIDIA", "NVDA"},
		{"GOOGL", "Alphabet", "GOOGL"},
		{"AMZN", "Amazon", "AMZN"},
		{"META", "Meta", "META"},
		{"TSM", "TSMC", "TSM"},
		{"TSLA", "Tesla", "TSLA"},
		{"JPM", "JPMorgan", "JPM"},
		{"XOM", "Exxon Mobil", "XOM"},
	}
}

// DefaultSectors returns the SPDR sector ETFs plus semiconductors.
func DefaultSectors() []Symbol {
	return []Symbol{
		{"XLK", "Tech", "XLK"},
		{"XLF", "Finance", "XLF"},
		{"XLE", "Energy", "XLE"},
		{"XLV", "Health", "XLV"},
		{"XLY", "Consumer", "XLY"},
		{"XLI", "Industrial", "XLI"},
		{"XLP", "Staples", "XLP"},
		{"XLU", "Utilities", "XLU"},
		{"XLB", "Materials", "XLB"},
		{"XLRE", "Real Est", "XLRE"},
		{"XLC", "Comms", "XLC"},
		{"SMH", "Semis", "SMH"},
	}
}

// DefaultCommodities returns exchange-traded proxies for commodity prices.
func DefaultCommodities() []Symbol {
	return []Symbol{
		{"VIXY", "VIX", "VIX"},
		{"GLD", "Gold", "GOLD"},
		{"USO", "Crude Oil", "OIL"},
		{"UNG", "Natural Gas", "NATGAS"},
		{"SLV", "Silver", "SILVER"},
		{"CPER", "Copper", "COPPER"},
	}
}
