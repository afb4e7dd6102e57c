package news

// IntelKey is the category backed by defense and OSINT sources.
const IntelKey = "intel"

// DefaultCategories returns the nine topical categories followed by intel.
func DefaultCategories() []Category {
	return []Category{
		{Key: "politics", Name: "World / Geopolitical", Feeds: []Feed{
			{"BBC World", "https://feeds.bbci.co.uk/news/world/rss.xml"},
			{"NPR News", "https://feeds.npr.org/1001/rss.xml"},
			{"Guardian World", "https://www.theguardian.com/world/rss"},
		}},
		{Key: "middleeast", Name: "Middle East", Feeds: []Feed{
			{"BBC Middle East", "https://feeds.bbci.co.uk/news/world/middle_east/rss.xml"},
			{"Al Jazeera", "https://www.aljazeera.com/xml/rss/all.xml"},
			{"Guardian ME", "https://www.theguardian.com/world/middleeast/rss"},
		}},
		{Key: "tech", Name: "Technology", Feeds: []Feed{
			{"Hacker News", "https://hnrss.org/frontpage"},
			{"Ars Technica", "https://feeds.arstechnica.com/arstechnica/index"},
			{"The Verge", "https://www.theverge.com/rss/index.xml"},
		}},
		{Key: "ai", Name: "AI / ML", Feeds: []Feed{
			{"ArXiv AI", "https://rss.arxiv.org/rss/cs.AI"},
			{"VentureBeat AI", "https://venturebeat.com/category/ai/feed/"},
		}},
		{Key: "finance", Name: "Financial", Feeds: []Feed{
			{"CNBC", "https://www.cnbc.com/id/100003114/device/rss/rss.html"},
			{"MarketWatch", "https://feeds.marketwatch.com/marketwatch/topstories/"},
		}},
		{Key: "gov", Name: "Government", Feeds: []Feed{
			{"Federal Reserve", "https://www.federalreserve.gov/feeds/press_all.xml"},
			{"SEC", "https://www.sec.gov/news/pressreleases.rss"},
		}},
		{Key: "layoffs", Name: "Layoffs Tracker", Feeds: []Feed{
			{"TechCrunch Layoffs", "https://techcrunch.com/tag/layoffs/feed/"},
		}},
		{Key: "thinktanks", Name: "Think Tanks", Feeds: []Feed{
			{"Brookings", "https://www.brookings.edu/feed/"},
			{"CSIS", "https://www.csis.org/analysis/feed"},
		}},
		{Key: "energy", Name: "Energy & Resources", Feeds: []Feed{
			{"OilPrice", "https://oilprice.com/rss/main"},
			{"EIA Today in Energy", "https://www.eia.gov/rss/todayinenergy.xml"},
		}},
		{Key: IntelKey, Name: "Intel Feed", Feeds: []Feed{
			{"Defense One", "https://www.defenseone.com/rss/all/"},
			{"The War Zone", "https://www.twz.com/feed"},
			{"Bellingcat", "https://www.bellingcat.com/feed/"},
		}},
	}
}
