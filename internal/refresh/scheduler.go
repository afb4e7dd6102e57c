package refresh

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"worldmonitor/internal/markets"
	"worldmonitor/internal/news"
	"worldmonitor/internal/predictions"
	"worldmonitor/internal/quakes"
	"worldmonitor/internal/telemetry"
)

// NewsSource fetches one news category.
type NewsSource interface {
	FetchCategory(ctx context.Context, c news.Category) ([]news.Item, error)
}

// MarketSource fetches the four market panels.
type MarketSource interface {
	StockQuotes(ctx context.Context) ([]markets.Quote, error)
	SectorChanges(ctx context.Context) ([]markets.SectorChange, error)
	CommodityQuotes(ctx context.Context) ([]markets.Quote, error)
	CryptoPrices(ctx context.Context) ([]markets.Coin, error)
}

// PredictionSource fetches prediction markets.
type PredictionSource interface {
	Markets(ctx context.Context) ([]predictions.Market, error)
}

// QuakeSource fetches recent earthquakes.
type QuakeSource interface {
	Earthquakes(ctx context.Context) ([]quakes.Quake, error)
}

// Sources are the fetchers behind each group. A nil source makes its jobs
// fail with ErrNoSource.
type Sources struct {
	News        NewsSource
	Categories  []news.Category
	Markets     MarketSource
	Predictions PredictionSource
	Quakes      QuakeSource
}

// ErrNoSource is returned by jobs whose source is not configured.
var ErrNoSource = errors.New("source not configured")

// Sink receives results as they arrive. Apply may be called from several
// goroutines at once.
type Sink interface {
	Apply(Result)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Result)

// Apply implements Sink.
func (f SinkFunc) Apply(r Result) { f(r) }

// Job fetches one result.
type Job func(ctx context.Context) Result

// DefaultIntervals returns the refresh period of each group.
func DefaultIntervals() map[Group]time.Duration {
	return map[Group]time.Duration{
		GroupNews:        5 * time.Minute,
		GroupMarkets:     time.Minute,
		GroupPredictions: 5 * time.Minute,
		GroupEarthquakes: 5 * time.Minute,
	}
}

// Scheduler runs the groups on independent timers. Runs are never
// cancelled once started and nothing orders their completion: the last
// result to arrive wins.
type Scheduler struct {
	Sources   Sources
	Intervals map[Group]time.Duration
	// Emitter, if set, receives progress events.
	Emitter Emitter

	now func() time.Time
}

// NewScheduler returns a scheduler with the default intervals.
func NewScheduler(src Sources) *Scheduler {
	return &Scheduler{Sources: src, Intervals: DefaultIntervals(), now: time.Now}
}

// Run starts every group at once, then re-runs each on its own ticker until
// ctx is done. It returns ctx.Err().
func (s *Scheduler) Run(ctx context.Context, sink Sink) error {
	var wg sync.WaitGroup
	for _, g := range Groups() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.loop(ctx, g, sink)
		}()
	}
	wg.Wait()
	return ctx.Err()
}

func (s *Scheduler) loop(ctx context.Context, g Group, sink Sink) {
	run := func() {
		// In-flight runs outlive ctx; per-request timeouts bound them.
		go s.RunGroup(context.WithoutCancel(ctx), g, sink)
	}
	run()

	interval := s.Intervals[g]
	if interval <= 0 {
		log.Printf("refresh.loop: [%s] no interval configured, running once", g)
		<-ctx.Done()
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}

// RunAll runs every group concurrently and waits for all of them. A failing
// group never stops the others.
func (s *Scheduler) RunAll(ctx context.Context, sink Sink) {
	var wg sync.WaitGroup
	for _, g := range Groups() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.RunGroup(ctx, g, sink)
		}()
	}
	wg.Wait()
}

// RunGroup runs one group to completion, applying each result as soon as it
// is available.
func (s *Scheduler) RunGroup(ctx context.Context, g Group, sink Sink) {
	ctx, span := telemetry.Start(ctx, "refresh."+string(g), map[string]string{"group": string(g)})
	defer span.End()
	s.emit(Event{Group: g, Key: string(g), State: StateRunning, Message: "refresh started"})

	apply := func(r Result) {
		s.report(r)
		sink.Apply(r)
	}
	if g == GroupNews {
		s.RunNewsPass(ctx, apply)
		return
	}

	jobs := s.Jobs(g)
	var wg sync.WaitGroup
	for _, job := range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			apply(job(ctx))
		}()
	}
	wg.Wait()
}

// RunNewsPass fetches the categories one after another, applying each, and
// closes with a NewsPassResult carrying the combined list.
func (s *Scheduler) RunNewsPass(ctx context.Context, apply func(Result)) {
	var acc []news.Item
	var failed []string
	for i := range s.Sources.Categories {
		r := s.NewsStep(ctx, i)
		apply(r)
		if r.Err != nil {
			failed = append(failed, r.Category)
			continue
		}
		acc = append(acc, r.Items...)
	}
	apply(s.FinishNewsPass(acc, failed))
}

// NewsCategories returns the number of categories in a news pass.
func (s *Scheduler) NewsCategories() int {
	return len(s.Sources.Categories)
}

// NewsStep fetches category i of the pass.
func (s *Scheduler) NewsStep(ctx context.Context, i int) NewsResult {
	cats := s.Sources.Categories
	r := NewsResult{Index: i, Total: len(cats)}
	if i < 0 || i >= len(cats) {
		r.Err = fmt.Errorf("news category %d out of range", i)
		r.FetchedAt = s.clock()
		return r
	}
	cat := cats[i]
	r.Category = cat.Key
	ctx, span := telemetry.Start(ctx, "fetch.news", map[string]string{"category": cat.Key})
	if s.Sources.News == nil {
		r.Err = fmt.Errorf("news %s: %w", cat.Key, ErrNoSource)
	} else {
		r.Items, r.Err = s.Sources.News.FetchCategory(ctx, cat)
	}
	telemetry.End(span, r.Err)
	r.FetchedAt = s.clock()
	return r
}

// FinishNewsPass builds the closing result of a pass from the accumulated
// items. failed lists the categories that errored.
func (s *Scheduler) FinishNewsPass(acc []news.Item, failed []string) NewsPassResult {
	items := news.Dedupe(acc)
	news.SortNewest(items)
	return NewsPassResult{
		Outcome: Outcome{FetchedAt: s.clock()},
		Items:   items,
		Failed:  failed,
	}
}

// Jobs returns the independent fetches of a non-news group.
func (s *Scheduler) Jobs(g Group) []Job {
	src := s.Sources
	switch g {
	case GroupMarkets:
		return []Job{
			s.job("stocks", func(ctx context.Context) Result {
				r := StocksResult{}
				if src.Markets == nil {
					r.Err = ErrNoSource
					return r
				}
				r.Quotes, r.Err = src.Markets.StockQuotes(ctx)
				return r
			}),
			s.job("sectors", func(ctx context.Context) Result {
				r := SectorsResult{}
				if src.Markets == nil {
					r.Err = ErrNoSource
					return r
				}
				r.Sectors, r.Err = src.Markets.SectorChanges(ctx)
				return r
			}),
			s.job("commodities", func(ctx context.Context) Result {
				r := CommoditiesResult{}
				if src.Markets == nil {
					r.Err = ErrNoSource
					return r
				}
				r.Quotes, r.Err = src.Markets.CommodityQuotes(ctx)
				return r
			}),
			s.job("crypto", func(ctx context.Context) Result {
				r := CryptoResult{}
				if src.Markets == nil {
					r.Err = ErrNoSource
					return r
				}
				r.Coins, r.Err = src.Markets.CryptoPrices(ctx)
				return r
			}),
		}
	case GroupPredictions:
		return []Job{s.job("predictions", func(ctx context.Context) Result {
			r := PredictionsResult{}
			if src.Predictions == nil {
				r.Err = ErrNoSource
				return r
			}
			r.Markets, r.Err = src.Predictions.Markets(ctx)
			return r
		})}
	case GroupEarthquakes:
		return []Job{s.job("earthquakes", func(ctx context.Context) Result {
			r := QuakesResult{}
			if src.Quakes == nil {
				r.Err = ErrNoSource
				return r
			}
			r.Quakes, r.Err = src.Quakes.Earthquakes(ctx)
			return r
		})}
	default:
		return nil
	}
}

// job wraps fetch with a span and stamps the result time.
func (s *Scheduler) job(name string, fetch func(context.Context) Result) Job {
	return func(ctx context.Context) Result {
		ctx, span := telemetry.Start(ctx, "fetch."+name, nil)
		r := fetch(ctx)
		telemetry.End(span, r.Failure())
		return stamp(r, s.clock())
	}
}

// stamp sets FetchedAt on the concrete result.
func stamp(r Result, at time.Time) Result {
	switch v := r.(type) {
	case StocksResult:
		v.FetchedAt = at
		return v
	case SectorsResult:
		v.FetchedAt = at
		return v
	case CommoditiesResult:
		v.FetchedAt = at
		return v
	case CryptoResult:
		v.FetchedAt = at
		return v
	case PredictionsResult:
		v.FetchedAt = at
		return v
	case QuakesResult:
		v.FetchedAt = at
		return v
	}
	return r
}

func (s *Scheduler) report(r Result) {
	ev := Event{Group: r.Group(), Key: r.Key(), State: StateDone}
	if err := r.Failure(); err != nil {
		ev.State, ev.Message = StateError, err.Error()
		log.Printf("refresh: [%s] %s failed: %v", r.Group(), r.Key(), err)
	}
	s.emit(ev)
}

func (s *Scheduler) emit(ev Event) {
	if s.Emitter != nil {
		s.Emitter.Emit(ev)
	}
}

func (s *Scheduler) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}
