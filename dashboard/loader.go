package dashboard

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/jrsteele09/gastometro/balance"
	"github.com/jrsteele09/gastometro/internal/config"
	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/users"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Warning messages shown when the dashboard falls back
const (
	FallbackMessage      = "No fue posible cargar el tablero, mostramos datos de ejemplo."
	UsersFallbackMessage = "No fue posible cargar los usuarios, mostramos solo Global."
)

// TotalsFetcher reads balance totals
type TotalsFetcher interface {
	Totals(ctx context.Context, q balance.TotalsQuery) (*balance.Totals, error)
}

// SummaryFetcher reads dashboard summaries
type SummaryFetcher interface {
	Summary(ctx context.Context, q SummaryQuery) (*Summary, error)
}

// Filters select the period and the user the dashboard shows. An empty UserID means
// every user.
type Filters struct {
	Year        int
	Month       int
	TopLimit    int
	LatestLimit int
	UserID      string
}

// DefaultFilters selects now's month with the configured list limits.
func DefaultFilters(now time.Time, cfg config.DashboardConfig) Filters {
	return Filters{
		Year:        now.Year(),
		Month:       int(now.Month()),
		TopLimit:    cfg.GetTopLimit(),
		LatestLimit: cfg.GetLatestLimit(),
	}
}

// ScopedTo applies the viewer's scope: admins keep their selection, anyone else is
// pinned to their own identifier.
func (f Filters) ScopedTo(viewer users.Profile) Filters {
	if !viewer.IsAdmin() {
		f.UserID = viewer.Identifier()
	}
	return f
}

// Result of a Load. Warning is set, and Data holds the placeholder, when the load failed.
type Result struct {
	Data     Data
	Warning  string
	Fallback bool
}

// Loader fetches the dashboard. Every Load supersedes the ones still in flight.
type Loader struct {
	totals     TotalsFetcher
	summaries  SummaryFetcher
	generation atomic.Uint64
}

func NewLoader(totals TotalsFetcher, summaries SummaryFetcher) *Loader {
	return &Loader{totals: totals, summaries: summaries}
}

// Load fetches the totals, the monthly summary and the yearly series concurrently.
// The user id is only sent for admins. If any call fails the whole load falls back to
// placeholder data with a warning. A load that was superseded while in flight returns
// errors.ErrStale and no result.
func (l *Loader) Load(ctx context.Context, viewer users.Profile, f Filters) (*Result, error) {
	gen := l.generation.Add(1)

	var userParam string
	if viewer.IsAdmin() {
		userParam = f.UserID
	}

	var (
		totals  *balance.Totals
		monthly *Summary
		yearly  *Summary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = l.totals.Totals(gctx, balance.TotalsQuery{UserID: userParam})
		return err
	})
	g.Go(func() error {
		var err error
		monthly, err = l.summaries.Summary(gctx, SummaryQuery{
			Year:        f.Year,
			Month:       f.Month,
			TopLimit:    f.TopLimit,
			LatestLimit: f.LatestLimit,
			UserID:      userParam,
		})
		return err
	})
	g.Go(func() error {
		var err error
		yearly, err = l.summaries.Summary(gctx, SummaryQuery{Year: f.Year, UserID: userParam})
		return err
	})
	err := g.Wait()

	if l.generation.Load() != gen {
		log.Debug().Uint64("generation", gen).Msg("discarding superseded dashboard load")
		return nil, errors.ErrStale
	}

	if err != nil {
		log.Warn().Err(err).Msg("dashboard load failed, using placeholder data")
		return &Result{
			Data:     FallbackData(),
			Warning:  errors.Message(err, FallbackMessage),
			Fallback: true,
		}, nil
	}

	return &Result{
		Data: Data{
			Totals:             *totals,
			LatestMovilidades:  monthly.LatestMovilidades,
			TopDistritos:       monthly.TopDistritos,
			MovilidadesByMonth: yearly.MovilidadesByMonth,
		},
	}, nil
}
