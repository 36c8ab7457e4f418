// Package dashboard loads the figures shown on the dashboard: totals, the latest
// expenses, the top districts and the monthly expense series.
package dashboard

import (
	"context"
	"encoding/json"

	"github.com/jrsteele09/gastometro/httpclient"
)

const summaryPath = "/dashboard/summary"

// Getter is the part of the HTTP client the dashboard API needs
type Getter interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
}

// SummaryQuery parameters are omitted when zero.
type SummaryQuery struct {
	Year        int
	Month       int
	TopLimit    int
	LatestLimit int
	UserID      string
}

// API wraps the /dashboard endpoints
type API struct {
	client Getter
}

func NewAPI(client Getter) *API {
	return &API{client: client}
}

// Summary calls GET /dashboard/summary with parameters in the order year, month,
// topLimit, latestLimit, userId.
func (a *API) Summary(ctx context.Context, q SummaryQuery) (*Summary, error) {
	query := &httpclient.Query{}
	query.AddInt("year", q.Year).
		AddInt("month", q.Month).
		AddInt("topLimit", q.TopLimit).
		AddInt("latestLimit", q.LatestLimit).
		Add("userId", q.UserID)

	data, err := a.client.Get(ctx, query.Path(summaryPath))
	if err != nil {
		return nil, err
	}
	summary := ParseSummary(data)
	return &summary, nil
}
