// Package balance wraps the /balance endpoints.
package balance

import (
	"context"
	"encoding/json"

	"github.com/jrsteele09/gastometro/httpclient"
	"github.com/tidwall/gjson"
)

const (
	totalsPath  = "/balance"
	monthlyPath = "/balance/mensual"
)

// Getter is the part of the HTTP client the balance API needs
type Getter interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
}

// Totals are the aggregate figures of a user, or of everyone when no user was given.
type Totals struct {
	TotalIngresos    float64 `json:"totalIngresos"`
	TotalGastos      float64 `json:"totalGastos"`
	TotalMovilidades float64 `json:"totalMovilidades"`
	Balance          float64 `json:"balance"`
}

// ParseTotals reads the totals leniently: missing fields are zero and numeric strings
// are accepted, since decimal columns often arrive quoted.
func ParseTotals(data []byte) Totals {
	root := gjson.ParseBytes(data)
	return Totals{
		TotalIngresos:    root.Get("totalIngresos").Float(),
		TotalGastos:      root.Get("totalGastos").Float(),
		TotalMovilidades: root.Get("totalMovilidades").Float(),
		Balance:          root.Get("balance").Float(),
	}
}

type TotalsQuery struct {
	UserID string
}

type MonthlyQuery struct {
	Year   int
	Month  int
	UserID string
}

// API wraps the /balance endpoints
type API struct {
	client Getter
}

func NewAPI(client Getter) *API {
	return &API{client: client}
}

// Totals calls GET /balance, with ?userId= only when a user is given.
func (a *API) Totals(ctx context.Context, q TotalsQuery) (*Totals, error) {
	query := &httpclient.Query{}
	query.Add("userId", q.UserID)

	data, err := a.client.Get(ctx, query.Path(totalsPath))
	if err != nil {
		return nil, err
	}
	totals := ParseTotals(data)
	return &totals, nil
}

// Monthly calls GET /balance/mensual. The "?" is sent even when no parameter is set.
func (a *API) Monthly(ctx context.Context, q MonthlyQuery) (json.RawMessage, error) {
	query := &httpclient.Query{}
	query.AddInt("year", q.Year).AddInt("month", q.Month).Add("userId", q.UserID)

	return a.client.Get(ctx, monthlyPath+"?"+query.Encode())
}
