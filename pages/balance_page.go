package pages

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jrsteele09/gastometro/balance"
	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/sessions"
)

// MsgBalanceFailed is shown when the balance cannot be loaded
const MsgBalanceFailed = "No fue posible cargar el balance."

// BalanceAPI is the part of balance.API the balance screen calls
type BalanceAPI interface {
	Totals(ctx context.Context, q balance.TotalsQuery) (*balance.Totals, error)
	Monthly(ctx context.Context, q balance.MonthlyQuery) (json.RawMessage, error)
}

var _ BalanceAPI = (*balance.API)(nil)

// BalancePage shows the totals and the monthly breakdown.
type BalancePage struct {
	api     BalanceAPI
	session sessions.Service

	mu      sync.RWMutex
	totals  balance.Totals
	monthly json.RawMessage
	status  Status
}

func NewBalancePage(api BalanceAPI, session sessions.Service) *BalancePage {
	return &BalancePage{api: api, session: session}
}

// Load fetches both views. userID is only honoured for admins.
func (p *BalancePage) Load(ctx context.Context, year, month int, userID string) error {
	if !p.session.Current().User.IsAdmin() {
		userID = ""
	}

	totals, err := p.api.Totals(ctx, balance.TotalsQuery{UserID: userID})
	if err == nil {
		var monthly json.RawMessage
		monthly, err = p.api.Monthly(ctx, balance.MonthlyQuery{Year: year, Month: month, UserID: userID})
		if err == nil {
			p.mu.Lock()
			defer p.mu.Unlock()
			p.totals = *totals
			p.monthly = monthly
			p.status = Status{}
			return nil
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.status = Status{Type: StatusError, Message: errors.Message(err, MsgBalanceFailed)}
	return err
}

func (p *BalancePage) Totals() balance.Totals {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.totals
}

// Monthly is the raw monthly breakdown as the API returned it.
func (p *BalancePage) Monthly() json.RawMessage {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.monthly
}

func (p *BalancePage) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}
