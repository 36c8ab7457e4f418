package pages

import (
	"context"
	"sync"
	"time"

	"github.com/jrsteele09/gastometro/dashboard"
	"github.com/jrsteele09/gastometro/internal/config"
	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/sessions"
	"github.com/jrsteele09/gastometro/users"
)

// DashboardLoader loads the dashboard figures
type DashboardLoader interface {
	Load(ctx context.Context, viewer users.Profile, f dashboard.Filters) (*dashboard.Result, error)
}

// DashboardView is everything the dashboard screen renders.
type DashboardView struct {
	Admin         bool
	Filters       dashboard.Filters
	PeriodLabel   string
	UserLabel     string
	UserOptions   []dashboard.Option
	YearOptions   []int
	Data          dashboard.Data
	Bars          []dashboard.MonthBar
	BarsMax       float64
	BarsTotal     float64
	Status        Status
	UsingFallback bool
}

// DashboardPage shows the placeholder data until the first successful load.
type DashboardPage struct {
	loader  DashboardLoader
	users   users.Lister
	session sessions.Service
	now     func() time.Time

	mu       sync.RWMutex
	filters  dashboard.Filters
	data     dashboard.Data
	fallback bool
	userList []users.Profile
	status   Status
}

func NewDashboardPage(loader DashboardLoader, lister users.Lister, session sessions.Service, cfg config.DashboardConfig, now func() time.Time) *DashboardPage {
	return &DashboardPage{
		loader:   loader,
		users:    lister,
		session:  session,
		now:      now,
		filters:  dashboard.DefaultFilters(now(), cfg),
		data:     dashboard.FallbackData(),
		fallback: true,
	}
}

func (p *DashboardPage) viewer() users.Profile {
	return p.session.Current().User
}

// SetPeriod selects the year and month shown.
func (p *DashboardPage) SetPeriod(year, month int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filters.Year = year
	p.filters.Month = month
}

// SelectUser scopes an admin's dashboard to a user; dashboard.GlobalOption or "" means everyone.
// Non-admins cannot change scope.
func (p *DashboardPage) SelectUser(value string) {
	if !p.viewer().IsAdmin() {
		return
	}
	if value == dashboard.GlobalOption {
		value = ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filters.UserID = value
}

// LoadUsers fills the admin user selector. Failures leave only Global and a warning.
func (p *DashboardPage) LoadUsers(ctx context.Context) error {
	if !p.viewer().IsAdmin() {
		p.mu.Lock()
		p.userList = nil
		p.mu.Unlock()
		return nil
	}

	list, err := p.users.List(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.userList = nil
		p.status = Status{Type: StatusWarning, Message: errors.Message(err, dashboard.UsersFallbackMessage)}
		return err
	}
	p.userList = list
	return nil
}

// Refresh reloads the figures for the current filters. A load superseded by a newer
// Refresh returns errors.ErrStale and leaves the page untouched.
func (p *DashboardPage) Refresh(ctx context.Context) error {
	viewer := p.viewer()

	p.mu.Lock()
	p.status = Status{}
	p.filters = p.filters.ScopedTo(viewer)
	filters := p.filters
	p.mu.Unlock()

	result, err := p.loader.Load(ctx, viewer, filters)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.data = result.Data
	p.fallback = result.Fallback
	if result.Warning != "" {
		p.status = Status{Type: StatusWarning, Message: result.Warning}
	}
	return nil
}

// Logout ends the session; the router moves away from the dashboard.
func (p *DashboardPage) Logout() error {
	return p.session.Logout()
}

func (p *DashboardPage) View() DashboardView {
	viewer := p.viewer()
	admin := viewer.IsAdmin()

	p.mu.RLock()
	defer p.mu.RUnlock()

	options := dashboard.UserOptions(p.userList, viewer)
	bars := dashboard.SemesterWindow(p.data.MovilidadesByMonth, p.filters.Month)

	return DashboardView{
		Admin:         admin,
		Filters:       p.filters,
		PeriodLabel:   dashboard.MonthLabel(p.filters.Month),
		UserLabel:     dashboard.SelectedUserLabel(admin, p.filters.UserID, options, viewer),
		UserOptions:   options,
		YearOptions:   dashboard.YearOptions(p.now()),
		Data:          p.data,
		Bars:          bars,
		BarsMax:       dashboard.MaxTotal(bars),
		BarsTotal:     dashboard.SumTotal(bars),
		Status:        p.status,
		UsingFallback: p.fallback,
	}
}
