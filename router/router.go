// Package router keeps track of the current screen and guards protected screens
// against unauthenticated sessions.
package router

import (
	"sync"

	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/sessions"
	"github.com/rs/zerolog/log"
)

// Router holds the current route. Protected routes are refused before they are
// committed, so a protected route is never current while the session is anonymous.
type Router struct {
	session sessions.Service

	mu              sync.RWMutex
	current         Route
	redirectMessage string
	unsubscribe     func()
}

// New starts on the dashboard when session is authenticated, on login otherwise, and
// follows later session changes.
func New(session sessions.Service) *Router {
	r := &Router{
		session: session,
		current: RouteLogin,
	}
	if session.Current().IsAuthenticated {
		r.current = RouteDashboard
	}
	r.unsubscribe = session.Subscribe(r.onSessionChange)
	return r
}

// Close stops following session changes.
func (r *Router) Close() {
	r.mu.Lock()
	unsubscribe := r.unsubscribe
	r.unsubscribe = nil
	r.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Navigate clears the redirect message and moves to next, or to login with the
// redirect message when next is protected and the session is anonymous. The committed
// route is returned.
func (r *Router) Navigate(next Route) (Route, error) {
	if !Known(next) {
		return r.Current(), unknownRoute(next)
	}

	authenticated := r.session.Current().IsAuthenticated

	r.mu.Lock()
	defer r.mu.Unlock()

	r.redirectMessage = ""
	if IsProtected(next) && !authenticated {
		log.Debug().Str("route", string(next)).Msg("protected route refused, redirecting to login")
		r.current = RouteLogin
		r.redirectMessage = RedirectMessage
		return r.current, nil
	}
	r.current = next
	return r.current, nil
}

func (r *Router) Current() Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// RedirectMessage is empty unless the last transition was a refused protected route.
func (r *Router) RedirectMessage() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.redirectMessage
}

// Layout returns the layout of the current route.
func (r *Router) Layout() string {
	if r.Current() == RouteDashboard {
		return LayoutDashboard
	}
	return LayoutContainer
}

func (r *Router) onSessionChange(session sessions.Session) {
	if session.IsAuthenticated {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if IsProtected(r.current) {
		r.current = RouteLogin
		r.redirectMessage = RedirectMessage
	}
}

func unknownRoute(route Route) error {
	return errors.Wrapf(errors.ErrUnknownRoute, "[Navigate] %q", string(route))
}
