package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jrsteele09/gastometro/auth"
	"github.com/jrsteele09/gastometro/balance"
	"github.com/jrsteele09/gastometro/catalog"
	"github.com/jrsteele09/gastometro/dashboard"
	"github.com/jrsteele09/gastometro/httpclient"
	"github.com/jrsteele09/gastometro/internal/config"
	"github.com/jrsteele09/gastometro/router"
	"github.com/jrsteele09/gastometro/sessions"
	"github.com/jrsteele09/gastometro/storage/file"
	"github.com/jrsteele09/gastometro/users"
	"github.com/rs/zerolog/log"
)

// app wires the session, the router and the domain APIs for one command.
type app struct {
	cfg     config.Config
	out     io.Writer
	session *sessions.Store
	router  *router.Router
	client  *httpclient.Client

	auth      *auth.API
	balance   *balance.API
	dashboard *dashboard.API
	users     *users.API
	catalog   *catalog.API
}

func newApp(c config.Config, out io.Writer) *app {
	store := file.New(c.GetSessionFile())
	session := sessions.NewStore(store)
	client := httpclient.New(c.GetAPIBaseURL(), store)
	log.Debug().Str("session_file", store.Path()).Str("api", client.BaseURL()).Msg("client configured")

	return &app{
		cfg:       c,
		out:       out,
		session:   session,
		router:    router.New(session),
		client:    client,
		auth:      auth.NewAPI(client),
		balance:   balance.NewAPI(client),
		dashboard: dashboard.NewAPI(client),
		users:     users.NewAPI(client),
		catalog:   catalog.NewAPI(client),
	}
}

func (a *app) close() {
	a.router.Close()
}

// open navigates to route and fails with the redirect message when the router refused it.
func (a *app) open(route router.Route) error {
	got, err := a.router.Navigate(route)
	if err != nil {
		return err
	}
	if got != route {
		return fmt.Errorf("%s", a.router.RedirectMessage())
	}
	return nil
}

// context is cancelled on interrupt or SIGTERM.
func (a *app) context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func (a *app) now() time.Time {
	return time.Now()
}

func (a *app) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
