package main

import (
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jrsteele09/gastometro/auth"
	"github.com/jrsteele09/gastometro/catalog"
	"github.com/jrsteele09/gastometro/dashboard"
	"github.com/jrsteele09/gastometro/pages"
	"github.com/jrsteele09/gastometro/router"
	"github.com/jrsteele09/gastometro/users"
)

type command struct {
	usage string
	run   func(a *app, args []string) error
}

var commands = map[string]command{
	"login":     {usage: "login -usuario U -password P", run: runLogin},
	"register":  {usage: "register -nombre N -usuario U -email E [-telefono T] -password P [-admin -rol ROL]", run: runRegister},
	"reset":     {usage: "reset -email E [-code C [-password P]]", run: runReset},
	"logout":    {usage: "logout", run: runLogout},
	"whoami":    {usage: "whoami", run: runWhoami},
	"dashboard": {usage: "dashboard [-year Y] [-month M] [-user ID]", run: runDashboard},
	"balance":   {usage: "balance [-year Y] [-month M] [-user ID]", run: runBalance},
	"users":     {usage: "users", run: runUsers},
	"list":      {usage: "list movilidades|ingresos|clientes|distritos", run: runList},
	"create":    {usage: "create movilidades|ingresos|clientes|distritos campo=valor...", run: runCreate},
}

func usage(out io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "Uso: gastometro <comando> [opciones]")
	for _, name := range names {
		fmt.Fprintf(out, "  %s\n", commands[name].usage)
	}
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// submitted prints the page status and field errors, then returns err.
func (a *app) submitted(form *pages.Form, err error) error {
	a.printStatus(form.Status())
	for _, field := range form.Fields() {
		if msg := form.FieldError(field); msg != "" {
			a.printf("  %s: %s\n", field, msg)
		}
	}
	return err
}

func roleNames() string {
	names := make([]string, 0, len(users.Roles))
	for _, r := range users.Roles {
		names = append(names, string(r))
	}
	return strings.Join(names, " o ")
}

func runLogin(a *app, args []string) error {
	fs := newFlagSet("login", a.out)
	usuario := fs.String("usuario", "", "usuario")
	password := fs.String("password", "", "contraseña")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.open(router.RouteLogin); err != nil {
		return err
	}

	ctx, cancel := a.context()
	defer cancel()

	page := pages.NewLoginPage(a.auth, a.session, a.router)
	page.Set(auth.FieldUsuario, *usuario)
	page.Set(auth.FieldPassword, *password)
	return a.submitted(page.Form, page.Submit(ctx))
}

func runRegister(a *app, args []string) error {
	fs := newFlagSet("register", a.out)
	nombre := fs.String("nombre", "", "nombre y apellido")
	usuario := fs.String("usuario", "", "usuario")
	email := fs.String("email", "", "correo electrónico")
	telefono := fs.String("telefono", "", "teléfono")
	password := fs.String("password", "", "contraseña")
	admin := fs.Bool("admin", false, "registrar con rol")
	rol := fs.String("rol", "", "rol: "+roleNames())
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.open(router.RouteRegister); err != nil {
		return err
	}

	ctx, cancel := a.context()
	defer cancel()

	page := pages.NewRegisterPage(a.auth, a.router)
	page.Set(auth.FieldNombreApellido, *nombre)
	page.Set(auth.FieldUsuario, *usuario)
	page.Set(auth.FieldEmail, *email)
	page.Set(auth.FieldTelefono, *telefono)
	page.Set(auth.FieldPassword, *password)
	page.Set(auth.FieldRol, strings.ToUpper(*rol))
	page.SetAdmin(*admin)

	if err := page.Submit(ctx); err != nil {
		if page.FieldError(auth.FieldPassword) != "" {
			printPasswordChecks(a, page.PasswordChecks())
		}
		return a.submitted(page.Form, err)
	}
	return a.submitted(page.Form, nil)
}

// runReset performs one step per call: the request without -code, the verification
// with -code, and verification plus confirmation when -password is also given.
func runReset(a *app, args []string) error {
	fs := newFlagSet("reset", a.out)
	email := fs.String("email", "", "correo electrónico")
	code := fs.String("code", "", "código recibido")
	password := fs.String("password", "", "nueva contraseña")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.open(router.RoutePasswordReset); err != nil {
		return err
	}

	ctx, cancel := a.context()
	defer cancel()

	page := pages.NewPasswordResetPage(a.auth, a.router)
	page.Set(auth.FieldEmail, *email)
	page.Set(auth.FieldCode, *code)
	page.Set(auth.FieldPassword, *password)
	if *code != "" {
		page.ResumeAt(auth.ResetStepVerify)
	}

	if err := page.Submit(ctx); err != nil || *code == "" || *password == "" {
		return a.submitted(page.Form, err)
	}
	a.printStatus(page.Status())
	return a.submitted(page.Form, page.Submit(ctx))
}

func runLogout(a *app, _ []string) error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	a.printf("Sesión cerrada.\n")
	return nil
}

func runWhoami(a *app, _ []string) error {
	if err := a.open(router.RoutePerfil); err != nil {
		return err
	}
	renderProfile(a, pages.NewProfilePage(a.session, a.session).View())
	return nil
}

func runDashboard(a *app, args []string) error {
	now := a.now()
	fs := newFlagSet("dashboard", a.out)
	year := fs.Int("year", now.Year(), "año")
	month := fs.Int("month", int(now.Month()), "mes (1-12)")
	user := fs.String("user", dashboard.GlobalOption, "usuario (solo administradores)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.open(router.RouteDashboard); err != nil {
		return err
	}

	ctx, cancel := a.context()
	defer cancel()

	loader := dashboard.NewLoader(a.balance, a.dashboard)
	page := pages.NewDashboardPage(loader, a.users, a.session, a.cfg, a.now)
	page.SetPeriod(*year, *month)
	page.SelectUser(*user)

	_ = page.LoadUsers(ctx)
	if err := page.Refresh(ctx); err != nil {
		return err
	}
	renderDashboard(a, page.View())
	return nil
}

func runBalance(a *app, args []string) error {
	now := a.now()
	fs := newFlagSet("balance", a.out)
	year := fs.Int("year", now.Year(), "año")
	month := fs.Int("month", int(now.Month()), "mes (1-12)")
	user := fs.String("user", "", "usuario (solo administradores)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.open(router.RouteBalance); err != nil {
		return err
	}

	ctx, cancel := a.context()
	defer cancel()

	page := pages.NewBalancePage(a.balance, a.session)
	if err := page.Load(ctx, *year, *month, *user); err != nil {
		a.printStatus(page.Status())
		return err
	}
	renderBalance(a, page)
	return nil
}

func runUsers(a *app, _ []string) error {
	if err := a.open(router.RouteUsuarios); err != nil {
		return err
	}

	ctx, cancel := a.context()
	defer cancel()

	page := pages.NewUsersPage(a.users)
	if err := page.Load(ctx); err != nil {
		a.printStatus(page.Status())
		return err
	}
	renderUsers(a, page.Users())
	return nil
}

var listRoutes = map[catalog.Resource]router.Route{
	catalog.Movilidades: router.RouteMovilidadList,
	catalog.Ingresos:    router.RouteIngresoList,
	catalog.Clientes:    router.RouteClientes,
	catalog.Distritos:   router.RouteDistritos,
}

var createRoutes = map[catalog.Resource]router.Route{
	catalog.Movilidades: router.RouteMovilidadCreate,
	catalog.Ingresos:    router.RouteIngresoCreate,
	catalog.Clientes:    router.RouteClientes,
	catalog.Distritos:   router.RouteDistritos,
}

func parseResourceArg(args []string) (catalog.Resource, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("indica un recurso: movilidades, ingresos, clientes o distritos")
	}
	return catalog.ParseResource(args[0])
}

func runList(a *app, args []string) error {
	resource, err := parseResourceArg(args)
	if err != nil {
		return err
	}
	if err := a.open(listRoutes[resource]); err != nil {
		return err
	}

	ctx, cancel := a.context()
	defer cancel()

	page := pages.NewCatalogPage(a.catalog, resource)
	if err := page.Load(ctx); err != nil {
		return a.submitted(page.Form, err)
	}
	renderRecords(a, resource.Columns(), page.Records())
	return nil
}

func runCreate(a *app, args []string) error {
	resource, err := parseResourceArg(args)
	if err != nil {
		return err
	}
	if err := a.open(createRoutes[resource]); err != nil {
		return err
	}

	ctx, cancel := a.context()
	defer cancel()

	page := pages.NewCatalogPage(a.catalog, resource)
	for _, pair := range args[1:] {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("argumento inválido %q, usa campo=valor", pair)
		}
		page.Set(key, value)
	}
	if err := page.Submit(ctx); err != nil {
		return a.submitted(page.Form, err)
	}
	a.printStatus(page.Status())
	if created := page.Created(); created != nil {
		renderRecords(a, resource.Columns(), []catalog.Record{*created})
	}
	return nil
}
