package router

// Route names a screen of the application
type Route string

// Route constants
// All screens are defined here to ensure consistency and prevent typos
const (
	// Auth Routes
	RouteLogin         Route = "login"
	RouteRegister      Route = "register"
	RoutePasswordReset Route = "password-reset"

	// Protected Routes
	RouteDashboard       Route = "dashboard"
	RouteMovilidadCreate Route = "movilidad-create"
	RouteIngresoCreate   Route = "ingreso-create"
	RouteMovilidadList   Route = "movilidad-list"
	RouteIngresoList     Route = "ingreso-list"
	RouteBalance         Route = "balance"
	RouteClientes        Route = "clientes"
	RouteDistritos       Route = "distritos"
	RouteUsuarios        Route = "usuarios"
	RoutePerfil          Route = "perfil"
)

// Layouts wrapping a screen
const (
	LayoutDashboard = "dashboard-shell"
	LayoutContainer = "container"
)

// RedirectMessage is shown on the login screen after a protected screen was refused.
const RedirectMessage = "Debes iniciar sesión para acceder a esta página."

var authRoutes = map[Route]struct{}{
	RouteLogin:         {},
	RouteRegister:      {},
	RoutePasswordReset: {},
}

var protectedRoutes = map[Route]struct{}{
	RouteDashboard:       {},
	RouteMovilidadCreate: {},
	RouteIngresoCreate:   {},
	RouteMovilidadList:   {},
	RouteIngresoList:     {},
	RouteBalance:         {},
	RouteClientes:        {},
	RouteDistritos:       {},
	RouteUsuarios:        {},
	RoutePerfil:          {},
}

// IsProtected reports whether route requires an authenticated session.
func IsProtected(route Route) bool {
	_, ok := protectedRoutes[route]
	return ok
}

// IsAuthRoute reports whether route is one of the sign in, sign up or reset screens.
func IsAuthRoute(route Route) bool {
	_, ok := authRoutes[route]
	return ok
}

// Known reports whether route names a screen.
func Known(route Route) bool {
	return IsProtected(route) || IsAuthRoute(route)
}

// Parse converts a route name typed by a user. Unknown names fail with errors.ErrUnknownRoute.
func Parse(name string) (Route, error) {
	route := Route(name)
	if !Known(route) {
		return "", unknownRoute(route)
	}
	return route, nil
}
