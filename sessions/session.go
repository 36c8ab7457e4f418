package sessions

import "github.com/jrsteele09/gastometro/users"

// Session is the authentication state of the client. IsAuthenticated only reflects
// whether an access token is held; the token is never validated locally.
type Session struct {
	IsAuthenticated bool
	User            users.Profile // nil when unknown
}

// Credentials are what a successful sign in hands to Login. Empty fields are not persisted.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	User         users.Profile
}

// Service owns the session. Pages and the router receive it by injection and only
// change it through Login and Logout.
type Service interface {
	// Current returns a snapshot of the session
	Current() Session

	// Login persists the credentials and marks the session authenticated
	Login(creds Credentials) error

	// Logout removes every persisted credential and resets the session
	Logout() error

	// Subscribe registers fn to be called after every change. The returned function unsubscribes.
	Subscribe(fn func(Session)) (unsubscribe func())
}
