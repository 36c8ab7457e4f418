package pages

import (
	"time"

	"github.com/jrsteele09/gastometro/sessions"
	"github.com/jrsteele09/gastometro/users"
)

// ClaimsReader decodes the stored access token
type ClaimsReader interface {
	Claims() (*sessions.TokenClaims, error)
}

// ProfileView is what the profile screen shows.
type ProfileView struct {
	Authenticated bool
	Label         string
	Username      string
	Email         string
	Phone         string
	Role          users.RoleType
	Subject       string
	ExpiresAt     time.Time // zero when the token is opaque or carries no expiry
}

// ProfilePage shows the signed in user.
type ProfilePage struct {
	session sessions.Service
	claims  ClaimsReader
}

// NewProfilePage creates the page. claims may be nil.
func NewProfilePage(session sessions.Service, claims ClaimsReader) *ProfilePage {
	return &ProfilePage{session: session, claims: claims}
}

func (p *ProfilePage) View() ProfileView {
	current := p.session.Current()
	view := ProfileView{
		Authenticated: current.IsAuthenticated,
		Label:         current.User.Label(),
		Username:      current.User.Username(),
		Email:         current.User.Email(),
		Phone:         current.User.Phone(),
		Role:          current.User.Role(),
	}
	if p.claims == nil || !current.IsAuthenticated {
		return view
	}
	if claims, err := p.claims.Claims(); err == nil {
		view.Subject = claims.Subject
		view.ExpiresAt = claims.ExpiresAt
	}
	return view
}
