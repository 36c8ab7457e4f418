package pages

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jrsteele09/gastometro/auth"
	"github.com/jrsteele09/gastometro/router"
	"github.com/jrsteele09/gastometro/sessions"
	"github.com/jrsteele09/gastometro/users"
	"github.com/rs/zerolog/log"
)

// Status messages of the authentication screens
const (
	MsgLoginSuccess   = "Inicio de sesión correcto."
	MsgLoginFailed    = "No fue posible iniciar sesión."
	MsgSignUpSuccess  = "Registro completado."
	MsgSignUpFailed   = "No fue posible completar el registro."
	MsgResetRequested = "Te enviamos un código al correo indicado."
	MsgResetVerified  = "Código verificado. Ahora crea tu nueva contraseña."
	MsgResetConfirmed = "Contraseña actualizada. Ya puedes iniciar sesión."
	MsgResetFailed    = "Ocurrió un error inesperado."
)

// AuthAPI is the part of auth.API the authentication screens call
type AuthAPI interface {
	SignIn(ctx context.Context, req auth.SignInRequest) (*auth.TokenResponse, error)
	SignUp(ctx context.Context, req auth.SignUpRequest) (json.RawMessage, error)
	RequestPasswordReset(ctx context.Context, req auth.PasswordResetRequest) (json.RawMessage, error)
	VerifyPasswordReset(ctx context.Context, req auth.PasswordResetVerify) (json.RawMessage, error)
	ConfirmPasswordReset(ctx context.Context, req auth.PasswordResetConfirm) (json.RawMessage, error)
}

var _ AuthAPI = (*auth.API)(nil)

// LoginPage signs a user in and opens the dashboard.
type LoginPage struct {
	*Form
	api     AuthAPI
	session sessions.Service
	nav     Navigator
}

func NewLoginPage(api AuthAPI, session sessions.Service, nav Navigator) *LoginPage {
	return &LoginPage{
		Form:    NewForm(auth.FieldUsuario, auth.FieldPassword),
		api:     api,
		session: session,
		nav:     nav,
	}
}

// Submit validates locally and only then calls the API. A local validation failure
// returns errors.ErrValidation with the field errors set and no request sent.
func (p *LoginPage) Submit(ctx context.Context) error {
	return p.submit(ctx, func(ctx context.Context) error {
		form := auth.SignInForm{
			Usuario:  p.Value(auth.FieldUsuario),
			Password: p.Value(auth.FieldPassword),
		}
		if err := p.validate(auth.ValidateSignIn(form)); err != nil {
			return err
		}

		resp, err := p.api.SignIn(ctx, auth.SignInRequest{
			Usuario:  strings.TrimSpace(form.Usuario),
			Password: form.Password,
		})
		if err != nil {
			return p.fail(err, MsgLoginFailed)
		}

		if err := p.session.Login(sessions.Credentials{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
			User:         resp.User,
		}); err != nil {
			log.Warn().Err(err).Msg("session could not be fully persisted")
		}

		p.setStatus(StatusSuccess, MsgLoginSuccess)
		p.Reset()
		_, err = p.nav.Navigate(router.RouteDashboard)
		return err
	})
}

// RegisterPage creates an account and returns to the login screen.
type RegisterPage struct {
	*Form
	api     AuthAPI
	nav     Navigator
	isAdmin bool // guarded by Form.mu
}

func NewRegisterPage(api AuthAPI, nav Navigator) *RegisterPage {
	return &RegisterPage{
		Form: NewForm(auth.FieldNombreApellido, auth.FieldUsuario, auth.FieldEmail,
			auth.FieldTelefono, auth.FieldPassword, auth.FieldRol),
		api: api,
		nav: nav,
	}
}

// SetAdmin toggles registration with a role. Turning it on defaults the role to USER,
// turning it off clears it.
func (p *RegisterPage) SetAdmin(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.isAdmin = on
	switch {
	case !on:
		p.values[auth.FieldRol] = ""
	case p.values[auth.FieldRol] == "":
		p.values[auth.FieldRol] = string(users.RoleUser)
	}
}

func (p *RegisterPage) IsAdmin() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.isAdmin
}

// PasswordChecks reports the strength rules for the password typed so far.
func (p *RegisterPage) PasswordChecks() auth.PasswordChecks {
	return auth.GetPasswordChecks(p.Value(auth.FieldPassword))
}

func (p *RegisterPage) Submit(ctx context.Context) error {
	return p.submit(ctx, func(ctx context.Context) error {
		form := auth.SignUpForm{
			NombreApellido: p.Value(auth.FieldNombreApellido),
			Usuario:        p.Value(auth.FieldUsuario),
			Email:          p.Value(auth.FieldEmail),
			Telefono:       p.Value(auth.FieldTelefono),
			Password:       p.Value(auth.FieldPassword),
			Rol:            p.Value(auth.FieldRol),
			IsAdmin:        p.IsAdmin(),
		}
		if err := p.validate(auth.ValidateSignUp(form)); err != nil {
			return err
		}

		_, err := p.api.SignUp(ctx, auth.SignUpRequest{
			NombreApellido: strings.TrimSpace(form.NombreApellido),
			Usuario:        strings.TrimSpace(form.Usuario),
			Email:          strings.TrimSpace(form.Email),
			Telefono:       strings.TrimSpace(form.Telefono),
			Password:       form.Password,
			Rol:            form.Rol,
		})
		if err != nil {
			return p.fail(err, MsgSignUpFailed)
		}

		p.setStatus(StatusSuccess, MsgSignUpSuccess)
		p.Reset()
		p.mu.Lock()
		p.isAdmin = false
		p.mu.Unlock()
		_, err = p.nav.Navigate(router.RouteLogin)
		return err
	})
}

// PasswordResetPage walks through request, verify and confirm.
type PasswordResetPage struct {
	*Form
	api  AuthAPI
	nav  Navigator
	step auth.ResetStep
}

func NewPasswordResetPage(api AuthAPI, nav Navigator) *PasswordResetPage {
	return &PasswordResetPage{
		Form: NewForm(auth.FieldEmail, auth.FieldCode, auth.FieldPassword),
		api:  api,
		nav:  nav,
		step: auth.ResetStepRequest,
	}
}

// ResumeAt makes the next Submit perform step, for front ends that cannot keep the
// page alive between steps.
func (p *PasswordResetPage) ResumeAt(step auth.ResetStep) {
	p.step = step
}

// Step is the step the next Submit performs.
func (p *PasswordResetPage) Step() auth.ResetStep {
	return p.step
}

func (p *PasswordResetPage) Submit(ctx context.Context) error {
	return p.submit(ctx, func(ctx context.Context) error {
		form := auth.PasswordResetForm{
			Email:    p.Value(auth.FieldEmail),
			Code:     p.Value(auth.FieldCode),
			Password: p.Value(auth.FieldPassword),
		}
		if err := p.validate(auth.ValidatePasswordReset(p.step, form)); err != nil {
			return err
		}

		email := strings.TrimSpace(form.Email)
		code := strings.TrimSpace(form.Code)

		switch p.step {
		case auth.ResetStepRequest:
			if _, err := p.api.RequestPasswordReset(ctx, auth.PasswordResetRequest{Email: email}); err != nil {
				return p.fail(err, MsgResetFailed)
			}
			p.setStatus(StatusSuccess, MsgResetRequested)
		case auth.ResetStepVerify:
			if _, err := p.api.VerifyPasswordReset(ctx, auth.PasswordResetVerify{Email: email, Code: code}); err != nil {
				return p.fail(err, MsgResetFailed)
			}
			p.setStatus(StatusSuccess, MsgResetVerified)
		default:
			if _, err := p.api.ConfirmPasswordReset(ctx, auth.PasswordResetConfirm{Email: email, Code: code, Password: form.Password}); err != nil {
				return p.fail(err, MsgResetFailed)
			}
			p.setStatus(StatusSuccess, MsgResetConfirmed)
			p.Reset()
			p.step = auth.ResetStepRequest
			_, err := p.nav.Navigate(router.RouteLogin)
			return err
		}

		p.step = p.step.Next()
		return nil
	})
}
