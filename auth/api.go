package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jrsteele09/gastometro/users"
)

// Auth endpoints
const (
	PathSignIn               = "/auth/signin"
	PathSignUp               = "/auth/signup"
	PathPasswordResetRequest = "/auth/password-reset/request"
	PathPasswordResetVerify  = "/auth/password-reset/verify"
	PathPasswordResetConfirm = "/auth/password-reset/confirm"
)

// Poster is the part of the HTTP client the auth API needs
type Poster interface {
	PostJSON(ctx context.Context, path string, body, dst any) error
}

type SignInRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// TokenResponse is the sign in response. Every field is optional.
type TokenResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         users.Profile `json:"user"`
}

type SignUpRequest struct {
	NombreApellido string `json:"nombre_apellido"`
	Usuario        string `json:"usuario"`
	Email          string `json:"email"`
	Telefono       string `json:"telefono,omitempty"`
	Password       string `json:"password"`
	Rol            string `json:"rol,omitempty"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetVerify struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type PasswordResetConfirm struct {
	Email    string `json:"email"`
	Code     string `json:"code"`
	Password string `json:"password"`
}

// API wraps the /auth endpoints
type API struct {
	client Poster
}

func NewAPI(client Poster) *API {
	return &API{client: client}
}

func (a *API) SignIn(ctx context.Context, req SignInRequest) (*TokenResponse, error) {
	var resp TokenResponse
	if err := a.client.PostJSON(ctx, PathSignIn, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignUp registers a user and returns the raw response body.
func (a *API) SignUp(ctx context.Context, req SignUpRequest) (json.RawMessage, error) {
	return a.post(ctx, PathSignUp, req)
}

func (a *API) RequestPasswordReset(ctx context.Context, req PasswordResetRequest) (json.RawMessage, error) {
	return a.post(ctx, PathPasswordResetRequest, req)
}

func (a *API) VerifyPasswordReset(ctx context.Context, req PasswordResetVerify) (json.RawMessage, error) {
	return a.post(ctx, PathPasswordResetVerify, req)
}

func (a *API) ConfirmPasswordReset(ctx context.Context, req PasswordResetConfirm) (json.RawMessage, error) {
	return a.post(ctx, PathPasswordResetConfirm, req)
}

func (a *API) post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	var resp json.RawMessage
	if err := a.client.PostJSON(ctx, path, body, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// String hides the password when a request is logged.
func (r SignInRequest) String() string {
	return fmt.Sprintf("SignInRequest{Usuario:%q}", r.Usuario)
}
