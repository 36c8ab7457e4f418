package auth_test

import (
	"strings"
	"testing"

	"github.com/jrsteele09/gastometro/auth"
	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/stretchr/testify/require"
)

func TestGetPasswordChecks(t *testing.T) {
	t.Run("all rules hold", func(t *testing.T) {
		checks := auth.GetPasswordChecks("Abcdef1!")
		require.Equal(t, auth.PasswordChecks{Length: true, Uppercase: true, Lowercase: true, Number: true, Symbol: true}, checks)
		require.True(t, checks.Valid())
	})

	t.Run("lowercase only", func(t *testing.T) {
		checks := auth.GetPasswordChecks("abcdefgh")
		require.Equal(t, auth.PasswordChecks{Length: true, Lowercase: true}, checks)
		require.False(t, checks.Valid())
	})

	t.Run("too short", func(t *testing.T) {
		checks := auth.GetPasswordChecks("Ab1!")
		require.False(t, checks.Length)
		require.True(t, checks.Uppercase && checks.Lowercase && checks.Number && checks.Symbol)
		require.False(t, checks.Valid())
	})

	t.Run("space and accents count as symbols", func(t *testing.T) {
		require.True(t, auth.GetPasswordChecks("a b").Symbol)
		require.True(t, auth.GetPasswordChecks("contraseñA1").Symbol)
	})

	t.Run("empty", func(t *testing.T) {
		require.Equal(t, auth.PasswordChecks{}, auth.GetPasswordChecks(""))
	})
}

func TestValidUsername(t *testing.T) {
	tests := []struct {
		username string
		valid    bool
	}{
		{"ab", false},
		{"ab cd", false},
		{"valid_user.1", true},
		{"  abcd  ", true},
		{"abc", false},
		{strings.Repeat("a", 80), true},
		{strings.Repeat("a", 81), false},
		{"usuario-1", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			require.Equal(t, tt.valid, auth.ValidUsername(tt.username))
		})
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"a@b.com", true},
		{"a@b", false},
		{"", false},
		{"   ", false},
		{"a b@c.com", false},
		{"a@@b.com", false},
		{" ana@example.pe ", true},
		{strings.Repeat("a", 142) + "@b.com.pe", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			require.Equal(t, tt.valid, auth.ValidEmail(tt.email))
		})
	}
}

func TestValidateSignIn(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		errs := auth.ValidateSignIn(auth.SignInForm{Usuario: " ana_1 ", Password: "whatever1"})
		require.Empty(t, errs)
		require.NoError(t, errs.Err())
	})

	t.Run("short fields", func(t *testing.T) {
		errs := auth.ValidateSignIn(auth.SignInForm{Usuario: "ab", Password: "short"})
		require.Equal(t, auth.FieldErrors{
			auth.FieldUsuario:  auth.MsgUsuarioLength,
			auth.FieldPassword: auth.MsgPasswordLength,
		}, errs)
		require.ErrorIs(t, errs.Err(), errors.ErrValidation)
	})

	t.Run("password too long", func(t *testing.T) {
		errs := auth.ValidateSignIn(auth.SignInForm{Usuario: "ana_1", Password: strings.Repeat("x", 129)})
		require.Equal(t, auth.MsgPasswordLength, errs[auth.FieldPassword])
	})
}

func TestValidateSignUp(t *testing.T) {
	valid := auth.SignUpForm{
		NombreApellido: "Ana Pérez",
		Usuario:        "ana.perez",
		Email:          "ana@example.com",
		Telefono:       "999888777",
		Password:       "Abcdef1!",
	}

	t.Run("valid", func(t *testing.T) {
		require.Empty(t, auth.ValidateSignUp(valid))
	})

	t.Run("username too short", func(t *testing.T) {
		form := valid
		form.Usuario = "ab"
		require.Equal(t, auth.FieldErrors{auth.FieldUsuario: auth.MsgUsuarioLength}, auth.ValidateSignUp(form))
	})

	t.Run("username bad characters", func(t *testing.T) {
		form := valid
		form.Usuario = "ana perez"
		require.Equal(t, auth.FieldErrors{auth.FieldUsuario: auth.MsgUsuarioPattern}, auth.ValidateSignUp(form))
	})

	t.Run("every field invalid", func(t *testing.T) {
		form := auth.SignUpForm{
			NombreApellido: "Al",
			Usuario:        "a",
			Email:          "a@b",
			Telefono:       strings.Repeat("9", 51),
			Password:       "abcdefgh",
			IsAdmin:        true,
		}
		errs := auth.ValidateSignUp(form)
		require.Len(t, errs, 6)
		require.Equal(t, auth.MsgRolRequired, errs[auth.FieldRol])
		require.Equal(t, auth.MsgPasswordStrength, errs[auth.FieldPassword])
	})

	t.Run("admin with role", func(t *testing.T) {
		form := valid
		form.IsAdmin = true
		form.Rol = "ADMIN"
		require.Empty(t, auth.ValidateSignUp(form))
	})
}

func TestValidatePasswordReset(t *testing.T) {
	t.Run("request needs only email", func(t *testing.T) {
		require.Empty(t, auth.ValidatePasswordReset(auth.ResetStepRequest, auth.PasswordResetForm{Email: "a@b.com"}))
	})

	t.Run("verify needs code", func(t *testing.T) {
		errs := auth.ValidatePasswordReset(auth.ResetStepVerify, auth.PasswordResetForm{Email: "a@b.com", Code: "  "})
		require.Equal(t, auth.FieldErrors{auth.FieldCode: auth.MsgCodeRequired}, errs)
	})

	t.Run("confirm needs password length only", func(t *testing.T) {
		errs := auth.ValidatePasswordReset(auth.ResetStepConfirm, auth.PasswordResetForm{Email: "a@b.com", Code: "123456", Password: "short"})
		require.Equal(t, auth.FieldErrors{auth.FieldPassword: auth.MsgNewPasswordLength}, errs)

		errs = auth.ValidatePasswordReset(auth.ResetStepConfirm, auth.PasswordResetForm{Email: "a@b.com", Code: "123456", Password: "longenough"})
		require.Empty(t, errs)
	})

	t.Run("steps cycle", func(t *testing.T) {
		require.Equal(t, auth.ResetStepVerify, auth.ResetStepRequest.Next())
		require.Equal(t, auth.ResetStepConfirm, auth.ResetStepVerify.Next())
		require.Equal(t, auth.ResetStepRequest, auth.ResetStepConfirm.Next())
	})
}
