package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jrsteele09/gastometro/internal/errors"
)

var (
	// UsernamePattern restricts usernames to letters, digits, dots and underscores
	UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.]+$`)
	// EmailPattern is a loose local@domain.tld shape check
	EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	uppercasePattern = regexp.MustCompile(`[A-Z]`)
	lowercasePattern = regexp.MustCompile(`[a-z]`)
	digitPattern     = regexp.MustCompile(`\d`)
	symbolPattern    = regexp.MustCompile(`[^A-Za-z0-9]`)
)

const (
	minUsernameLength = 4
	maxUsernameLength = 80
	maxEmailLength    = 150
	minNameLength     = 3
	maxNameLength     = 150
	maxPhoneLength    = 50
	minPasswordLength = 8
	maxPasswordLength = 128
)

// PasswordChecks holds the outcome of each password strength rule
type PasswordChecks struct {
	Length    bool // at least 8 characters
	Uppercase bool
	Lowercase bool
	Number    bool
	Symbol    bool // anything outside [A-Za-z0-9]
}

// GetPasswordChecks evaluates every strength rule independently.
func GetPasswordChecks(password string) PasswordChecks {
	return PasswordChecks{
		Length:    length(password) >= minPasswordLength,
		Uppercase: uppercasePattern.MatchString(password),
		Lowercase: lowercasePattern.MatchString(password),
		Number:    digitPattern.MatchString(password),
		Symbol:    symbolPattern.MatchString(password),
	}
}

// Valid reports whether all rules hold. There is no partial credit.
func (c PasswordChecks) Valid() bool {
	return c.Length && c.Uppercase && c.Lowercase && c.Number && c.Symbol
}

// ValidUsername checks the trimmed username length (4-80) and character set.
func ValidUsername(username string) bool {
	u := strings.TrimSpace(username)
	n := length(u)
	return n >= minUsernameLength && n <= maxUsernameLength && UsernamePattern.MatchString(u)
}

// ValidEmail checks the trimmed email is non-empty, at most 150 characters and email shaped.
func ValidEmail(email string) bool {
	e := strings.TrimSpace(email)
	n := length(e)
	return n > 0 && n <= maxEmailLength && EmailPattern.MatchString(e)
}

// FieldErrors maps a form field to the message shown next to it
type FieldErrors map[string]string

// Err returns errors.ErrValidation when any field failed.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return errors.ErrValidation
}

// SignInForm is the login form input
type SignInForm struct {
	Usuario  string
	Password string
}

// ValidateSignIn checks username and password lengths only; the server decides the rest.
func ValidateSignIn(form SignInForm) FieldErrors {
	errs := FieldErrors{}
	if n := length(strings.TrimSpace(form.Usuario)); n < minUsernameLength || n > maxUsernameLength {
		errs[FieldUsuario] = MsgUsuarioLength
	}
	if n := length(form.Password); n < minPasswordLength || n > maxPasswordLength {
		errs[FieldPassword] = MsgPasswordLength
	}
	return errs
}

// SignUpForm is the registration form input. IsAdmin is the "register as administrator"
// toggle that makes the role selector mandatory.
type SignUpForm struct {
	NombreApellido string
	Usuario        string
	Email          string
	Telefono       string
	Password       string
	Rol            string
	IsAdmin        bool
}

func ValidateSignUp(form SignUpForm) FieldErrors {
	errs := FieldErrors{}

	if n := length(strings.TrimSpace(form.NombreApellido)); n < minNameLength || n > maxNameLength {
		errs[FieldNombreApellido] = MsgNombreLength
	}

	usuario := strings.TrimSpace(form.Usuario)
	if n := length(usuario); n < minUsernameLength || n > maxUsernameLength {
		errs[FieldUsuario] = MsgUsuarioLength
	} else if !UsernamePattern.MatchString(usuario) {
		errs[FieldUsuario] = MsgUsuarioPattern
	}

	if !ValidEmail(form.Email) {
		errs[FieldEmail] = MsgEmailInvalid
	}
	if length(strings.TrimSpace(form.Telefono)) > maxPhoneLength {
		errs[FieldTelefono] = MsgTelefonoLength
	}
	if !GetPasswordChecks(form.Password).Valid() {
		errs[FieldPassword] = MsgPasswordStrength
	}
	if form.IsAdmin && form.Rol == "" {
		errs[FieldRol] = MsgRolRequired
	}
	return errs
}

// ResetStep is the stage of the password reset flow
type ResetStep string

const (
	ResetStepRequest ResetStep = "request" // ask for a code by email
	ResetStepVerify  ResetStep = "verify"  // check the emailed code
	ResetStepConfirm ResetStep = "confirm" // set the new password
)

// Next returns the step that follows s; confirm wraps around to request.
func (s ResetStep) Next() ResetStep {
	switch s {
	case ResetStepRequest:
		return ResetStepVerify
	case ResetStepVerify:
		return ResetStepConfirm
	default:
		return ResetStepRequest
	}
}

// PasswordResetForm is the password reset form input
type PasswordResetForm struct {
	Email    string
	Code     string
	Password string
}

// ValidatePasswordReset checks the fields the given step needs. The new password only
// needs a minimum length here.
func ValidatePasswordReset(step ResetStep, form PasswordResetForm) FieldErrors {
	errs := FieldErrors{}
	if !ValidEmail(form.Email) {
		errs[FieldEmail] = MsgEmailInvalid
	}
	if step != ResetStepRequest && strings.TrimSpace(form.Code) == "" {
		errs[FieldCode] = MsgCodeRequired
	}
	if step == ResetStepConfirm && length(form.Password) < minPasswordLength {
		errs[FieldPassword] = MsgNewPasswordLength
	}
	return errs
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}
