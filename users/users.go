package users

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jrsteele09/gastometro/internal/utils"
)

// RoleType is the role the API assigns to a user
type RoleType string

const (
	RoleAdmin RoleType = "ADMIN" // Can see every user's figures and register users with a role
	RoleUser  RoleType = "USER"  // Sees only their own figures
)

// Roles offered when an administrator registers a user
var Roles = []RoleType{RoleUser, RoleAdmin}

// DefaultLabel is shown when a profile carries no usable name.
const DefaultLabel = "Usuario actual"

// Profile is the user object returned by the API. No schema is enforced: the known
// keys are id, nombre_apellido, usuario, email, telefono and rol (or role), and every
// accessor reads them defensively.
type Profile map[string]any

// ParseProfile decodes a JSON profile. JSON null, or anything that is not an object,
// yields a nil profile.
func ParseProfile(data []byte) (Profile, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("[ParseProfile] %w", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, nil
	}
	return Profile(obj), nil
}

// String returns the value of key as a string. Numbers are rendered without a
// trailing ".0" so numeric ids read naturally.
func (p Profile) String(key string) string {
	if p == nil {
		return ""
	}
	switch v := p[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

func (p Profile) ID() string       { return p.String("id") }
func (p Profile) Username() string { return p.String("usuario") }
func (p Profile) Email() string    { return p.String("email") }
func (p Profile) FullName() string { return p.String("nombre_apellido") }
func (p Profile) Phone() string    { return p.String("telefono") }

// Role returns rol, falling back to role.
func (p Profile) Role() RoleType {
	return RoleType(utils.FirstNonEmpty(p.String("rol"), p.String("role")))
}

// IsAdmin reports whether either role key says ADMIN.
func (p Profile) IsAdmin() bool {
	return p.String("rol") == string(RoleAdmin) || p.String("role") == string(RoleAdmin)
}

// Label is the display name: full name, then username, then email.
func (p Profile) Label() string {
	return utils.FirstNonEmpty(p.FullName(), p.Username(), p.Email(), DefaultLabel)
}

// Identifier is the value used to scope queries to this user: id, then username, then email.
func (p Profile) Identifier() string {
	return utils.FirstNonEmpty(p.ID(), p.Username(), p.Email())
}
