// Package catalog lists and creates the records behind the CRUD screens: expenses
// (movilidades), income (ingresos), clients and districts.
package catalog

import (
	"context"
	"encoding/json"
	"regexp"

	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/users"
	"github.com/tidwall/gjson"
)

// Resource is a collection exposed by the API at /<resource>
type Resource string

const (
	Movilidades Resource = "movilidades"
	Ingresos    Resource = "ingresos"
	Clientes    Resource = "clientes"
	Distritos   Resource = "distritos"
)

// Resources in menu order
var Resources = []Resource{Movilidades, Ingresos, Clientes, Distritos}

// Columns shown when a resource is listed
var columns = map[Resource][]string{
	Movilidades: {"id", "fecha", "motivo", "detalle", "monto"},
	Ingresos:    {"id", "fecha", "descripcion", "monto"},
	Clientes:    {"id", "nombre", "email", "telefono"},
	Distritos:   {"id", "nombre"},
}

// ParseResource accepts a resource name typed by a user.
func ParseResource(name string) (Resource, error) {
	r := Resource(name)
	if _, ok := columns[r]; !ok {
		return "", errors.Wrapf(errors.ErrUnsupported, "[ParseResource] %q", name)
	}
	return r, nil
}

// Columns returns the fields listed for r.
func (r Resource) Columns() []string {
	return columns[r]
}

func (r Resource) path() string {
	return "/" + string(r)
}

// Record is one element of a collection. Fields are read leniently.
type Record struct {
	raw gjson.Result
}

// Field renders key as text. Numbers keep their JSON form, absent keys are empty.
func (r Record) Field(key string) string {
	v := r.raw.Get(key)
	switch v.Type {
	case gjson.Null:
		return ""
	case gjson.Number:
		return v.Raw
	default:
		return v.String()
	}
}

// Float reads key as a number, accepting numeric strings.
func (r Record) Float(key string) float64 {
	return r.raw.Get(key).Float()
}

// MarshalJSON returns the record as received.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.raw.Raw == "" {
		return []byte("null"), nil
	}
	return []byte(r.raw.Raw), nil
}

// Client is the part of the HTTP client the catalog API needs
type Client interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
}

// API wraps the collection endpoints
type API struct {
	client Client
}

func NewAPI(client Client) *API {
	return &API{client: client}
}

// List returns the records of r. A bare array and a {"data": [...]} envelope are both accepted.
func (a *API) List(ctx context.Context, r Resource) ([]Record, error) {
	data, err := a.client.Get(ctx, r.path())
	if err != nil {
		return nil, err
	}

	list := users.UnwrapList(data)
	records := make([]Record, 0, len(list))
	for _, item := range list {
		if item.IsObject() {
			records = append(records, Record{raw: item})
		}
	}
	return records, nil
}

// Create posts fields to r and returns the created record. A {"data": {...}} envelope is unwrapped.
func (a *API) Create(ctx context.Context, r Resource, fields map[string]any) (Record, error) {
	data, err := a.client.Post(ctx, r.path(), fields)
	if err != nil {
		return Record{}, err
	}

	root := gjson.ParseBytes(data)
	if inner := root.Get("data"); inner.IsObject() {
		return Record{raw: inner}, nil
	}
	return Record{raw: root}, nil
}

// decimalPattern matches plain decimals. A plus sign, exponents and leading zeros stay text so
// phone numbers and codes such as "+51987654321" or "0123" are sent as typed.
var decimalPattern = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?$`)

// CoerceFields turns key=value strings into a request body. Plain decimals are sent as
// json.Number so amounts and foreign keys keep their type without losing digits.
func CoerceFields(values map[string]string) map[string]any {
	fields := make(map[string]any, len(values))
	for k, v := range values {
		if decimalPattern.MatchString(v) {
			fields[k] = json.Number(v)
			continue
		}
		fields[k] = v
	}
	return fields
}
