package pages

import (
	"context"
	"strings"
	"sync"

	"github.com/jrsteele09/gastometro/catalog"
	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/users"
)

// Status messages of the list and create screens
const (
	MsgListFailed    = "No fue posible cargar la información."
	MsgCreateFailed  = "No fue posible guardar el registro."
	MsgCreateSuccess = "Registro guardado correctamente."
	MsgCreateEmpty   = "Completa al menos un campo."
)

// CatalogAPI is the part of catalog.API the list and create screens call
type CatalogAPI interface {
	List(ctx context.Context, r catalog.Resource) ([]catalog.Record, error)
	Create(ctx context.Context, r catalog.Resource, fields map[string]any) (catalog.Record, error)
}

var _ CatalogAPI = (*catalog.API)(nil)

// CatalogPage lists one resource and creates records in it. The create form has one
// field per listed column except id.
type CatalogPage struct {
	*Form
	api      CatalogAPI
	resource catalog.Resource

	mu      sync.RWMutex
	records []catalog.Record
	created *catalog.Record
}

func NewCatalogPage(api CatalogAPI, resource catalog.Resource) *CatalogPage {
	fields := make([]string, 0, len(resource.Columns()))
	for _, c := range resource.Columns() {
		if c != "id" {
			fields = append(fields, c)
		}
	}
	return &CatalogPage{
		Form:     NewForm(fields...),
		api:      api,
		resource: resource,
	}
}

func (p *CatalogPage) Resource() catalog.Resource {
	return p.resource
}

// Load refreshes the list.
func (p *CatalogPage) Load(ctx context.Context) error {
	records, err := p.api.List(ctx, p.resource)
	if err != nil {
		p.mu.Lock()
		p.records = nil
		p.mu.Unlock()
		return p.fail(err, MsgListFailed)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = records
	return nil
}

func (p *CatalogPage) Records() []catalog.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]catalog.Record(nil), p.records...)
}

// Created returns the record saved by the last successful Submit.
func (p *CatalogPage) Created() *catalog.Record {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.created
}

// Submit creates a record from the non-empty values. Fields beyond the listed columns,
// such as foreign keys, are sent too.
func (p *CatalogPage) Submit(ctx context.Context) error {
	return p.submit(ctx, func(ctx context.Context) error {
		values := map[string]string{}
		for field, value := range p.Values() {
			if v := strings.TrimSpace(value); v != "" {
				values[field] = v
			}
		}
		if len(values) == 0 {
			p.setStatus(StatusError, MsgCreateEmpty)
			return errors.ErrValidation
		}

		record, err := p.api.Create(ctx, p.resource, catalog.CoerceFields(values))
		if err != nil {
			return p.fail(err, MsgCreateFailed)
		}

		p.mu.Lock()
		p.created = &record
		p.mu.Unlock()
		p.setStatus(StatusSuccess, MsgCreateSuccess)
		p.Reset()
		return nil
	})
}

// UsersPage lists the registered users.
type UsersPage struct {
	api users.Lister

	mu     sync.RWMutex
	list   []users.Profile
	status Status
}

func NewUsersPage(api users.Lister) *UsersPage {
	return &UsersPage{api: api}
}

func (p *UsersPage) Load(ctx context.Context) error {
	list, err := p.api.List(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.list = nil
		p.status = Status{Type: StatusError, Message: errors.Message(err, MsgListFailed)}
		return err
	}
	p.list = list
	p.status = Status{}
	return nil
}

func (p *UsersPage) Users() []users.Profile {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]users.Profile(nil), p.list...)
}

func (p *UsersPage) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}
