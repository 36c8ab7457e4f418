package users

import (
	"context"
	"encoding/json"

	"github.com/tidwall/gjson"
)

const usersPath = "/usuarios"

// Getter is the part of the HTTP client the users API needs
type Getter interface {
	Get(ctx context.Context, path string) (json.RawMessage, error)
}

// Lister lists the users visible to the current session
type Lister interface {
	List(ctx context.Context) ([]Profile, error)
}

// API wraps the /usuarios endpoint
type API struct {
	client Getter
}

var _ Lister = (*API)(nil)

func NewAPI(client Getter) *API {
	return &API{client: client}
}

// List returns every user. The endpoint answers either a bare array or an object with
// the array under "data"; anything else is treated as an empty list.
func (a *API) List(ctx context.Context) ([]Profile, error) {
	data, err := a.client.Get(ctx, usersPath)
	if err != nil {
		return nil, err
	}
	return ParseList(data)
}

// ParseList extracts a list of profiles from a bare array or a {"data": [...]} envelope.
// Entries that are not objects are skipped.
func ParseList(data []byte) ([]Profile, error) {
	list := UnwrapList(data)
	profiles := make([]Profile, 0, len(list))
	for _, item := range list {
		if !item.IsObject() {
			continue
		}
		p, err := ParseProfile([]byte(item.Raw))
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// UnwrapList returns the elements of a bare JSON array, or of the "data" array of an object.
func UnwrapList(data []byte) []gjson.Result {
	root := gjson.ParseBytes(data)
	if root.IsArray() {
		return root.Array()
	}
	if inner := root.Get("data"); inner.IsArray() {
		return inner.Array()
	}
	return nil
}
