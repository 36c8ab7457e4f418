package httpclient

import (
	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/storage"
	"golang.org/x/oauth2"
)

// StorageTokenSource reads the access token from storage on every call, so a login or
// logout is picked up by the next request without rebuilding the client.
type StorageTokenSource struct {
	store storage.Store
}

var _ oauth2.TokenSource = (*StorageTokenSource)(nil)

func NewStorageTokenSource(store storage.Store) *StorageTokenSource {
	return &StorageTokenSource{store: store}
}

// Token returns errors.ErrNotFound when no access token is stored.
func (s *StorageTokenSource) Token() (*oauth2.Token, error) {
	if s.store == nil {
		return nil, errors.ErrNotFound
	}
	accessToken, err := s.store.Get(storage.KeyAccessToken)
	if err != nil {
		return nil, err
	}
	if accessToken == "" {
		return nil, errors.ErrNotFound
	}
	return &oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}, nil
}
