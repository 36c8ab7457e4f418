package memory_test

import (
	"testing"

	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/storage"
	"github.com/jrsteele09/gastometro/storage/memory"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := memory.NewWithValues(map[string]string{storage.KeyAccessToken: "abc"})

	v, err := s.Get(storage.KeyAccessToken)
	require.NoError(t, err)
	require.Equal(t, "abc", v)

	_, err = s.Get(storage.KeyAuthUser)
	require.ErrorIs(t, err, errors.ErrNotFound)

	require.NoError(t, s.Set(storage.KeyAuthUser, `{"usuario":"ana"}`))
	require.Equal(t, 2, s.Len())

	require.NoError(t, s.Delete(storage.KeyAccessToken))
	require.NoError(t, s.Delete(storage.KeyAccessToken))
	require.Equal(t, 1, s.Len())
}
