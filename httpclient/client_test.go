package httpclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jrsteele09/gastometro/httpclient"
	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/storage"
	"github.com/jrsteele09/gastometro/storage/memory"
	"github.com/stretchr/testify/require"
)

// capturedRequest records what the fake API received
type capturedRequest struct {
	method  string
	path    string
	query   string
	headers http.Header
	body    string
}

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest, *atomic.Int32) {
	t.Helper()

	captured := &capturedRequest{}
	hits := &atomic.Int32{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		data, _ := io.ReadAll(r.Body)
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = r.URL.RawQuery
		captured.headers = r.Header.Clone()
		captured.body = string(data)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, captured, hits
}

func TestClient_Request(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns parsed body", func(t *testing.T) {
		srv, captured, _ := newTestServer(t, http.StatusOK, `{"ok":true}`)
		c := httpclient.New(srv.URL, memory.New())

		data, err := c.Get(ctx, "/balance")
		require.NoError(t, err)
		require.JSONEq(t, `{"ok":true}`, string(data))
		require.Equal(t, http.MethodGet, captured.method)
		require.Equal(t, "/balance", captured.path)
		require.Equal(t, "application/json", captured.headers.Get("Content-Type"))
		require.NotEmpty(t, captured.headers.Get("X-Request-ID"))
		require.Empty(t, captured.headers.Get("Authorization"))
	})

	t.Run("404 surfaces server message", func(t *testing.T) {
		srv, _, _ := newTestServer(t, http.StatusNotFound, `{"message":"not found"}`)
		c := httpclient.New(srv.URL, memory.New())

		_, err := c.Get(ctx, "/missing")
		require.Error(t, err)
		require.Equal(t, "not found", err.Error())

		var requestErr *errors.RequestError
		require.True(t, errors.As(err, &requestErr))
		require.Equal(t, http.StatusNotFound, requestErr.Status)
		require.Equal(t, errors.KindRequest, errors.Kind(err))
	})

	t.Run("error without message uses fallback", func(t *testing.T) {
		srv, _, _ := newTestServer(t, http.StatusInternalServerError, `{"error":"boom"}`)
		c := httpclient.New(srv.URL, memory.New())

		_, err := c.Get(ctx, "/balance")
		require.EqualError(t, err, errors.DefaultRequestMessage)
	})

	t.Run("error with non JSON body uses fallback", func(t *testing.T) {
		srv, _, _ := newTestServer(t, http.StatusBadGateway, `<html>bad gateway</html>`)
		c := httpclient.New(srv.URL, memory.New())

		_, err := c.Get(ctx, "/balance")
		require.EqualError(t, err, errors.DefaultRequestMessage)
		require.Equal(t, errors.KindRequest, errors.Kind(err))
	})

	t.Run("message list is joined", func(t *testing.T) {
		srv, _, _ := newTestServer(t, http.StatusBadRequest, `{"message":["email must be an email","password too weak"]}`)
		c := httpclient.New(srv.URL, memory.New())

		_, err := c.Post(ctx, "/auth/signup", map[string]string{"email": "x"})
		require.EqualError(t, err, "email must be an email, password too weak")
	})

	t.Run("invalid JSON on success is a network error", func(t *testing.T) {
		srv, _, _ := newTestServer(t, http.StatusOK, `not json`)
		c := httpclient.New(srv.URL, memory.New())

		_, err := c.Get(ctx, "/balance")
		require.Equal(t, errors.KindNetwork, errors.Kind(err))
	})

	t.Run("empty success body is null", func(t *testing.T) {
		srv, _, _ := newTestServer(t, http.StatusNoContent, ``)
		c := httpclient.New(srv.URL, memory.New())

		data, err := c.Post(ctx, "/auth/password-reset/request", map[string]string{"email": "a@b.com"})
		require.NoError(t, err)
		require.Equal(t, "null", string(data))
	})

	t.Run("post sends JSON body", func(t *testing.T) {
		srv, captured, _ := newTestServer(t, http.StatusCreated, `{"id":1}`)
		c := httpclient.New(srv.URL+"/", memory.New())

		var out struct {
			ID int `json:"id"`
		}
		require.NoError(t, c.PostJSON(ctx, "/auth/signup", map[string]string{"usuario": "ana_1"}, &out))
		require.Equal(t, 1, out.ID)
		require.Equal(t, http.MethodPost, captured.method)
		require.Equal(t, "/auth/signup", captured.path)
		require.JSONEq(t, `{"usuario":"ana_1"}`, captured.body)
	})
}

func TestClient_Authorization(t *testing.T) {
	ctx := context.Background()

	t.Run("stored token becomes bearer header", func(t *testing.T) {
		srv, captured, _ := newTestServer(t, http.StatusOK, `{}`)
		store := memory.NewWithValues(map[string]string{storage.KeyAccessToken: "token-123"})
		c := httpclient.New(srv.URL, store)

		_, err := c.Get(ctx, "/usuarios")
		require.NoError(t, err)
		require.Equal(t, "Bearer token-123", captured.headers.Get("Authorization"))
	})

	t.Run("token read on every request", func(t *testing.T) {
		srv, captured, _ := newTestServer(t, http.StatusOK, `{}`)
		store := memory.New()
		c := httpclient.New(srv.URL, store)

		_, err := c.Get(ctx, "/usuarios")
		require.NoError(t, err)
		require.Empty(t, captured.headers.Get("Authorization"))

		require.NoError(t, store.Set(storage.KeyAccessToken, "later"))
		_, err = c.Get(ctx, "/usuarios")
		require.NoError(t, err)
		require.Equal(t, "Bearer later", captured.headers.Get("Authorization"))
	})

	t.Run("explicit header is kept", func(t *testing.T) {
		srv, captured, _ := newTestServer(t, http.StatusOK, `{}`)
		store := memory.NewWithValues(map[string]string{storage.KeyAccessToken: "token-123"})
		c := httpclient.New(srv.URL, store)

		headers := http.Header{}
		headers.Set("Authorization", "Basic abc")
		headers.Set("Content-Type", "application/merge-patch+json")
		_, err := c.Request(ctx, http.MethodPatch, "/usuarios/1", map[string]string{"rol": "ADMIN"}, headers)
		require.NoError(t, err)
		require.Equal(t, "Basic abc", captured.headers.Get("Authorization"))
		require.Equal(t, "application/merge-patch+json", captured.headers.Get("Content-Type"))
	})
}

func TestClient_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("missing base URL fails before the network", func(t *testing.T) {
		_, _, hits := newTestServer(t, http.StatusOK, `{}`)
		c := httpclient.New("", memory.New())

		_, err := c.Get(ctx, "/balance")
		require.EqualError(t, err, errors.MissingBaseURLMessage)
		require.Equal(t, errors.KindConfiguration, errors.Kind(err))
		require.Zero(t, hits.Load())
	})

	t.Run("unreachable host is a network error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c := httpclient.New(url, memory.New())
		_, err := c.Get(ctx, "/balance")
		require.Error(t, err)
		require.Equal(t, errors.KindNetwork, errors.Kind(err))
		require.Equal(t, "fallback", errors.Message(err, "fallback"))
	})

	t.Run("decode mismatch is a network error", func(t *testing.T) {
		srv, _, _ := newTestServer(t, http.StatusOK, `{"id":"not-a-number"}`)
		c := httpclient.New(srv.URL, memory.New())

		var out struct {
			ID int `json:"id"`
		}
		err := c.GetJSON(ctx, "/x", &out)
		require.Equal(t, errors.KindNetwork, errors.Kind(err))
	})

	t.Run("request id generator is used", func(t *testing.T) {
		srv, captured, _ := newTestServer(t, http.StatusOK, `[]`)
		c := httpclient.New(srv.URL, memory.New(), httpclient.WithRequestIDFunc(func() string { return "req-1" }))

		data, err := c.Get(ctx, "/usuarios")
		require.NoError(t, err)
		require.Equal(t, "req-1", captured.headers.Get("X-Request-ID"))

		var list []json.RawMessage
		require.NoError(t, json.Unmarshal(data, &list))
		require.Empty(t, list)
	})
}
