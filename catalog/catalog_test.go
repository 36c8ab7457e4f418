package catalog_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/gastometro/catalog"
	"github.com/jrsteele09/gastometro/httpclient"
	apperrors "github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/storage/memory"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, handler http.HandlerFunc) *catalog.API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return catalog.NewAPI(httpclient.New(srv.URL, memory.New()))
}

func TestAPI_List(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "bare array", body: `[{"id":1,"nombre":"Lince"},{"id":2,"nombre":"Surco"}]`, want: 2},
		{name: "data envelope", body: `{"data":[{"id":1,"nombre":"Lince"}]}`, want: 1},
		{name: "non objects skipped", body: `[1,{"id":1},"x"]`, want: 1},
		{name: "unexpected shape", body: `{"total":0}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			api := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				_, _ = w.Write([]byte(tt.body))
			})

			records, err := api.List(context.Background(), catalog.Distritos)
			require.NoError(t, err)
			require.Len(t, records, tt.want)
			require.Equal(t, "/distritos", path)
		})
	}
}

func TestAPI_Create(t *testing.T) {
	var (
		method, path string
		received     map[string]any
	)
	api := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &received)
		_, _ = w.Write([]byte(`{"data":{"id":9,"motivo":"Peajes","monto":"12.75"}}`))
	})

	record, err := api.Create(context.Background(), catalog.Movilidades, catalog.CoerceFields(map[string]string{
		"motivo": "Peajes",
		"monto":  "12.75",
	}))
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, method)
	require.Equal(t, "/movilidades", path)
	require.Equal(t, map[string]any{"motivo": "Peajes", "monto": 12.75}, received)
	require.Equal(t, "9", record.Field("id"))
	require.Equal(t, 12.75, record.Float("monto"))
	require.Empty(t, record.Field("detalle"))

	out, err := json.Marshal(record)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":9,"motivo":"Peajes","monto":"12.75"}`, string(out))
}

func TestAPI_CreateRejected(t *testing.T) {
	api := newCatalog(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":["nombre should not be empty"]}`))
	})

	_, err := api.Create(context.Background(), catalog.Clientes, map[string]any{})
	var reqErr *apperrors.RequestError
	require.ErrorAs(t, err, &reqErr)
	require.Equal(t, http.StatusBadRequest, reqErr.Status)
	require.Equal(t, "nombre should not be empty", reqErr.Message)
}

func TestParseResource(t *testing.T) {
	r, err := catalog.ParseResource("ingresos")
	require.NoError(t, err)
	require.Equal(t, catalog.Ingresos, r)
	require.Contains(t, r.Columns(), "monto")

	_, err = catalog.ParseResource("usuarios")
	require.ErrorIs(t, err, apperrors.ErrUnsupported)
}

func TestCoerceFields(t *testing.T) {
	fields := catalog.CoerceFields(map[string]string{
		"monto":      "48.5",
		"distritoId": "3",
		"saldo":      "-12.40",
		"cero":       "0.5",
		"telefono":   "0123456",
		"celular":    "+51987654321",
		"id":         "12345678901234567890",
		"exponente":  "1e3",
		"detalle":    "Carga semanal",
		"nota":       "NaN",
		"punto":      "5.",
	})
	require.Equal(t, map[string]any{
		"monto":      json.Number("48.5"),
		"distritoId": json.Number("3"),
		"saldo":      json.Number("-12.40"),
		"cero":       json.Number("0.5"),
		"telefono":   "0123456",
		"celular":    "+51987654321",
		"id":         json.Number("12345678901234567890"),
		"exponente":  "1e3",
		"detalle":    "Carga semanal",
		"nota":       "NaN",
		"punto":      "5.",
	}, fields)

	out, err := json.Marshal(fields)
	require.NoError(t, err)
	require.Contains(t, string(out), `"id":12345678901234567890`)
	require.Contains(t, string(out), `"celular":"+51987654321"`)
}
