package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jrsteele09/gastometro/router"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) {
	t.Helper()
	newTestAPIWithSummary(t, `{"latestMovilidades":[{"id":1,"fecha":"2024-06-02","motivo":"Peajes","detalle":"Ruta","monto":12.75}],"topDistritos":[{"id":1,"nombre":"Lince","total":30}],"movilidadesByMonth":[{"month":6,"total":30}]}`)
}

func newTestAPIWithSummary(t *testing.T, summary string) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"accessToken":"at","refreshToken":"rt","user":{"id":1,"nombre_apellido":"Ana Pérez","usuario":"ana_1","rol":"USER"}}`))
	})
	mux.HandleFunc("GET /balance", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"No autorizado"}`))
			return
		}
		_, _ = w.Write([]byte(`{"totalIngresos":100,"totalGastos":40,"totalMovilidades":2,"balance":60}`))
	})
	mux.HandleFunc("GET /dashboard/summary", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(summary))
	})
	mux.HandleFunc("GET /distritos", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1,"nombre":"Lince"}]`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	t.Setenv("GASTOMETRO_API_BASE_URL", srv.URL+"/")
	t.Setenv("GASTOMETRO_DATA_DIR", t.TempDir())
	t.Setenv("GASTOMETRO_LOG_LEVEL", "disabled")
}

func TestRun_SessionLifecycle(t *testing.T) {
	newTestAPI(t)

	var out bytes.Buffer
	require.NoError(t, run([]string{"login", "-usuario", "ana_1", "-password", "Secret1!"}, &out))
	require.Contains(t, out.String(), "Inicio de sesión correcto.")

	_, err := os.Stat(filepath.Join(os.Getenv("GASTOMETRO_DATA_DIR"), "session.json"))
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, run([]string{"whoami"}, &out))
	require.Contains(t, out.String(), "Ana Pérez")

	out.Reset()
	require.NoError(t, run([]string{"dashboard", "-year", "2024", "-month", "6"}, &out))
	require.Contains(t, out.String(), "Junio")
	require.Contains(t, out.String(), "Lince")
	require.Contains(t, out.String(), "02 jun")
	require.NotContains(t, out.String(), "datos de ejemplo")

	out.Reset()
	require.NoError(t, run([]string{"list", "distritos"}, &out))
	require.Contains(t, out.String(), "Lince")

	out.Reset()
	require.NoError(t, run([]string{"logout"}, &out))

	err = run([]string{"whoami"}, &out)
	require.EqualError(t, err, router.RedirectMessage)
}

func TestRun_LocalValidation(t *testing.T) {
	newTestAPI(t)

	var out bytes.Buffer
	err := run([]string{"register", "-nombre", "Ana Pérez", "-usuario", "ab", "-email", "ana@example.com", "-password", "Secret1!"}, &out)
	require.Error(t, err)
	require.Contains(t, out.String(), "El usuario debe tener entre 4 y 80 caracteres.")
}

func TestRun_UnknownCommand(t *testing.T) {
	newTestAPI(t)

	var out bytes.Buffer
	require.Error(t, run([]string{"nope"}, &out))
	require.Contains(t, out.String(), "Uso: gastometro")

	out.Reset()
	require.NoError(t, run(nil, &out))
	require.Contains(t, out.String(), "login -usuario U -password P")
}
