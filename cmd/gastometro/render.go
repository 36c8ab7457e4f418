package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/jrsteele09/gastometro/auth"
	"github.com/jrsteele09/gastometro/catalog"
	"github.com/jrsteele09/gastometro/format"
	"github.com/jrsteele09/gastometro/pages"
	"github.com/jrsteele09/gastometro/users"
	"github.com/tidwall/gjson"
)

const chartWidth = 30

func (a *app) printStatus(status pages.Status) {
	if status.Message == "" {
		return
	}
	prefix := map[pages.StatusType]string{
		pages.StatusSuccess: "OK",
		pages.StatusError:   "Error",
		pages.StatusWarning: "Aviso",
	}[status.Type]
	if prefix == "" {
		a.printf("%s\n", status.Message)
		return
	}
	a.printf("%s: %s\n", prefix, status.Message)
}

func printPasswordChecks(a *app, checks auth.PasswordChecks) {
	mark := func(ok bool) string {
		if ok {
			return "[x]"
		}
		return "[ ]"
	}
	a.printf("%s al menos 8 caracteres\n", mark(checks.Length))
	a.printf("%s una mayúscula\n", mark(checks.Uppercase))
	a.printf("%s una minúscula\n", mark(checks.Lowercase))
	a.printf("%s un número\n", mark(checks.Number))
	a.printf("%s un símbolo\n", mark(checks.Symbol))
}

func renderProfile(a *app, v pages.ProfileView) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Nombre\t%s\n", v.Label)
	fmt.Fprintf(w, "Usuario\t%s\n", v.Username)
	fmt.Fprintf(w, "Correo\t%s\n", v.Email)
	if v.Phone != "" {
		fmt.Fprintf(w, "Teléfono\t%s\n", v.Phone)
	}
	fmt.Fprintf(w, "Rol\t%s\n", v.Role)
	if !v.ExpiresAt.IsZero() {
		fmt.Fprintf(w, "Token vence\t%s\n", v.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
	_ = w.Flush()
}

// barWidth scales total against highest. Negative totals draw an empty bar.
func barWidth(total, highest float64) int {
	if total <= 0 || highest <= 0 {
		return 0
	}
	return min(int(total/highest*chartWidth), chartWidth)
}

func renderDashboard(a *app, v pages.DashboardView) {
	a.printf("Tablero · %d · %s\n", v.Filters.Year, v.PeriodLabel)
	a.printf("Usuario: %s\n", v.UserLabel)
	a.printStatus(v.Status)
	a.printf("\n")

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Ingresos\t%s\n", format.Currency(v.Data.Totals.TotalIngresos))
	fmt.Fprintf(w, "Gastos\t%s\n", format.Currency(v.Data.Totals.TotalGastos))
	fmt.Fprintf(w, "Movilidades\t%s\n", format.Number(v.Data.Totals.TotalMovilidades))
	fmt.Fprintf(w, "Balance\t%s\n", format.Currency(v.Data.Totals.Balance))
	_ = w.Flush()

	a.printf("\nGastos por mes · %d (%s)\n", v.Filters.Year, format.Currency(v.BarsTotal))
	w = tabwriter.NewWriter(a.out, 0, 4, 1, ' ', 0)
	for _, bar := range v.Bars {
		fmt.Fprintf(w, "%s\t%s\t%s\n", bar.Label, strings.Repeat("█", barWidth(bar.Total, v.BarsMax)), format.Currency(bar.Total))
	}
	_ = w.Flush()

	a.printf("\nÚltimas movilidades\n")
	w = tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for _, m := range v.Data.LatestMovilidades {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", format.ShortDate(m.Fecha), m.Motivo, m.Detalle, format.Currency(m.Monto))
	}
	_ = w.Flush()

	a.printf("\nTop distritos\n")
	w = tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	for i, d := range v.Data.TopDistritos {
		fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, d.Nombre, format.Currency(d.Total))
	}
	_ = w.Flush()

	if v.Admin && len(v.UserOptions) > 1 {
		a.printf("\nUsuarios disponibles:")
		for _, o := range v.UserOptions {
			a.printf(" %s (%s)", o.Label, o.Value)
		}
		a.printf("\n")
	}
}

func renderBalance(a *app, page *pages.BalancePage) {
	totals := page.Totals()
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Ingresos\t%s\n", format.Currency(totals.TotalIngresos))
	fmt.Fprintf(w, "Gastos\t%s\n", format.Currency(totals.TotalGastos))
	fmt.Fprintf(w, "Balance\t%s\n", format.Currency(totals.Balance))
	_ = w.Flush()

	monthly := gjson.ParseBytes(page.Monthly())
	if !monthly.Exists() || monthly.Type == gjson.Null {
		return
	}
	a.printf("\nMensual\n%s\n", monthly.Get("@pretty").Raw)
}

func renderUsers(a *app, list []users.Profile) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUsuario\tNombre\tCorreo\tRol")
	for _, u := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID(), u.Username(), u.FullName(), u.Email(), u.Role())
	}
	_ = w.Flush()
}

func renderRecords(a *app, columns []string, records []catalog.Record) {
	if len(records) == 0 {
		a.printf("Sin registros.\n")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(columns, "\t"))
	for _, r := range records {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = r.Field(c)
			if c == "fecha" {
				cells[i] = format.ShortDate(cells[i])
			}
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	_ = w.Flush()
}
