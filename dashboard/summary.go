package dashboard

import (
	"github.com/jrsteele09/gastometro/balance"
	"github.com/tidwall/gjson"
)

// Movilidad is one expense entry.
type Movilidad struct {
	ID      string
	Fecha   string
	Motivo  string
	Detalle string
	Monto   float64
}

// Distrito is a district ranked by spend.
type Distrito struct {
	ID     string
	Nombre string
	Total  float64
}

// MonthTotal is the expense total of one month (1-12).
type MonthTotal struct {
	Month int
	Total float64
}

// Summary is the /dashboard/summary response. Monthly requests fill the latest and top
// lists, yearly requests fill the month series.
type Summary struct {
	LatestMovilidades  []Movilidad
	TopDistritos       []Distrito
	MovilidadesByMonth []MonthTotal
}

// Data is everything the dashboard renders.
type Data struct {
	Totals             balance.Totals
	LatestMovilidades  []Movilidad
	TopDistritos       []Distrito
	MovilidadesByMonth []MonthTotal
}

// ParseSummary reads the summary leniently; absent lists are empty.
func ParseSummary(data []byte) Summary {
	root := gjson.ParseBytes(data)
	summary := Summary{
		LatestMovilidades:  []Movilidad{},
		TopDistritos:       []Distrito{},
		MovilidadesByMonth: []MonthTotal{},
	}

	for _, item := range root.Get("latestMovilidades").Array() {
		summary.LatestMovilidades = append(summary.LatestMovilidades, Movilidad{
			ID:      item.Get("id").String(),
			Fecha:   item.Get("fecha").String(),
			Motivo:  item.Get("motivo").String(),
			Detalle: item.Get("detalle").String(),
			Monto:   item.Get("monto").Float(),
		})
	}
	for _, item := range root.Get("topDistritos").Array() {
		summary.TopDistritos = append(summary.TopDistritos, Distrito{
			ID:     item.Get("id").String(),
			Nombre: item.Get("nombre").String(),
			Total:  item.Get("total").Float(),
		})
	}
	for _, item := range root.Get("movilidadesByMonth").Array() {
		summary.MovilidadesByMonth = append(summary.MovilidadesByMonth, MonthTotal{
			Month: int(item.Get("month").Int()),
			Total: item.Get("total").Float(),
		})
	}
	return summary
}

// FallbackData is the placeholder shown when the dashboard cannot be loaded. Each call
// returns a fresh copy.
func FallbackData() Data {
	return Data{
		Totals: balance.Totals{
			TotalIngresos:    25000,
			TotalGastos:      12500,
			TotalMovilidades: 48,
			Balance:          12500,
		},
		LatestMovilidades: []Movilidad{
			{ID: "mov-1001", Fecha: "2024-06-02", Motivo: "Combustible", Detalle: "Carga semanal", Monto: 48.5},
			{ID: "mov-1002", Fecha: "2024-06-01", Motivo: "Peajes", Detalle: "Ruta Interurbana", Monto: 12.75},
			{ID: "mov-1003", Fecha: "2024-05-29", Motivo: "Mantenimiento", Detalle: "Cambio de aceite", Monto: 90},
		},
		TopDistritos: []Distrito{
			{ID: "1", Nombre: "Miraflores", Total: 4200},
			{ID: "2", Nombre: "San Isidro", Total: 3800},
			{ID: "3", Nombre: "Barranco", Total: 2900},
		},
		MovilidadesByMonth: []MonthTotal{
			{1, 950}, {2, 1200}, {3, 860}, {4, 1460}, {5, 1320}, {6, 980},
			{7, 1110}, {8, 1050}, {9, 990}, {10, 1370}, {11, 910}, {12, 1180},
		},
	}
}
