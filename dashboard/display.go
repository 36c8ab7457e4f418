package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/jrsteele09/gastometro/internal/utils"
	"github.com/jrsteele09/gastometro/users"
)

// GlobalOption is the user selector value meaning "every user".
const GlobalOption = "global"

const globalLabel = "Global"

var monthNames = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthLabel returns the Spanish month name, or "Mes N" outside 1-12.
func MonthLabel(month int) string {
	if month < 1 || month > len(monthNames) {
		return fmt.Sprintf("Mes %d", month)
	}
	return monthNames[month-1]
}

// MonthBar is one bar of the expense chart.
type MonthBar struct {
	Month int
	Label string
	Total float64
}

// SemesterWindow keeps the half of the year containing month: January to June when
// month <= 6, July to December otherwise.
func SemesterWindow(series []MonthTotal, month int) []MonthBar {
	start := 1
	if month > 6 {
		start = 7
	}
	end := start + 5

	bars := make([]MonthBar, 0, 6)
	for _, item := range series {
		if item.Month < start || item.Month > end {
			continue
		}
		bars = append(bars, MonthBar{Month: item.Month, Label: MonthLabel(item.Month), Total: item.Total})
	}
	return bars
}

// MaxTotal is the largest bar total, never less than 1 so it can scale the chart.
func MaxTotal(bars []MonthBar) float64 {
	highest := 1.0
	for _, bar := range bars {
		if bar.Total > highest {
			highest = bar.Total
		}
	}
	return highest
}

// SumTotal adds every bar total.
func SumTotal(bars []MonthBar) float64 {
	var sum float64
	for _, bar := range bars {
		sum += bar.Total
	}
	return sum
}

// YearOptions lists the seven years centred on now's year.
func YearOptions(now time.Time) []int {
	years := make([]int, 0, 7)
	for y := now.Year() - 3; y <= now.Year()+3; y++ {
		years = append(years, y)
	}
	return years
}

// Option is an entry of the user selector.
type Option struct {
	Value string
	Label string
}

// UserOptions starts with Global and adds every user with an identifier and a label.
// When no user qualifies the current user is offered instead.
func UserOptions(list []users.Profile, current users.Profile) []Option {
	options := []Option{{Value: GlobalOption, Label: globalLabel}}
	for _, u := range list {
		id := u.Identifier()
		label := strings.TrimSpace(utils.FirstNonEmpty(u.FullName(), u.Username(), u.Email()))
		if id != "" && label != "" {
			options = append(options, Option{Value: id, Label: label})
		}
	}
	if len(options) == 1 {
		if id := current.Identifier(); id != "" {
			options = append(options, Option{Value: id, Label: current.Label()})
		}
	}
	return options
}

// SelectedUserLabel names whose figures are shown. Non-admins always see their own label.
func SelectedUserLabel(admin bool, userID string, options []Option, current users.Profile) string {
	if !admin {
		return current.Label()
	}
	if userID == "" {
		return globalLabel
	}
	for _, option := range options {
		if option.Value == userID {
			return option.Label
		}
	}
	return current.Label()
}
