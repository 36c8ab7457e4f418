package config

type DashboardConfig interface {
	GetTopLimit() int
	GetLatestLimit() int
}

type Dashboard struct{}

var _ DashboardConfig = Dashboard{}

func (Dashboard) GetTopLimit() int {
	return 3 // districts ranked in the summary
}

func (Dashboard) GetLatestLimit() int {
	return 5 // most recent expenses listed in the summary
}
