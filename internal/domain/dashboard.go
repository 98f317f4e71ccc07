package domain

// StatCount is a named counter shown on the dashboard overview.
type StatCount struct {
	Name  string
	Count int
}

// ChartPoint is a per-category datapoint for the dashboard chart.
type ChartPoint struct {
	Name  string
	Count int
}

// RecentShayari is a recently added quote summary for the dashboard feed.
type RecentShayari struct {
	Title         string
	CategoryTitle string
	TimeAgo       string
}

// DisplayTitle returns the title with escaped newline sequences expanded.
func (r RecentShayari) DisplayTitle() string {
	return UnescapeNewlines(r.Title)
}

// Dashboard aggregates the three dashboard datasets. All three must be
// present; a partial dashboard is never returned.
type Dashboard struct {
	Stats  []StatCount
	Chart  []ChartPoint
	Recent []RecentShayari
}
