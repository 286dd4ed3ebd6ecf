package models

// Stats is a display-only counters record. The values are seeded once and
// never recalculated from the actual collections; only TotalUsers moves,
// incremented on registration.
type Stats struct {
	TotalViews   int `json:"totalViews"`
	TotalDiaries int `json:"totalDiaries"`
	TotalUsers   int `json:"totalUsers"`
}
