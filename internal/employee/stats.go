package employee

// Stats are the dashboard summary counts. Other is counted explicitly rather
// than derived from total - male - female.
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Male     int `json:"male"`
	Female   int `json:"female"`
	Other    int `json:"other"`
}

// Summarize computes the counts for a collection. Active + Inactive always
// equals Total, as does Male + Female + Other.
func Summarize(records []Employee) Stats {
	var stats Stats
	stats.Total = len(records)
	for _, rec := range records {
		if rec.IsActive {
			stats.Active++
		} else {
			stats.Inactive++
		}
		switch rec.Gender {
		case GenderMale:
			stats.Male++
		case GenderFemale:
			stats.Female++
		default:
			stats.Other++
		}
	}
	return stats
}
