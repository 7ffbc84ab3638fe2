package model

type DashboardSummary struct {
	TotalArtworks   int `json:"totalArtworks"`
	TotalLikes      int `json:"totalLikes"`
	PublicArtworks  int `json:"publicArtworks"`
	PrivateArtworks int `json:"privateArtworks"`
}

type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DashboardCharts struct {
	Pie []ChartPoint `json:"pie"`
	Bar []ChartPoint `json:"bar"`
}

type DashboardStats struct {
	Summary DashboardSummary `json:"summary"`
	Charts  DashboardCharts  `json:"charts"`
	Recent  []Artwork        `json:"recent"`
}

// Percent returns the share of p in series as an integer percentage.
func Percent(p ChartPoint, series []ChartPoint) int {
	total := 0
	for _, s := range series {
		total += s.Value
	}
	if total == 0 {
		return 0
	}
	return p.Value * 100 / total
}
