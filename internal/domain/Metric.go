package domain

// MetricRow é uma linha normalizada do relatório de analytics.
// DimensionKey é uma data (dimensão day) ou um videoId (dimensão video).
type MetricRow struct {
	DimensionKey      string
	Views             *float64
	Impressions       *float64
	ImpressionCTR     *float64
	AvgViewDuration   *float64
	AvgViewPercentage *float64
}

// MetricsResult é o resultado isolado de uma consulta de analytics.
// Em caso de falha Rows fica vazio e Warning descreve o motivo.
type MetricsResult struct {
	Rows    []MetricRow
	Warning string
}

func (r MetricsResult) Failed() bool {
	return r.Warning != ""
}

type TrendPoint struct {
	Date                  string   `json:"date"`
	Views                 *float64 `json:"views"`
	Impressions           *float64 `json:"impressions"`
	CTR                   *float64 `json:"ctr"`
	AverageViewDuration   *float64 `json:"averageViewDuration"`
	AverageViewPercentage *float64 `json:"averageViewPercentage"`
}

// TrendField seleciona o campo de um TrendPoint usado no cálculo de direção.
type TrendField func(TrendPoint) *float64

var (
	TrendCTR       TrendField = func(p TrendPoint) *float64 { return p.CTR }
	TrendRetention TrendField = func(p TrendPoint) *float64 { return p.AverageViewPercentage }
)
