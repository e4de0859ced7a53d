package ytdomain

import "strings"

type Dimension string

const (
	DimensionDay   Dimension = "day"
	DimensionVideo Dimension = "video"
)

// Colunas de métricas consultadas no YouTube Analytics.
const (
	MetricViews                 = "views"
	MetricImpressions           = "impressions"
	MetricImpressionCTR         = "impressionClickThroughRate"
	MetricAverageViewDuration   = "averageViewDuration"
	MetricAverageViewPercentage = "averageViewPercentage"
)

// ReportMetrics é a lista de métricas de todas as consultas.
var ReportMetrics = []string{
	MetricViews,
	MetricImpressions,
	MetricImpressionCTR,
	MetricAverageViewDuration,
	MetricAverageViewPercentage,
}

const MineChannelIDs = "channel==MINE"

// ReportQuery descreve uma consulta reports.query.
type ReportQuery struct {
	StartDate string
	EndDate   string
	Dimension Dimension
	Metrics   []string
	VideoID   string // opcional, vira filters=video==<id>
}

func (q ReportQuery) MetricList() string {
	metrics := q.Metrics
	if len(metrics) == 0 {
		metrics = ReportMetrics
	}
	return strings.Join(metrics, ",")
}

func (q ReportQuery) Filters() string {
	if q.VideoID == "" {
		return ""
	}
	return "video==" + q.VideoID
}

// ReportTable é a resposta crua do relatório: cabeçalhos e linhas posicionais.
type ReportTable struct {
	Headers []string
	Rows    [][]any
}
