package youtube

import (
	"fmt"

	"github.com/sirupsen/logrus"
	ytdomain "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"github.com/vfg2006/shorts-insights-api/pkg/utils"
)

type metricSetter func(row *domain.MetricRow, value *float64)

// metricColumns mapeia o cabeçalho do relatório para o campo da MetricRow.
var metricColumns = map[string]metricSetter{
	ytdomain.MetricViews:                 func(r *domain.MetricRow, v *float64) { r.Views = v },
	ytdomain.MetricImpressions:           func(r *domain.MetricRow, v *float64) { r.Impressions = v },
	ytdomain.MetricImpressionCTR:         func(r *domain.MetricRow, v *float64) { r.ImpressionCTR = v },
	ytdomain.MetricAverageViewDuration:   func(r *domain.MetricRow, v *float64) { r.AvgViewDuration = v },
	ytdomain.MetricAverageViewPercentage: func(r *domain.MetricRow, v *float64) { r.AvgViewPercentage = v },
}

func isDimensionColumn(header string) bool {
	return header == string(ytdomain.DimensionDay) || header == string(ytdomain.DimensionVideo)
}

// NormalizeRows converte a tabela crua em MetricRow, posição a posição.
// Colunas de dimensão viram string (vazia se ausente), métricas viram número
// (nil se inválido) e cabeçalhos desconhecidos são registrados e ignorados.
func NormalizeRows(table *ytdomain.ReportTable) []domain.MetricRow {
	if table == nil || len(table.Headers) == 0 || len(table.Rows) == 0 {
		return []domain.MetricRow{}
	}

	var unknown []string
	for _, header := range table.Headers {
		if header == "" || isDimensionColumn(header) {
			continue
		}
		if _, ok := metricColumns[header]; !ok {
			unknown = append(unknown, header)
		}
	}
	if len(unknown) > 0 {
		logrus.WithField("headers", unknown).Warn("analytics: ignoring unknown report columns")
	}

	rows := make([]domain.MetricRow, 0, len(table.Rows))
	for _, raw := range table.Rows {
		row := domain.MetricRow{}

		for i, header := range table.Headers {
			var cell any
			if i < len(raw) {
				cell = raw[i]
			}

			if isDimensionColumn(header) {
				if cell != nil {
					row.DimensionKey = fmt.Sprint(cell)
				}
				continue
			}

			if setter, ok := metricColumns[header]; ok {
				setter(&row, utils.ToNumber(cell))
			}
		}

		rows = append(rows, row)
	}

	return rows
}
