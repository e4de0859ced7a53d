package insighting

import (
	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"github.com/vfg2006/shorts-insights-api/pkg/utils"
)

// Limites de classificação (CTR e retenção em %)
const (
	criticalCTR       = 2.0
	warningCTR        = 3.5
	criticalRetention = 25.0
	warningRetention  = 35.0
)

// ClassifyHealth classifica o vídeo pela CTR e retenção. "high" é o pior caso.
func ClassifyHealth(ctr, retention *float64) domain.Health {
	if ctr == nil || retention == nil {
		return domain.HealthUnknown
	}

	switch {
	case *ctr < criticalCTR || *retention < criticalRetention:
		return domain.HealthHigh
	case *ctr < warningCTR || *retention < warningRetention:
		return domain.HealthMedium
	default:
		return domain.HealthLow
	}
}

// BuildRecommendations devolve sempre duas dicas: CTR e depois retenção.
func BuildRecommendations(ctr, retention *float64) []string {
	recommendations := make([]string, 0, 2)

	switch {
	case ctr == nil:
		recommendations = append(recommendations, "Awaiting CTR values for this period.")
	case *ctr < criticalCTR:
		recommendations = append(recommendations, "Very low CTR; tighten hook, title, and thumbnail signal.")
	case *ctr < warningCTR:
		recommendations = append(recommendations, "Low CTR; test stronger first 2-second hook variant.")
	default:
		recommendations = append(recommendations, "CTR is healthy.")
	}

	switch {
	case retention == nil:
		recommendations = append(recommendations, "Awaiting retention trend.")
	case *retention < criticalRetention:
		recommendations = append(recommendations, "Retention weak; remove intro friction before core value in first 1-2 sec.")
	case *retention < warningRetention:
		recommendations = append(recommendations, "Retention moderate; test a stronger pacing cadence.")
	default:
		recommendations = append(recommendations, "Retention is strong.")
	}

	return recommendations
}

// FilterRowsForCandidates descarta linhas de vídeos que não estão no catálogo de shorts.
func FilterRowsForCandidates(rows []domain.MetricRow, candidates []domain.VideoCandidate) []domain.MetricRow {
	ids := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		ids[candidate.VideoID] = struct{}{}
	}

	filtered := make([]domain.MetricRow, 0, len(rows))
	for _, row := range rows {
		if _, ok := ids[row.DimensionKey]; ok {
			filtered = append(filtered, row)
		}
	}

	return filtered
}

// EnrichShorts gera exatamente um EnrichedVideo por candidato, na ordem do catálogo.
// Sem linha correspondente as métricas ficam nil.
func EnrichShorts(candidates []domain.VideoCandidate, rows []domain.MetricRow) []domain.EnrichedVideo {
	byVideo := make(map[string]domain.MetricRow, len(rows))
	for _, row := range rows {
		if row.DimensionKey != "" {
			byVideo[row.DimensionKey] = row
		}
	}

	enriched := make([]domain.EnrichedVideo, 0, len(candidates))
	for _, candidate := range candidates {
		row := byVideo[candidate.VideoID]

		enriched = append(enriched, domain.EnrichedVideo{
			VideoCandidate:             candidate,
			Views:                      row.Views,
			Impressions:                row.Impressions,
			ImpressionClickThroughRate: utils.RoundPtr(row.ImpressionCTR),
			AverageViewDuration:        utils.RoundPtr(row.AvgViewDuration),
			AverageViewPercentage:      utils.RoundPtr(row.AvgViewPercentage),
			Health:                     ClassifyHealth(row.ImpressionCTR, row.AvgViewPercentage),
			Recommendations:            BuildRecommendations(row.ImpressionCTR, row.AvgViewPercentage),
		})
	}

	return enriched
}
