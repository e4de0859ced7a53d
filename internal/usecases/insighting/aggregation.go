package insighting

import (
	"sort"

	"github.com/vfg2006/shorts-insights-api/internal/domain"
	"github.com/vfg2006/shorts-insights-api/pkg/utils"
)

// Limites literais dos insights do canal
const (
	weakAvgCTR          = 2.5
	healthyAvgCTR       = 4.0
	lowAvgRetention     = 35.0
	risingTrendPct      = 10.0
	decliningTrendPct   = -10.0
	minTrendPointsCount = 2
)

// RankShorts ordena por views (nil conta como 0), do maior para o menor, e corta em limit.
// Empates mantêm a ordem do catálogo.
func RankShorts(videos []domain.EnrichedVideo, limit int) []domain.EnrichedVideo {
	ranked := make([]domain.EnrichedVideo, len(videos))
	copy(ranked, videos)

	sort.SliceStable(ranked, func(i, j int) bool {
		return utils.ValueOr(ranked[i].Views, 0) > utils.ValueOr(ranked[j].Views, 0)
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// WeightedAverage calcula a média de value ponderada por weight.
// Itens sem valor são ignorados; peso nil conta como 1 e peso negativo como 0.
// Retorna nil quando o peso total não é positivo.
func WeightedAverage[T any](items []T, value, weight func(T) *float64) *float64 {
	var weighted, totalWeight float64

	for _, item := range items {
		v := value(item)
		if v == nil {
			continue
		}

		applied := 1.0
		if w := weight(item); w != nil {
			applied = max(0, *w)
		}

		weighted += *v * applied
		totalWeight += applied
	}

	if totalWeight <= 0 {
		return nil
	}

	return utils.RoundPtr(utils.Float(weighted / totalWeight))
}

// BuildTrend converte linhas diárias em pontos ordenados por data.
// Linhas sem data são descartadas.
func BuildTrend(rows []domain.MetricRow) []domain.TrendPoint {
	points := make([]domain.TrendPoint, 0, len(rows))
	for _, row := range rows {
		if row.DimensionKey == "" {
			continue
		}

		points = append(points, domain.TrendPoint{
			Date:                  row.DimensionKey,
			Views:                 utils.RoundPtr(row.Views),
			Impressions:           utils.RoundPtr(row.Impressions),
			CTR:                   utils.RoundPtr(row.ImpressionCTR),
			AverageViewDuration:   utils.RoundPtr(row.AvgViewDuration),
			AverageViewPercentage: utils.RoundPtr(row.AvgViewPercentage),
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points
}

// PctDirection é a variação percentual entre o primeiro e o último ponto.
// Com primeiro valor ≤ 0 devolve 100 se o último for positivo, senão 0.
func PctDirection(points []domain.TrendPoint, field domain.TrendField) *float64 {
	if len(points) < minTrendPointsCount {
		return nil
	}

	first := field(points[0])
	last := field(points[len(points)-1])
	if first == nil || last == nil {
		return nil
	}

	if *first <= 0 {
		if *last > 0 {
			return utils.Float(100)
		}
		return utils.Float(0)
	}

	return utils.RoundPtr(utils.Float((*last - *first) / *first * 100))
}

// BuildSummary agrega a shortlist e a tendência do canal.
func BuildSummary(videos []domain.EnrichedVideo, channelTrend []domain.TrendPoint) domain.ChannelSummary {
	var totalViews, totalImpressions float64
	for _, video := range videos {
		totalViews += utils.ValueOr(video.Views, 0)
		totalImpressions += utils.ValueOr(video.Impressions, 0)
	}

	summary := domain.ChannelSummary{
		ShortCount:  len(videos),
		Views:       utils.RoundWithTwoDecimalPlace(totalViews),
		Impressions: utils.RoundWithTwoDecimalPlace(totalImpressions),
		AvgCTR: WeightedAverage(videos,
			func(v domain.EnrichedVideo) *float64 { return v.ImpressionClickThroughRate },
			func(v domain.EnrichedVideo) *float64 { return v.Impressions },
		),
		AvgViewPercent: WeightedAverage(videos,
			func(v domain.EnrichedVideo) *float64 { return v.AverageViewPercentage },
			func(v domain.EnrichedVideo) *float64 { return v.Views },
		),
		AvgWatchDuration: WeightedAverage(videos,
			func(v domain.EnrichedVideo) *float64 { return v.AverageViewDuration },
			func(v domain.EnrichedVideo) *float64 { return v.Views },
		),
		CTRTrend:       PctDirection(channelTrend, domain.TrendCTR),
		RetentionTrend: PctDirection(channelTrend, domain.TrendRetention),
	}

	summary.Insights = buildInsights(summary)

	return summary
}

// buildInsights avalia as regras sempre na mesma ordem: CTR, retenção, tendência de CTR.
func buildInsights(summary domain.ChannelSummary) []string {
	insights := make([]string, 0, 3)

	switch {
	case summary.AvgCTR == nil:
		insights = append(insights, "CTR data is not yet sufficient for this window.")
	case *summary.AvgCTR < weakAvgCTR:
		insights = append(insights, "Avg CTR is weak (<2.5%). Prioritize thumbnail/text and first-hook.")
	case *summary.AvgCTR > healthyAvgCTR:
		insights = append(insights, "Avg CTR is healthy (>4%).")
	}

	switch {
	case summary.AvgViewPercent == nil:
		insights = append(insights, "Retention is unavailable; metrics likely still warming up.")
	case *summary.AvgViewPercent < lowAvgRetention:
		insights = append(insights, "Retention is below 35%; consider faster value delivery.")
	}

	switch {
	case summary.CTRTrend == nil:
		insights = append(insights, "Need more than 2 days for meaningful CTR direction.")
	case *summary.CTRTrend >= risingTrendPct:
		insights = append(insights, "CTR rising this window.")
	case *summary.CTRTrend <= decliningTrendPct:
		insights = append(insights, "CTR declining this window.")
	}

	return insights
}
