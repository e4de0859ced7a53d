// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// ShortMaxSeconds é a duração máxima para um vídeo contar como short.
const ShortMaxSeconds = 90.0

// VideoCandidate é um vídeo do catálogo que passou pelo filtro de duração e metadados.
type VideoCandidate struct {
	VideoID         string  `json:"videoId"`
	Title           string  `json:"title"`
	PublishedAt     string  `json:"publishedAt"` // YYYY-MM-DD
	Thumbnail       *string `json:"thumbnail"`
	DurationSeconds float64 `json:"durationSeconds"`
}

type Health string

const (
	HealthLow     Health = "low"
	HealthMedium  Health = "medium"
	HealthHigh    Health = "high"
	HealthUnknown Health = "unknown"
)

// RelativeScore ordena a severidade para o cliente: low=0, medium=1, high=2, unknown=3.
func (h Health) RelativeScore() int {
	switch h {
	case HealthLow:
		return 0
	case HealthMedium:
		return 1
	case HealthHigh:
		return 2
	default:
		return 3
	}
}

// EnrichedVideo é o candidato unido às suas métricas do período.
// Métricas ausentes ficam nil (serializadas como null).
type EnrichedVideo struct {
	VideoCandidate

	Views                      *float64 `json:"views"`
	Impressions                *float64 `json:"impressions"`
	ImpressionClickThroughRate *float64 `json:"impressionClickThroughRate"`
	AverageViewDuration        *float64 `json:"averageViewDuration"`
	AverageViewPercentage      *float64 `json:"averageViewPercentage"`
	Health                     Health   `json:"health"`
	Recommendations            []string `json:"recommendations"`
	RelativeScore              int      `json:"relativeScore"`
}
