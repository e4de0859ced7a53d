package domain

import "time"

const (
	DefaultReportDays  = 30
	MaxReportDays      = 365
	DefaultReportLimit = 12
	MaxReportLimit     = 24

	// AllVideos indica que nenhum vídeo específico foi solicitado.
	AllVideos = "all"
)

// ReportFilters são as opções aceitas na requisição de relatório.
type ReportFilters struct {
	Days             int
	Limit            int
	RequestedVideoID string
}

// Normalize aplica os padrões às opções ausentes ou fora do intervalo.
func (f ReportFilters) Normalize() ReportFilters {
	if f.Days < 1 || f.Days > MaxReportDays {
		f.Days = DefaultReportDays
	}
	if f.Limit < 1 || f.Limit > MaxReportLimit {
		f.Limit = DefaultReportLimit
	}
	if f.RequestedVideoID == "" {
		f.RequestedVideoID = AllVideos
	}
	return f
}

// ScanTarget é a quantidade de candidatos buscada no catálogo.
func (f ReportFilters) ScanTarget() int {
	return max(f.Limit*8, 24)
}

type ReportWindow struct {
	Days             int    `json:"days"`
	StartDate        string `json:"startDate"`
	EndDate          string `json:"endDate"`
	Limit            int    `json:"limit"`
	RequestedVideoID string `json:"requestedVideoId"`
}

// Report é o documento final entregue por requisição. Nada o altera depois de montado.
type Report struct {
	ReportID           string          `json:"reportId"`
	GeneratedAt        time.Time       `json:"generatedAt"`
	Window             ReportWindow    `json:"window"`
	Source             string          `json:"source"`
	ChannelID          string          `json:"channelId"`
	ChannelName        *string         `json:"channelName"`
	Summary            ChannelSummary  `json:"summary"`
	Videos             []EnrichedVideo `json:"videos"`
	ChannelTrend       []TrendPoint    `json:"channelTrend"`
	SelectedVideo      *EnrichedVideo  `json:"selectedVideo"`
	SelectedVideoTrend []TrendPoint    `json:"selectedVideoTrend"`
	SelectedVideoID    *string         `json:"selectedVideoId"`
	ScannedVideos      int             `json:"scannedVideos"`
	Warnings           []string        `json:"warnings"`
}
