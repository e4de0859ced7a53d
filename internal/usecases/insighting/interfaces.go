package insighting

import (
	"context"

	"github.com/vfg2006/shorts-insights-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_reporter.go -package=mocks

// ShortsReporter monta o relatório de desempenho dos shorts do canal.
type ShortsReporter interface {
	// BuildReport devolve o relatório completo (possivelmente com avisos) ou um *ReportError fatal
	BuildReport(ctx context.Context, filters domain.ReportFilters) (*domain.Report, error)
}
