package insighting

import (
	"errors"

	ytdomain "github.com/vfg2006/shorts-insights-api/infrastructure/integrator/youtube/domain"
	"github.com/vfg2006/shorts-insights-api/pkg/apiErrors"
)

const (
	authFailedMessage     = "YouTube API auth failed. Set YT_* OAuth credentials or Google service account credentials."
	genericFailureMessage = "Unable to fetch YouTube analytics."
)

// Etapas fatais do relatório
const (
	StageToken   = "token"
	StageChannel = "channel"
	StageCatalog = "catalog"
	StageReport  = "report"
)

// ReportError é a única falha que interrompe o relatório.
// Message já está sanitizada para o cliente.
type ReportError struct {
	Err     error
	Stage   string
	Code    string
	Message string
}

func (e *ReportError) Error() string {
	return e.Message
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// IsAuth indica se a falha foi de autenticação no YouTube.
func (e *ReportError) IsAuth() bool {
	return e.Code == apiErrors.ErrUpstreamAuth
}

// NewReportError classifica err: mensagens com padrão de autenticação viram
// uma mensagem genérica, as demais são repassadas.
func NewReportError(stage string, err error) *ReportError {
	reportErr := &ReportError{
		Err:     err,
		Stage:   stage,
		Code:    apiErrors.ErrReportFailure,
		Message: genericFailureMessage,
	}

	switch {
	case err == nil:
	case ytdomain.IsAuthError(err):
		reportErr.Code = apiErrors.ErrUpstreamAuth
		reportErr.Message = authFailedMessage
	case err.Error() != "":
		reportErr.Message = err.Error()
	}

	return reportErr
}

// AsReportError extrai o *ReportError de err, se houver.
func AsReportError(err error) (*ReportError, bool) {
	var reportErr *ReportError
	if errors.As(err, &reportErr) {
		return reportErr, true
	}
	return nil, false
}
