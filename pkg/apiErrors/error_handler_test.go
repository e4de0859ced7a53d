package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{name: "Falha do relatório", code: ErrReportFailure, wantStatus: http.StatusInternalServerError},
		{name: "Token inválido", code: ErrInvalidToken, wantStatus: http.StatusUnauthorized},
		{name: "Requisição inválida", code: ErrInvalidRequest, wantStatus: http.StatusBadRequest},
		{name: "Código desconhecido", code: "XYZ_999", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "mensagem", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.Nil(t, body.Details)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrReportFailure).Code)

	apiErr := FromError(errors.New("quota exceeded"), ErrExternalService)
	assert.Equal(t, ErrExternalService, apiErr.Code)
	assert.Equal(t, "quota exceeded", apiErr.Message)
}
