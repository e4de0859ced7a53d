package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODurationSeconds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{name: "somente segundos", input: "PT45S", want: Float(45)},
		{name: "minutos e segundos", input: "PT1M30S", want: Float(90)},
		{name: "horas minutos segundos", input: "PT2H15M30S", want: Float(8130)},
		{name: "segundos fracionários", input: "PT59.567S", want: Float(59.57)},
		{name: "minúsculas", input: "pt1m", want: Float(60)},
		{name: "espaços nas bordas", input: "  PT30S ", want: Float(30)},
		{name: "sem componentes", input: "PT", want: Float(0)},
		{name: "com dias não suportado", input: "P1DT1H", want: nil},
		{name: "vazio", input: "", want: nil},
		{name: "lixo", input: "90 seconds", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseISODurationSeconds(tt.input)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}
