package utils

import (
	"strings"
	"time"
)

var flexibleDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.DateOnly,
	time.RFC1123Z,
	time.RFC1123,
}

// NormalizeDate aceita datas em formatos variados e devolve o dia em UTC
// no formato YYYY-MM-DD. ok é false quando nenhum layout reconhece o valor.
func NormalizeDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	for _, layout := range flexibleDateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return parsed.UTC().Format(time.DateOnly), true
		}
	}

	return "", false
}

// DateWindow devolve o início e o fim (inclusive) de uma janela de days dias
// terminando em end.
func DateWindow(end time.Time, days int) (string, string) {
	end = end.UTC()
	start := end.AddDate(0, 0, -(days - 1))

	return start.Format(time.DateOnly), end.Format(time.DateOnly)
}
