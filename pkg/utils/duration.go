package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var isoDurationRegexp = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+(?:\.\d+)?)S)?$`)

// ParseISODurationSeconds converte uma duração ISO-8601 do tipo PT#H#M#S em
// segundos (duas casas decimais). Todos os componentes são opcionais e os
// segundos podem ser fracionários. Retorna nil quando o formato é inválido.
func ParseISODurationSeconds(raw string) *float64 {
	matches := isoDurationRegexp.FindStringSubmatch(strings.TrimSpace(raw))
	if matches == nil {
		return nil
	}

	var total float64
	multipliers := []float64{3600, 60, 1}
	for i, multiplier := range multipliers {
		part := matches[i+1]
		if part == "" {
			continue
		}

		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil
		}
		total += value * multiplier
	}

	return RoundPtr(&total)
}
