package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const reportIDSize = 12

// GenerateReportID gera um identificador curto para cada relatório emitido.
func GenerateReportID() (string, error) {
	return gonanoid.Generate(characters, reportIDSize)
}
