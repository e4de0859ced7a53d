package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var prettyJSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// PrettyJson serializa in com indentação de dois espaços.
func PrettyJson(in any) (string, error) {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := prettyJSON.Unmarshal(raw, &decoded); err != nil {
			return "", err
		}
		in = decoded
	}

	out, err := prettyJSON.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", err
	}

	return string(out), nil
}
