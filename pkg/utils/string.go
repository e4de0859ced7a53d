package utils

// StringPtr retorna um ponteiro para s.
func StringPtr(s string) *string {
	return &s
}
