package utils

// Chunk divide values em fatias de no máximo size elementos, preservando a ordem.
func Chunk[T any](values []T, size int) [][]T {
	if size <= 0 || len(values) == 0 {
		return nil
	}

	out := make([][]T, 0, (len(values)+size-1)/size)
	for i := 0; i < len(values); i += size {
		end := min(i+size, len(values))
		out = append(out, values[i:end])
	}

	return out
}
