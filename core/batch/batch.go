package batch

// DefaultChunkSize is used when a caller passes a non-positive size.
const DefaultChunkSize = 400

// Chunk splits items into contiguous slices of at most size elements,
// preserving order. An empty input yields zero chunks; no chunk is ever
// empty. The returned slices alias the input.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if len(items) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[start:end])
	}
	return chunks
}
