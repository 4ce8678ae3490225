package batch_test

import (
	"testing"

	"company-registry/core/batch"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	items := make([]int, 1000)
	for i := range items {
		items[i] = i + 1
	}

	chunks := batch.Chunk(items, 400)
	assert.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 400)
	assert.Len(t, chunks[1], 400)
	assert.Len(t, chunks[2], 200)

	// Order is preserved across chunk boundaries
	assert.Equal(t, 1, chunks[0][0])
	assert.Equal(t, 401, chunks[1][0])
	assert.Equal(t, 1000, chunks[2][199])
}

func TestChunk_Empty(t *testing.T) {
	assert.Empty(t, batch.Chunk([]string{}, 400))
	assert.Empty(t, batch.Chunk[string](nil, 10))
}

func TestChunk_ExactMultiple(t *testing.T) {
	chunks := batch.Chunk([]int{1, 2, 3, 4}, 2)
	assert.Len(t, chunks, 2)
	assert.Equal(t, []int{1, 2}, chunks[0])
	assert.Equal(t, []int{3, 4}, chunks[1])
}

func TestChunk_DefaultSize(t *testing.T) {
	items := make([]int, 500)
	chunks := batch.Chunk(items, 0)
	assert.Len(t, chunks, 2)
	assert.Len(t, chunks[0], batch.DefaultChunkSize)
}
