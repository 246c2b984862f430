package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemo(t *testing.T) {
	lines, err := Demo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		`factory: storage.New selected the "memory" backend`,
		"factory: the concrete type stays hidden behind the Storage interface",
		"factory: put articles/demo.txt (12 bytes)",
		`factory: read back "hello object"`,
		`factory: rejected bad backend: unknown storage backend: "carrier-pigeon"`,
	}, lines)
}
