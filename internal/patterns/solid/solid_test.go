package solid

import (
	"context"
	"testing"

	"patternlab/internal/model"
	"patternlab/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTodoCount(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTodoMemory()
	for _, todo := range []model.Todo{
		{ID: "1", Owner: "alice", Title: "a"},
		{ID: "2", Owner: "alice", Title: "b", Completed: true},
		{ID: "3", Owner: "bob", Title: "c"},
	} {
		todo := todo
		_, err := repo.Create(ctx, &todo)
		require.NoError(t, err)
	}

	count, err := OpenTodoCount(ctx, repo, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDemo(t *testing.T) {
	lines, err := Demo(context.Background())
	require.NoError(t, err)

	require.Len(t, lines, 6)
	assert.Equal(t, "solid: report sees 2 open todos for alice", lines[4])
}
