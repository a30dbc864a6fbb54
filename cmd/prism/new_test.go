package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prism/internal/config"
)

func TestNewWritesLoadableDocument(t *testing.T) {
	out := filepath.Join(t.TempDir(), "sunset.yaml")

	stdout, err := executeCommand(t, "new", "--preset", "sunset", "--output", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "Wrote "+out)

	doc, err := config.LoadDocument(out)
	require.NoError(t, err)
	require.Equal(t, "Sunset", doc.Name)
	require.Len(t, doc.ColorStops, 3)
	require.Equal(t, "#F09819", doc.ColorStops[1].Color)

	_, err = executeCommand(t, "new", "--output", out)
	require.ErrorContains(t, err, "already exists")

	_, err = executeCommand(t, "new", "--output", out, "--force", "--name", "Mine")
	require.NoError(t, err)
	doc, err = config.LoadDocument(out)
	require.NoError(t, err)
	require.Equal(t, "Mine", doc.Name)
	require.Equal(t, "#ff5f6d", doc.ColorStops[0].Color)
}

func TestNewRequiresOutput(t *testing.T) {
	_, err := executeCommand(t, "new")
	require.Error(t, err)
}
