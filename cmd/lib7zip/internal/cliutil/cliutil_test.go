package cliutil

import (
	"bytes"
	"context"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lib7zip/pkg/config"
	"lib7zip/pkg/initialization"
)

func TestComponentsFromContext(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	_, err := Components(cmd)
	assert.Error(t, err)
	_, err = OpenArchive(cmd, "x.7z", "", "")
	assert.Error(t, err)

	comp := &initialization.InitializedComponents{Config: config.Default()}
	cmd.SetContext(WithComponents(cmd.Context(), comp))
	got, err := Components(cmd)
	require.NoError(t, err)
	assert.Same(t, comp, got)
}

func TestPrintf(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	Printf(cmd, "%d items\n", 3)
	assert.Equal(t, "3 items\n", buf.String())
}

func TestNewTableRendersToCommandOutput(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	tw := NewTable(cmd, "Name", "Update")
	tw.AppendRow(table.Row{"7z", true})
	tw.AppendRow(table.Row{"zip", false})
	tw.Render()

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "7z")
	assert.Contains(t, out, "zip")
	assert.Contains(t, out, "│")
}
