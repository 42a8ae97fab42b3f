// Package cliutil carries shared state between the lib7zip commands.
package cliutil

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"lib7zip/pkg/archive"
	"lib7zip/pkg/initialization"
)

type componentsKey struct{}

// WithComponents stores the bootstrapped components in ctx.
func WithComponents(ctx context.Context, c *initialization.InitializedComponents) context.Context {
	return context.WithValue(ctx, componentsKey{}, c)
}

// ComponentsFromContext returns the components stored by WithComponents.
func ComponentsFromContext(ctx context.Context) (*initialization.InitializedComponents, bool) {
	c, ok := ctx.Value(componentsKey{}).(*initialization.InitializedComponents)
	return c, ok && c != nil
}

// Components returns the components of the running command.
func Components(cmd *cobra.Command) (*initialization.InitializedComponents, error) {
	c, ok := ComponentsFromContext(cmd.Context())
	if !ok {
		return nil, errors.New("library not initialized")
	}
	return c, nil
}

// OpenArchive opens path with the configured defaults plus format and
// password.
func OpenArchive(cmd *cobra.Command, path, format, password string) (*archive.Archive, error) {
	c, err := Components(cmd)
	if err != nil {
		return nil, err
	}
	opts := c.OpenOptions()
	opts.Format = format
	opts.Password = password
	a, err := c.Registry.OpenFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return a, nil
}

// Printf writes to the command's output stream.
func Printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// Out returns the command's output stream.
func Out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}

// NewTable returns a table that renders to the command's output stream.
func NewTable(cmd *cobra.Command, header ...any) table.Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(Out(cmd))
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row(header))
	return tw
}
