package methods

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"lib7zip/cmd/lib7zip/internal/cliutil"
)

var Command = &cobra.Command{
	Use:   "methods",
	Short: "List the compression methods the library provides",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cliutil.Components(cmd)
		if err != nil {
			return err
		}
		methods, err := c.Registry.Methods()
		if err != nil {
			return fmt.Errorf("failed to read methods: %w", err)
		}

		tw := cliutil.NewTable(cmd, "ID", "Name", "Decoder", "Encoder")
		for _, m := range methods {
			tw.AppendRow(table.Row{fmt.Sprintf("%#x", m.ID), m.Name, m.DecoderIsAssigned, m.EncoderIsAssigned})
		}
		tw.Render()
		return nil
	},
}
