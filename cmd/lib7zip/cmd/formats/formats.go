package formats

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"lib7zip/cmd/lib7zip/internal/cliutil"
	"lib7zip/pkg/archive"
)

var Command = &cobra.Command{
	Use:   "formats",
	Short: "List the archive formats the library handles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := cliutil.Components(cmd)
		if err != nil {
			return err
		}
		formats, err := c.Registry.Formats()
		if err != nil {
			return fmt.Errorf("failed to read formats: %w", err)
		}

		tw := cliutil.NewTable(cmd, "Name", "Extensions", "Flags", "Update")
		for _, f := range formats {
			tw.AppendRow(table.Row{f.Name, strings.Join(f.Extensions, " "), flagString(f.Flags), f.Update})
		}
		tw.Render()
		return nil
	},
}

var flagNames = []struct {
	flag archive.FormatFlag
	name string
}{
	{archive.FlagKeepName, "keep-name"},
	{archive.FlagFindSignature, "find-sig"},
	{archive.FlagAltStreams, "alt-streams"},
	{archive.FlagNtSecure, "nt-secure"},
	{archive.FlagSymLinks, "symlinks"},
	{archive.FlagHardLinks, "hardlinks"},
	{archive.FlagUseGlobalOffset, "global-offset"},
	{archive.FlagStartOpen, "start-open"},
	{archive.FlagPureStartOpen, "pure-start-open"},
	{archive.FlagBackwardOpen, "backward-open"},
	{archive.FlagPreArc, "pre-arc"},
	{archive.FlagMultiSignature, "multi-sig"},
	{archive.FlagByExtOnlyOpen, "by-ext-only"},
	{archive.FlagHashHandler, "hash"},
}

func flagString(f archive.FormatFlag) string {
	var out []string
	for _, n := range flagNames {
		if f.Has(n.flag) {
			out = append(out, n.name)
		}
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ",")
}
