package list

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"lib7zip/cmd/lib7zip/internal/cliutil"
	"lib7zip/pkg/archive"
)

var Command = &cobra.Command{
	Use:   "list <archive>",
	Short: "List the items of an archive",
	Long: `This command opens an archive and prints one line per item.

Usage examples:

1. List an archive, probing its format:

	lib7zip list backup.7z

2. Show every property the handler reports:

	lib7zip list --props backup.7z
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cliutil.OpenArchive(cmd, args[0], opts.Format, opts.Password)
		if err != nil {
			return err
		}
		defer a.Close()

		if opts.Props {
			return printProps(cmd, a)
		}
		return printItems(cmd, a)
	},
}

func sizeString(n uint64) string {
	if opts.Human {
		return humanize.IBytes(n)
	}
	return strconv.FormatUint(n, 10)
}

func printItems(cmd *cobra.Command, a *archive.Archive) error {
	items, err := a.Items()
	if err != nil {
		return err
	}

	tw := cliutil.NewTable(cmd, "Modified", "Attr", "Size", "Packed", "CRC", "Path")
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	for _, it := range items {
		path, err := it.Path()
		if err != nil {
			return err
		}
		dir, err := it.IsDir()
		if err != nil {
			return err
		}
		enc, err := it.Encrypted()
		if err != nil {
			return err
		}
		size, err := it.Size()
		if err != nil {
			return err
		}
		packed, err := it.PackSize()
		if err != nil {
			return err
		}
		mtime, err := it.ModTime()
		if err != nil {
			return err
		}
		crc, hasCRC, err := it.CRC()
		if err != nil {
			return err
		}

		attr := []byte("..")
		if dir {
			attr[0] = 'D'
		}
		if enc {
			attr[1] = '+'
		}
		modified := "-"
		if !mtime.IsZero() {
			modified = mtime.Local().Format("2006-01-02 15:04:05")
		}
		crcStr := "-"
		if hasCRC {
			crcStr = fmt.Sprintf("%08X", crc)
		}
		tw.AppendRow(table.Row{modified, string(attr), sizeString(size), sizeString(packed), crcStr, path})
	}
	tw.Render()
	return nil
}

func printProps(cmd *cobra.Command, a *archive.Archive) error {
	infos, err := a.ArchivePropertyInfo()
	if err != nil {
		return err
	}
	cliutil.Printf(cmd, "Format = %s\n", a.Format().Name)
	for _, info := range infos {
		v, err := a.PropertyByID(info.ID)
		if err != nil {
			return err
		}
		if v != nil {
			cliutil.Printf(cmd, "%s = %v\n", info.Name, v)
		}
	}

	infos, err = a.PropertyInfo()
	if err != nil {
		return err
	}
	items, err := a.Items()
	if err != nil {
		return err
	}
	for _, it := range items {
		cliutil.Printf(cmd, "\n")
		for _, info := range infos {
			v, err := it.PropertyByID(info.ID)
			if err != nil {
				return err
			}
			if v != nil {
				cliutil.Printf(cmd, "%s = %v\n", info.Name, v)
			}
		}
	}
	return nil
}
