package extract

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"lib7zip/cmd/lib7zip/internal/cliutil"
	"lib7zip/pkg/archive"
	"lib7zip/pkg/logger"
)

var Command = &cobra.Command{
	Use:   "extract <archive> [path...]",
	Short: "Extract items of an archive into a directory",
	Long: `This command extracts the whole archive, or only the named items, into
the output directory. Item paths are matched exactly as the archive stores
them.

Usage examples:

1. Extract everything into ./out:

	lib7zip extract -o out backup.7z

2. Extract two files, dropping their top-level directory:

	lib7zip extract --strip-components 1 backup.7z docs/a.txt docs/b.txt

3. Verify checksums without writing anything:

	lib7zip extract --test backup.7z
`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cliutil.OpenArchive(cmd, args[0], opts.Format, opts.Password)
		if err != nil {
			return err
		}
		defer a.Close()

		return runCommand(cmd, a, args[1:])
	},
}

func runCommand(cmd *cobra.Command, a *archive.Archive, paths []string) error {
	var last uint64
	xopts := archive.ExtractOptions{
		StripComponents: opts.StripComponents,
		Progress: func(completed, total uint64) {
			// Log roughly every 64 MiB.
			if completed-last >= 64<<20 || completed == total {
				last = completed
				logger.Debug("Extract progress", "done", humanize.IBytes(completed), "total", humanize.IBytes(total))
			}
		},
	}

	if opts.Test {
		if err := a.Test(xopts); err != nil {
			return err
		}
		cliutil.Printf(cmd, "Everything is Ok\n")
		return nil
	}

	if len(paths) == 0 {
		if err := a.Extract(opts.OutDir, xopts); err != nil {
			return err
		}
		n, err := a.Len()
		if err != nil {
			return err
		}
		cliutil.Printf(cmd, "Extracted %d items to %s\n", n, opts.OutDir)
		return nil
	}

	indices := make([]int, 0, len(paths))
	seen := make(map[int]bool, len(paths))
	for _, p := range paths {
		it, err := a.ItemByPath(p)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		if !seen[it.Index()] {
			seen[it.Index()] = true
			indices = append(indices, it.Index())
		}
	}
	sort.Ints(indices)

	if err := a.ExtractItems(indices, opts.OutDir, xopts); err != nil {
		return err
	}
	cliutil.Printf(cmd, "Extracted %d items to %s\n", len(indices), opts.OutDir)
	return nil
}
