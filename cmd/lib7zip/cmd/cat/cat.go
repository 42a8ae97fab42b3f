package cat

import (
	"fmt"

	"github.com/spf13/cobra"

	"lib7zip/cmd/lib7zip/internal/cliutil"
)

var opts = struct {
	Format   string
	Password string
}{}

var Command = &cobra.Command{
	Use:   "cat <archive> <path>",
	Short: "Write one item of an archive to standard output",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := cliutil.OpenArchive(cmd, args[0], opts.Format, opts.Password)
		if err != nil {
			return err
		}
		defer a.Close()

		it, err := a.ItemByPath(args[1])
		if err != nil {
			return fmt.Errorf("%s: %w", args[1], err)
		}
		dir, err := it.IsDir()
		if err != nil {
			return err
		}
		if dir {
			return fmt.Errorf("%s is a directory", args[1])
		}
		return it.ExtractTo(cliutil.Out(cmd), "")
	},
}

func init() {
	flags := Command.Flags()
	flags.StringVarP(&opts.Format, "format", "t", "",
		"Open with this format only instead of probing.")
	flags.StringVarP(&opts.Password, "password", "p", "",
		"Password for encrypted items or headers.")
}
