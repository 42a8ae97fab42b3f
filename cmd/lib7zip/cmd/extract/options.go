package extract

var opts = &options{}

type options struct {
	Format          string
	Password        string
	OutDir          string
	StripComponents int
	Test            bool
}

func init() {
	flags := Command.Flags()
	flags.StringVarP(&opts.Format, "format", "t", "",
		"Open with this format only instead of probing.")
	flags.StringVarP(&opts.Password, "password", "p", "",
		"Password for encrypted items or headers.")
	flags.StringVarP(&opts.OutDir, "out", "o", ".",
		"Directory to extract into. Created if missing.")
	flags.IntVar(&opts.StripComponents, "strip-components", 0,
		"Drop this many leading path elements from every item. Items with no elements left are skipped.")
	flags.BoolVar(&opts.Test, "test", false,
		"Decode every item and check it without writing anything.")
}
