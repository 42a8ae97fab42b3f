package list

var opts = &options{}

type options struct {
	Format   string
	Password string
	Props    bool
	Human    bool
}

func init() {
	flags := Command.Flags()
	flags.StringVarP(&opts.Format, "format", "t", "",
		"Open with this format only instead of probing.")
	flags.StringVarP(&opts.Password, "password", "p", "",
		"Password for encrypted headers.")
	flags.BoolVar(&opts.Props, "props", false,
		"Print every property the handler reports.")
	flags.BoolVarP(&opts.Human, "human-readable", "H", false,
		"Print sizes in powers of 1024.")
}
