package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/mrlokans/quoteserver/internal/config"
)

// ServeFlags are the command line overrides accepted by the serve command.
// Zero values leave the environment configuration untouched.
type ServeFlags struct {
	InitFrom    string
	DatabaseURL string
	Port        int
}

// ParseServeFlags parses command line flags
func ParseServeFlags(args []string) (*ServeFlags, error) {
	flags := &ServeFlags{}
	fs := flag.NewFlagSet("serve", flag.ExitOnError)

	fs.StringVar(&flags.InitFrom, "init-from", "", "Import this JSON quote file before serving")
	fs.StringVar(&flags.DatabaseURL, "db", "", "Database URL (overrides DATABASE_URL)")
	fs.IntVar(&flags.Port, "port", 0, "Listen port (overrides PORT)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s serve [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Start the quote server.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

// Apply overrides cfg with every flag that was set.
func (f *ServeFlags) Apply(cfg *config.Config) {
	if f.InitFrom != "" {
		cfg.InitFrom = f.InitFrom
	}
	if f.DatabaseURL != "" {
		cfg.Database.URL = f.DatabaseURL
	}
	if f.Port > 0 {
		cfg.Port = int32(f.Port)
	}
}
